// Package reintro is a decision engine for the FODMAP reintroduction
// protocol: the phase after elimination where foods are reintroduced one
// FODMAP group at a time to map individual tolerance.
//
// The core is a pure projection: given a protocol snapshot and a timestamp,
// it computes the single next step (take a dose, wait out a washout, start
// the next group, or finish). It reads no clock and performs no I/O, so
// identical inputs always yield identical decisions.
//
// Persistence, locking, HTTP transport and reporting live in the adapter
// packages; they are optional and the engine never depends on them.
package reintro
