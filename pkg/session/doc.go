/*
Package session implements per-patient protocol access orchestration.

It provides high-level abstractions for handling concurrent access to protocol
snapshots across multiple replicas, combining local per-user locks with
optional distributed locking and a pluggable storage adapter.
*/
package session
