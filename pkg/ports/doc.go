/*
Package ports defines the driven ports (interfaces) around the decision engine.

These interfaces decouple the engine and its callers from external
implementations, allowing protocol snapshots to live in memory, Redis or
SQLite without the core knowing.

# Key Interfaces

  - ProtocolStore: persists and loads per-patient protocol snapshots.
  - DistributedLocker: distributed locking for concurrent snapshot access.
*/
package ports
