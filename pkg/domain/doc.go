/*
Package domain contains the core domain models for the reintroduction protocol engine.

It defines the entities of the protocol state machine: the protocol snapshot,
food tests, doses, symptoms, washout periods, and the decision output. This
package is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - ProtocolState: Immutable snapshot of a patient's protocol history.
  - FoodTestResult: One 1-3 day exposure to a single food, with its doses.
  - WashoutPeriod: A mandatory recovery interval between food tests.
  - NextAction: The engine's single decision output for the patient.
*/
package domain
