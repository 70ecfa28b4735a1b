/*
Package schema performs structural validation of protocol snapshots at the
system edge: types, enumerations and numeric ranges.

Validation accumulates every violation instead of stopping at the first one,
and reports each with a JSON-style path (e.g. "completedTests[0].doses[1].dayNumber")
so callers can surface all problems at once. A failed check is a caller-contract
violation: the input must be repaired before retrying.

Semantic cross-field rules (mutually exclusive sub-states, sequential dose
numbering, phase consistency) are not handled here; they belong to the engine's
state validator, which turns them into a non-exceptional error action.
*/
package schema
