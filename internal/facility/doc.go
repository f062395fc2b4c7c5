// Package facility models external facility records and turns them
// into a per-state leaderboard.
//
// Records arrive as loosely-shaped JSON from an external snapshot:
// most fields are optional and several appear in more than one shape
// ("name" as a plain string or a {"value": ...} wrapper, "location" as
// free text or a structured object, "therapy_hours" as a number or a
// string). All of that tolerance lives in the decoding layer; once a
// Record exists, every field has a single well-defined Go type and the
// classifiers and aggregator never probe raw JSON.
//
// State inference is a prioritized fallback chain over heterogeneous
// location fields. It is a heuristic: ambiguous inputs may resolve
// incorrectly or to "Unknown", and that is accepted behavior.
package facility
