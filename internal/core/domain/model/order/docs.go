// Package order contains the Order aggregate: items with price snapshots,
// the driver assignment rule, and the role-gated status state machine.
//
// The transition table is a closed lookup structure, so the set of legal
// (from, to, role) combinations is fixed at compile time. Everything not in
// the table is rejected with InvalidTransitionError.
package order
