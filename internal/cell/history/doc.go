// Package history models the audit trail of a cell: immutable operations,
// the append-only History they form, its replayed value, and the prefix
// relation between histories.
//
// Replay is a left fold starting from zero. Init resets to zero, Inc and Dec
// move by one, and Cas(old, new) replaces the value only when it equals old.
// A Cas record is kept whether or not the swap took effect.
package history
