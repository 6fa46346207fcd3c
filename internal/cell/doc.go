// Package cell implements a thread-safe integer cell with an audited,
// policy-checked history.
//
// Every mutation is recorded as an operation in the cell's history and is
// committed only if the cell's policy admits the extended history. Callers
// thread an observation Token through their calls; each token returned by
// the cell denotes a prefix of the cell's history at least as long as the
// token presented.
package cell
