package history

// Log is the mutable backing store of a cell's history.
//
// Log is not safe for concurrent use; the owning cell serializes access
// under its lock. Snapshots taken from a Log stay valid after later appends
// because they are capped at their own length.
type Log struct {
	ops   []Operation
	value int
}

// NewLog returns a log holding [Init].
func NewLog() *Log {
	return &Log{ops: []Operation{Init()}}
}

// Len returns the number of committed operations.
func (l *Log) Len() int {
	return len(l.ops)
}

// Value returns the replayed value of the committed operations.
func (l *Log) Value() int {
	return l.value
}

// Snapshot returns the committed history.
func (l *Log) Snapshot() History {
	n := len(l.ops)
	return History{ops: l.ops[:n:n]}
}

// Propose returns the history that appending op would produce, without
// committing it. The returned value is only meaningful until the next call
// on the log.
func (l *Log) Propose(op Operation) History {
	n := len(l.ops)
	extended := append(l.ops, op)
	return History{ops: extended[: n+1 : n+1]}
}

// Append commits op and returns the new value.
func (l *Log) Append(op Operation) int {
	l.ops = append(l.ops, op)
	l.value = op.Apply(l.value)
	return l.value
}
