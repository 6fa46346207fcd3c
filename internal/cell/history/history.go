package history

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty indicates an operation sequence with no Init record.
	ErrEmpty = errors.New("history is empty")
	// ErrMissingInit indicates a sequence that does not start with Init.
	ErrMissingInit = errors.New("history must start with init")
	// ErrMisplacedInit indicates an Init record after the first position.
	ErrMisplacedInit = errors.New("init may only appear first")
	// ErrUnknownKind indicates an operation with an unknown kind.
	ErrUnknownKind = errors.New("unknown operation kind")
)

// History is an ordered, append-only sequence of operations.
//
// A History value is immutable from the holder's point of view: Append
// returns a new History and never changes the elements visible through the
// receiver. The zero History is empty and is a prefix of every history.
type History struct {
	ops []Operation
}

// New returns the history of a freshly created cell: [Init].
func New() History {
	return History{ops: []Operation{Init()}}
}

// FromOps builds a history from a decoded operation sequence, validating
// that it starts with exactly one Init record.
func FromOps(ops []Operation) (History, error) {
	if len(ops) == 0 {
		return History{}, ErrEmpty
	}
	if ops[0].Kind != KindInit {
		return History{}, ErrMissingInit
	}
	for i, op := range ops {
		if !op.Kind.IsValid() {
			return History{}, fmt.Errorf("op %d: %w", i, ErrUnknownKind)
		}
		if i > 0 && op.Kind == KindInit {
			return History{}, fmt.Errorf("op %d: %w", i, ErrMisplacedInit)
		}
	}
	copied := make([]Operation, len(ops))
	copy(copied, ops)
	return History{ops: copied}, nil
}

// Len returns the number of recorded operations, including Init.
func (h History) Len() int {
	return len(h.ops)
}

// At returns the operation at position i.
func (h History) At(i int) Operation {
	return h.ops[i]
}

// Last returns the most recent operation, or false for an empty history.
func (h History) Last() (Operation, bool) {
	if len(h.ops) == 0 {
		return Operation{}, false
	}
	return h.ops[len(h.ops)-1], true
}

// Ops returns a copy of the recorded operations.
func (h History) Ops() []Operation {
	out := make([]Operation, len(h.ops))
	copy(out, h.ops)
	return out
}

// Append returns h extended with op.
func (h History) Append(op Operation) History {
	n := len(h.ops)
	return History{ops: append(h.ops[:n:n], op)}
}

// Prefix returns the leading n operations. n is clamped to [0, Len].
func (h History) Prefix(n int) History {
	if n <= 0 {
		return History{}
	}
	if n > len(h.ops) {
		n = len(h.ops)
	}
	return History{ops: h.ops[:n:n]}
}

// Execute replays the history and returns the resulting value.
func (h History) Execute() int {
	value := 0
	for _, op := range h.ops {
		value = op.Apply(value)
	}
	return value
}

// IsPrefixOf reports whether h is a leading subsequence of other.
func (h History) IsPrefixOf(other History) bool {
	return IsPrefix(h, other)
}

// Equal reports whether both histories record the same operations.
func (h History) Equal(other History) bool {
	return len(h.ops) == len(other.ops) && IsPrefix(h, other)
}

func (h History) String() string {
	parts := make([]string, len(h.ops))
	for i, op := range h.ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// IsPrefix reports whether a is a leading subsequence of b.
func IsPrefix(a, b History) bool {
	if len(a.ops) > len(b.ops) {
		return false
	}
	for i, op := range a.ops {
		if b.ops[i] != op {
			return false
		}
	}
	return true
}
