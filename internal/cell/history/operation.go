package history

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies the kind of a recorded operation.
type Kind uint8

const (
	// KindInit records the creation of a cell at value zero.
	KindInit Kind = iota
	// KindInc records an increment by one.
	KindInc
	// KindDec records a decrement by one.
	KindDec
	// KindCas records a compare-and-swap attempt, successful or not.
	KindCas
)

var kindNames = [...]string{
	KindInit: "init",
	KindInc:  "inc",
	KindDec:  "dec",
	KindCas:  "cas",
}

// IsValid reports whether the kind is one of the known kinds.
func (k Kind) IsValid() bool {
	return int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its lowercase name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range kindNames {
		if candidate == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation kind %q", name)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("unknown operation kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Operation is an immutable record of one state transition.
// Old and New are only meaningful for KindCas.
type Operation struct {
	Kind Kind `json:"kind"`
	Old  int  `json:"old,omitempty"`
	New  int  `json:"new,omitempty"`
}

// Init returns the operation every history starts with.
func Init() Operation { return Operation{Kind: KindInit} }

// Inc returns an increment operation.
func Inc() Operation { return Operation{Kind: KindInc} }

// Dec returns a decrement operation.
func Dec() Operation { return Operation{Kind: KindDec} }

// Cas returns a compare-and-swap operation replacing old with new.
func Cas(old, new int) Operation { return Operation{Kind: KindCas, Old: old, New: new} }

// Apply returns the value that results from applying op to prior.
func (op Operation) Apply(prior int) int {
	switch op.Kind {
	case KindInit:
		return 0
	case KindInc:
		return prior + 1
	case KindDec:
		return prior - 1
	case KindCas:
		if prior == op.Old {
			return op.New
		}
		return prior
	default:
		return prior
	}
}

// Overflows reports whether applying op to prior would wrap past the int
// range: Inc at math.MaxInt or Dec at math.MinInt.
func (op Operation) Overflows(prior int) bool {
	switch op.Kind {
	case KindInc:
		return prior == math.MaxInt
	case KindDec:
		return prior == math.MinInt
	default:
		return false
	}
}

func (op Operation) String() string {
	if op.Kind == KindCas {
		return fmt.Sprintf("cas(%d,%d)", op.Old, op.New)
	}
	return op.Kind.String()
}
