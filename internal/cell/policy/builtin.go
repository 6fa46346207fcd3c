package policy

import (
	"math"

	"github.com/louisbranch/tracecell/internal/cell/history"
)

const (
	// NameAlwaysTrue admits every history.
	NameAlwaysTrue = "always-true"
	// NameIncrementOnly admits histories whose value never decreases.
	NameIncrementOnly = "increment-only"
	// NameNonNegative admits histories that never go below zero.
	NameNonNegative = "non-negative"
)

// AlwaysTrue admits every history.
func AlwaysTrue() Policy {
	return Named(NameAlwaysTrue, stepPolicy{step: func(int, history.Operation) bool {
		return true
	}})
}

// IncrementOnly rejects every decrement and every compare-and-swap that
// would lower the value if it succeeded. An increment at math.MaxInt is
// rejected rather than wrapping.
func IncrementOnly() Policy {
	return Named(NameIncrementOnly, stepPolicy{step: incrementOnlyStep})
}

func incrementOnlyStep(_ int, op history.Operation) bool {
	switch op.Kind {
	case history.KindDec:
		return false
	case history.KindCas:
		return op.New >= op.Old
	default:
		return true
	}
}

// NonNegative rejects any operation that leaves the value below zero.
func NonNegative() Policy {
	return Named(NameNonNegative, Bounded(0, math.MaxInt))
}

// Bounded keeps every intermediate value within [lo, hi]. A range that
// excludes zero rejects the initial history.
func Bounded(lo, hi int) Policy {
	return stepPolicy{step: func(prior int, op history.Operation) bool {
		next := op.Apply(prior)
		return next >= lo && next <= hi
	}}
}

// ForbidKinds rejects any history containing one of the given kinds.
func ForbidKinds(kinds ...history.Kind) Policy {
	forbidden := make(map[history.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		forbidden[k] = struct{}{}
	}
	return stepPolicy{step: func(_ int, op history.Operation) bool {
		_, denied := forbidden[op.Kind]
		return !denied
	}}
}

// All admits a history only when every member does. The result is a
// Stepper when every member is one. An empty conjunction admits everything.
func All(policies ...Policy) Policy {
	members := make([]Policy, 0, len(policies))
	steppers := make([]Stepper, 0, len(policies))
	for _, p := range policies {
		if p == nil {
			continue
		}
		members = append(members, p)
		if s, ok := p.(Stepper); ok {
			steppers = append(steppers, s)
		}
	}
	if len(steppers) == len(members) {
		return allSteppers(steppers)
	}
	return allPolicies(members)
}

type allPolicies []Policy

func (a allPolicies) Admits(h history.History) bool {
	for _, p := range a {
		if !p.Admits(h) {
			return false
		}
	}
	return true
}

type allSteppers []Stepper

func (a allSteppers) Admits(h history.History) bool {
	for _, p := range a {
		if !p.Admits(h) {
			return false
		}
	}
	return true
}

func (a allSteppers) AdmitsStep(prior int, op history.Operation) bool {
	for _, p := range a {
		if !p.AdmitsStep(prior, op) {
			return false
		}
	}
	return true
}
