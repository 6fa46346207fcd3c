// Package policy defines admissibility predicates over cell histories.
//
// A Policy decides whether a candidate history may become the committed
// history of a cell. Policies must be pure: the same history always yields
// the same answer, and evaluation never blocks or touches shared state.
package policy

import "github.com/louisbranch/tracecell/internal/cell/history"

// Policy decides whether a history is admissible.
type Policy interface {
	Admits(h history.History) bool
}

// Stepper is implemented by policies that can judge a single appended
// operation given the value of an already admitted history.
//
// AdmitsStep(h.Execute(), op) must equal Admits(h.Append(op)) whenever
// Admits(h) holds.
type Stepper interface {
	Policy
	AdmitsStep(prior int, op history.Operation) bool
}

// Namer is implemented by policies that carry a registry name.
type Namer interface {
	Name() string
}

// Func adapts a plain function to Policy.
type Func func(history.History) bool

// Admits calls f(h).
func (f Func) Admits(h history.History) bool {
	return f(h)
}

// NameOf returns the policy name, or "custom" for anonymous policies.
func NameOf(p Policy) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	return "custom"
}

// Named attaches a name to p. The result is a Stepper when p is.
func Named(name string, p Policy) Policy {
	if s, ok := p.(Stepper); ok {
		return namedStepper{name: name, Stepper: s}
	}
	return named{name: name, Policy: p}
}

type named struct {
	name string
	Policy
}

func (n named) Name() string { return n.name }

type namedStepper struct {
	name string
	Stepper
}

func (n namedStepper) Name() string { return n.name }

// stepFunc judges one operation applied to prior.
type stepFunc func(prior int, op history.Operation) bool

// stepPolicy derives Admits from a per-operation check by replaying the
// history, so the two forms agree by construction. A step that would wrap
// the value past the int range is never admitted.
type stepPolicy struct {
	step stepFunc
}

func (p stepPolicy) Admits(h history.History) bool {
	value := 0
	for i := 0; i < h.Len(); i++ {
		op := h.At(i)
		if !p.AdmitsStep(value, op) {
			return false
		}
		value = op.Apply(value)
	}
	return true
}

func (p stepPolicy) AdmitsStep(prior int, op history.Operation) bool {
	if op.Overflows(prior) {
		return false
	}
	return p.step(prior, op)
}
