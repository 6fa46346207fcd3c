package policy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/tracecell/internal/platform/errors"
)

//go:embed defaults.yaml
var defaultRules []byte

// Entry is a named policy in a registry.
type Entry struct {
	Name        string
	Description string
	Policy      Policy
}

// Registry maps policy names to policies.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns a registry holding the builtin policies.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}
	r.entries[NameAlwaysTrue] = Entry{Name: NameAlwaysTrue, Description: "Admits every history.", Policy: AlwaysTrue()}
	r.entries[NameIncrementOnly] = Entry{Name: NameIncrementOnly, Description: "Rejects decrements and lowering compare-and-swaps.", Policy: IncrementOnly()}
	r.entries[NameNonNegative] = Entry{Name: NameNonNegative, Description: "Value never drops below zero.", Policy: NonNegative()}
	return r
}

// DefaultRegistry returns the builtins plus the embedded rule policies.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(nil)
}

// LoadRegistry returns the default registry extended with the rules in
// data. Empty data yields the default registry.
func LoadRegistry(data []byte) (*Registry, error) {
	r := NewRegistry()
	defaults, err := ParseRules(defaultRules)
	if err != nil {
		return nil, fmt.Errorf("load embedded policies: %w", err)
	}
	if err := r.AddRules(defaults); err != nil {
		return nil, fmt.Errorf("load embedded policies: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return r, nil
	}
	user, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	if err := r.AddRules(user); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a named policy. Names must be unique.
func (r *Registry) Register(name, description string, p Policy) error {
	name = strings.TrimSpace(name)
	if name == "" || p == nil {
		return invalidRule(name, "name and policy are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return invalidRule(name, "duplicate policy name")
	}
	r.entries[name] = Entry{Name: name, Description: description, Policy: p}
	return nil
}

// AddRules compiles and registers every rule.
func (r *Registry) AddRules(rules Rules) error {
	for _, rule := range rules.Policies {
		p, err := rule.Compile()
		if err != nil {
			return err
		}
		if err := r.Register(rule.Name, rule.Description, p); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the policy registered under name.
func (r *Registry) Lookup(name string) (Policy, error) {
	r.mu.RLock()
	entry, ok := r.entries[strings.TrimSpace(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodePolicyUnknown,
			fmt.Sprintf("unknown policy %q", name),
			map[string]string{"Policy": name},
		)
	}
	return entry.Policy, nil
}

// Entries returns every registered policy sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
