package policy

import (
	"fmt"
	"math"
	"strings"

	"github.com/louisbranch/tracecell/internal/cell/history"
	apperrors "github.com/louisbranch/tracecell/internal/platform/errors"
	"gopkg.in/yaml.v3"
)

// CASMode controls which compare-and-swap operations a rule admits.
type CASMode string

const (
	// CASAny admits every compare-and-swap.
	CASAny CASMode = "any"
	// CASMonotonic admits a compare-and-swap only when new >= old.
	CASMonotonic CASMode = "monotonic"
)

func (m *CASMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode := CASMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case "":
		*m = CASAny
		return nil
	case CASAny, CASMonotonic:
		*m = mode
		return nil
	default:
		return fmt.Errorf("invalid value for cas: %q", s)
	}
}

// Rules is a YAML document declaring named rule policies.
type Rules struct {
	Policies []Rule `yaml:"policies"`
}

// Rule declares a policy as a set of constraints checked per operation.
type Rule struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Forbid      []string `yaml:"forbid,omitempty"`
	CAS         CASMode  `yaml:"cas,omitempty"`
	Min         *int     `yaml:"min,omitempty"`
	Max         *int     `yaml:"max,omitempty"`
}

// UnmarshalYAML decodes and validates a rule.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	type rawRule Rule
	var raw rawRule
	if err := value.Decode(&raw); err != nil {
		return err
	}
	rule := Rule(raw)
	rule.Name = strings.TrimSpace(rule.Name)
	if rule.CAS == "" {
		rule.CAS = CASAny
	}
	if _, err := rule.forbiddenKinds(); err != nil {
		return err
	}
	*r = rule
	return nil
}

// forbiddenKinds validates the rule and returns its parsed forbid list.
func (r Rule) forbiddenKinds() ([]history.Kind, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, invalidRule("", "name is required")
	}
	if r.Min != nil && *r.Min > 0 {
		return nil, invalidRule(r.Name, fmt.Sprintf("min %d excludes the initial value 0", *r.Min))
	}
	if r.Max != nil && *r.Max < 0 {
		return nil, invalidRule(r.Name, fmt.Sprintf("max %d excludes the initial value 0", *r.Max))
	}
	kinds := make([]history.Kind, 0, len(r.Forbid))
	for _, name := range r.Forbid {
		kind, err := history.ParseKind(name)
		if err != nil {
			return nil, invalidRule(r.Name, err.Error())
		}
		if kind == history.KindInit {
			return nil, invalidRule(r.Name, "init cannot be forbidden")
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Compile validates the rule and builds the policy it describes.
func (r Rule) Compile() (Policy, error) {
	forbidden, err := r.forbiddenKinds()
	if err != nil {
		return nil, err
	}
	parts := []Policy{}
	if len(forbidden) > 0 {
		parts = append(parts, ForbidKinds(forbidden...))
	}
	if r.CAS == CASMonotonic {
		parts = append(parts, stepPolicy{step: monotonicCASStep})
	}
	if r.Min != nil || r.Max != nil {
		lo, hi := math.MinInt, math.MaxInt
		if r.Min != nil {
			lo = *r.Min
		}
		if r.Max != nil {
			hi = *r.Max
		}
		parts = append(parts, Bounded(lo, hi))
	}
	return Named(strings.TrimSpace(r.Name), All(parts...)), nil
}

func monotonicCASStep(_ int, op history.Operation) bool {
	return op.Kind != history.KindCas || op.New >= op.Old
}

// ParseRules decodes a rules document, validating every rule.
func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		if apperrors.GetCode(err) == apperrors.CodePolicyInvalid {
			return Rules{}, err
		}
		return Rules{}, apperrors.Wrap(apperrors.CodePolicyInvalid, "decode policy rules", err)
	}
	seen := make(map[string]struct{}, len(rules.Policies))
	for _, rule := range rules.Policies {
		if _, ok := seen[rule.Name]; ok {
			return Rules{}, invalidRule(rule.Name, "duplicate policy name")
		}
		seen[rule.Name] = struct{}{}
	}
	return rules, nil
}

func invalidRule(name, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodePolicyInvalid,
		fmt.Sprintf("invalid policy %q: %s", name, reason),
		map[string]string{"Policy": name, "Reason": reason},
	)
}
