package checkkit

import (
	"fmt"
	"slices"
)

// RuleSet is a named, immutable collection of rules plus a resolved alias
// map. Layering is explicit composition: a set is built from zero or more
// base sets, additional rules, and an alias overlay. The alias chain is
// flattened once at construction, so runs never consult more than one map.
type RuleSet struct {
	name    string
	rules   []*Rule
	aliases AliasMap
}

// RuleSetOption configures rule set construction.
type RuleSetOption func(*ruleSetConfig)

type ruleSetConfig struct {
	bases   []*RuleSet
	rules   []*Rule
	overlay AliasMap
}

// Extend layers this set on top of a base set. Base rules come first and
// base aliases win on key collisions. May be given several times; earlier
// bases are more fundamental.
func Extend(base *RuleSet) RuleSetOption {
	return func(c *ruleSetConfig) {
		if base != nil {
			c.bases = append(c.bases, base)
		}
	}
}

// WithRule adds one rule declared by this set.
func WithRule(r *Rule) RuleSetOption {
	return func(c *ruleSetConfig) { c.rules = append(c.rules, r) }
}

// WithRules adds several rules declared by this set.
func WithRules(rs ...*Rule) RuleSetOption {
	return func(c *ruleSetConfig) { c.rules = append(c.rules, rs...) }
}

// WithAlias maps a logical parameter name to the literal columns it may
// bind to. Repeating the same parameter replaces the earlier entry of this
// set's own overlay; entries inherited from a base are never replaced.
func WithAlias(param string, columns ...string) RuleSetOption {
	return func(c *ruleSetConfig) {
		if c.overlay == nil {
			c.overlay = make(AliasMap)
		}
		c.overlay[param] = slices.Clone(columns)
	}
}

// WithAliases merges a whole alias overlay into this set's own layer.
func WithAliases(m AliasMap) RuleSetOption {
	return func(c *ruleSetConfig) {
		if len(m) == 0 {
			return
		}
		if c.overlay == nil {
			c.overlay = make(AliasMap)
		}
		for param, cols := range m {
			c.overlay[param] = slices.Clone(cols)
		}
	}
}

// NewRuleSet builds a rule set from bases, own rules, and an alias overlay.
// A set with no rules is valid: alias-only bases are a common way to share
// a column vocabulary between datasets. Nil or identically-named rules are
// rejected with *ConfigurationError.
func NewRuleSet(name string, opts ...RuleSetOption) (*RuleSet, error) {
	if name == "" {
		return nil, &ConfigurationError{Reason: "rule set name is required"}
	}

	cfg := &ruleSetConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var rules []*Rule
	for _, base := range cfg.bases {
		rules = append(rules, base.rules...)
	}
	rules = append(rules, cfg.rules...)

	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r == nil {
			return nil, &ConfigurationError{Rule: name, Reason: "rule set contains a nil rule"}
		}
		if _, dup := seen[r.name]; dup {
			return nil, &ConfigurationError{Rule: name, Reason: fmt.Sprintf("duplicate rule %q", r.name)}
		}
		seen[r.name] = struct{}{}
	}

	layers := make([]AliasMap, 0, len(cfg.bases)+1)
	for _, base := range cfg.bases {
		layers = append(layers, base.aliases)
	}
	layers = append(layers, cfg.overlay)

	return &RuleSet{
		name:    name,
		rules:   rules,
		aliases: MergeAliases(layers...),
	}, nil
}

// MustRuleSet is like NewRuleSet but panics on error.
func MustRuleSet(name string, opts ...RuleSetOption) *RuleSet {
	s, err := NewRuleSet(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *RuleSet) Name() string { return s.name }

// Rules returns the set's rules in declaration order, bases first.
func (s *RuleSet) Rules() []*Rule {
	return slices.Clone(s.rules)
}

// Rule returns the named rule and whether it exists.
func (s *RuleSet) Rule(name string) (*Rule, bool) {
	for _, r := range s.rules {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// Aliases returns a copy of the resolved alias map.
func (s *RuleSet) Aliases() AliasMap {
	return s.aliases.Clone()
}

func (s *RuleSet) Len() int { return len(s.rules) }
