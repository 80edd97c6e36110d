package checkkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSetConfig is the YAML overlay applied on top of a code-declared rule
// set: per-dataset alias additions, rule enable flags and description
// overrides, and run defaults. Rules themselves stay in code; the overlay
// only adjusts how a declared set runs against one family of reports.
//
//	name: monthly_report
//	infer_shared: true
//	group_label: march
//	aliases:
//	  price: Total Price
//	  quantity: [Qty, Quantity Ordered]
//	rules:
//	  margin_positive:
//	    description: Gross income covers expenses.
//	  legacy_totals:
//	    enabled: false
//	options:
//	  option_threshold: 0.25
type RuleSetConfig struct {
	Name        string                `yaml:"name,omitempty"`
	InferShared bool                  `yaml:"infer_shared,omitempty"`
	GroupLabel  string                `yaml:"group_label,omitempty"`
	Aliases     map[string]AliasValue `yaml:"aliases,omitempty"`
	Rules       map[string]RuleConfig `yaml:"rules,omitempty"`
	Options     map[string]any        `yaml:"options,omitempty"`
}

// RuleConfig adjusts one declared rule. A nil Enabled keeps the rule; an
// empty Description keeps the declared one.
type RuleConfig struct {
	Enabled     *bool  `yaml:"enabled,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// AliasValue lists the literal columns an alias maps to. It accepts both a
// single scalar and a sequence in YAML, so the common one-column case stays
// a one-liner.
type AliasValue []string

func (v *AliasValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*v = AliasValue{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*v = AliasValue(many)
		return nil
	default:
		return fmt.Errorf("alias value must be a column name or a list of column names, got %s", nodeKind(node.Kind))
	}
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "document"
	}
}

// ParseRuleSetConfig decodes a YAML overlay from raw bytes.
func ParseRuleSetConfig(data []byte) (*RuleSetConfig, error) {
	var cfg RuleSetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRuleSetConfig reads a YAML overlay from a file.
func LoadRuleSetConfig(path string) (*RuleSetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRuleSetConfig(data)
}

// Apply produces a new rule set with the overlay applied: disabled rules are
// removed, description overrides take effect, and overlay aliases are added
// for parameters the set does not alias yet (an existing key keeps the set's
// columns, matching rule set layering). The input set is left untouched.
// Referencing a rule the set does not declare fails with
// *ConfigurationError, since a typo in the overlay would otherwise silently
// keep a check the caller meant to disable.
func (c *RuleSetConfig) Apply(set *RuleSet) (*RuleSet, error) {
	if set == nil {
		return nil, &ConfigurationError{Reason: "rule set is required"}
	}
	for name := range c.Rules {
		if _, ok := set.Rule(name); !ok {
			return nil, &ConfigurationError{Rule: set.name, Reason: fmt.Sprintf("overlay references unknown rule %q", name)}
		}
	}

	name := set.name
	if c.Name != "" {
		name = c.Name
	}

	rules := make([]*Rule, 0, len(set.rules))
	for _, r := range set.rules {
		rc, ok := c.Rules[r.name]
		if !ok {
			rules = append(rules, r)
			continue
		}
		if rc.Enabled != nil && !*rc.Enabled {
			continue
		}
		if rc.Description != "" {
			r = r.withDescription(rc.Description)
		}
		rules = append(rules, r)
	}

	overlay := make(AliasMap, len(c.Aliases))
	for param, cols := range c.Aliases {
		overlay[param] = []string(cols)
	}

	return &RuleSet{
		name:    name,
		rules:   rules,
		aliases: MergeAliases(set.aliases, overlay),
	}, nil
}

// RunOptions converts the overlay's run defaults into options, suitable for
// New(set, WithDefaults(cfg.RunOptions()...)).
func (c *RuleSetConfig) RunOptions() []RunOption {
	var opts []RunOption
	if c.InferShared {
		opts = append(opts, WithInferShared(true))
	}
	if c.GroupLabel != "" {
		opts = append(opts, WithGroupLabel(c.GroupLabel))
	}
	if len(c.Options) > 0 {
		opts = append(opts, WithOptionValues(c.Options))
	}
	return opts
}
