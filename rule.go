package checkkit

import (
	"fmt"
	"slices"
)

// ParamType declares the value type a parameter expects. The zero value is
// invalid so that an accidentally omitted type is caught at construction.
type ParamType int

const (
	Bool ParamType = iota + 1
	Int
	Float
	String
	Time
	Any
)

func (t ParamType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Time:
		return "time"
	case Any:
		return "any"
	default:
		return "invalid"
	}
}

func (t ParamType) valid() bool {
	return t >= Bool && t <= Any
}

// ParamRole declares how a parameter is fed during execution: a scalar per
// row, a whole column series per invocation, or an option value supplied by
// the caller instead of the dataset.
type ParamRole int

const (
	RoleScalar ParamRole = iota + 1
	RoleSeries
	RoleOption
)

func (r ParamRole) String() string {
	switch r {
	case RoleScalar:
		return "scalar"
	case RoleSeries:
		return "series"
	case RoleOption:
		return "option"
	default:
		return "invalid"
	}
}

// Param is one entry of a rule's declared parameter schema.
type Param struct {
	Name    string
	Role    ParamRole
	Type    ParamType
	Default any

	// HasDefault distinguishes an explicit nil default from no default.
	// Only option parameters may carry one.
	HasDefault bool
}

// ScalarCheck is the check function of a scalar rule. It is invoked once
// per dataset row per concrete column combination and reads its arguments
// through the typed Args accessors.
type ScalarCheck func(Args) bool

// SeriesCheck is the check function of a vectorized rule. It is invoked
// once per concrete column combination with whole columns and must return
// one verdict per dataset row.
type SeriesCheck func(SeriesArgs) []bool

// Rule wraps one check function together with its explicit parameter
// schema. Rules are immutable once constructed; the same rule value can be
// shared across rule sets and runs.
type Rule struct {
	name        string
	description string
	params      []Param // data parameters in declaration order
	options     []Param
	scalarFn    ScalarCheck
	seriesFn    SeriesCheck
}

// RuleOption configures rule construction.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	description string
	params      []Param
	scalarFn    ScalarCheck
	seriesFn    SeriesCheck
	checks      int
}

// WithDescription sets the human-readable purpose shown in summary tables.
func WithDescription(s string) RuleOption {
	return func(c *ruleConfig) { c.description = s }
}

// Scalar declares a per-row data parameter of the given type.
func Scalar(name string, t ParamType) RuleOption {
	return func(c *ruleConfig) {
		c.params = append(c.params, Param{Name: name, Role: RoleScalar, Type: t})
	}
}

// Series declares a whole-column data parameter of the given type.
func Series(name string, t ParamType) RuleOption {
	return func(c *ruleConfig) {
		c.params = append(c.params, Param{Name: name, Role: RoleSeries, Type: t})
	}
}

// Option declares a non-data configuration parameter. Its value is supplied
// by the caller at run time, never bound to a column.
func Option(name string, t ParamType) RuleOption {
	return func(c *ruleConfig) {
		c.params = append(c.params, Param{Name: name, Role: RoleOption, Type: t})
	}
}

// OptionDefault declares an option parameter with a default used when the
// run supplies no value.
func OptionDefault(name string, t ParamType, def any) RuleOption {
	return func(c *ruleConfig) {
		c.params = append(c.params, Param{Name: name, Role: RoleOption, Type: t, Default: def, HasDefault: true})
	}
}

// Check sets the check function of a scalar rule. Nil functions are
// ignored so the missing-check diagnostic stays accurate.
func Check(fn ScalarCheck) RuleOption {
	return func(c *ruleConfig) {
		if fn != nil {
			c.scalarFn = fn
			c.checks++
		}
	}
}

// CheckSeries sets the check function of a vectorized rule. Nil functions
// are ignored so the missing-check diagnostic stays accurate.
func CheckSeries(fn SeriesCheck) RuleOption {
	return func(c *ruleConfig) {
		if fn != nil {
			c.seriesFn = fn
			c.checks++
		}
	}
}

// NewRule constructs an immutable rule from its declared schema. It returns
// *ConfigurationError when the declaration is incomplete and
// *MixedParameterTypeError when scalar and series data parameters are mixed
// within one rule.
func NewRule(name string, opts ...RuleOption) (*Rule, error) {
	if name == "" {
		return nil, &ConfigurationError{Reason: "rule name is required"}
	}

	cfg := &ruleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	seen := make(map[string]struct{}, len(cfg.params))
	var data, options []Param
	var scalarNames, seriesNames []string
	for _, p := range cfg.params {
		if p.Name == "" {
			return nil, &ConfigurationError{Rule: name, Reason: "parameter name must not be empty"}
		}
		if !p.Type.valid() {
			return nil, &ConfigurationError{Rule: name, Reason: fmt.Sprintf("parameter %q has no declared type", p.Name)}
		}
		if _, dup := seen[p.Name]; dup {
			return nil, &ConfigurationError{Rule: name, Reason: fmt.Sprintf("duplicate parameter %q", p.Name)}
		}
		seen[p.Name] = struct{}{}

		switch p.Role {
		case RoleScalar:
			scalarNames = append(scalarNames, p.Name)
			data = append(data, p)
		case RoleSeries:
			seriesNames = append(seriesNames, p.Name)
			data = append(data, p)
		case RoleOption:
			if p.HasDefault && p.Default != nil {
				if err := checkAssignable(p.Default, p.Type); err != nil {
					return nil, &ConfigurationError{Rule: name, Reason: fmt.Sprintf("default for option %q: %v", p.Name, err)}
				}
			}
			options = append(options, p)
		}
	}

	if len(scalarNames) > 0 && len(seriesNames) > 0 {
		return nil, &MixedParameterTypeError{Rule: name, ScalarParams: scalarNames, SeriesParams: seriesNames}
	}
	if len(data) == 0 {
		return nil, &ConfigurationError{Rule: name, Reason: "rule declares no data parameters"}
	}

	vectorized := len(seriesNames) > 0
	switch {
	case cfg.checks == 0:
		return nil, &ConfigurationError{Rule: name, Reason: "rule declares no check function"}
	case cfg.checks > 1:
		return nil, &ConfigurationError{Rule: name, Reason: "rule declares more than one check function"}
	case vectorized && cfg.seriesFn == nil:
		return nil, &ConfigurationError{Rule: name, Reason: "series parameters require CheckSeries"}
	case !vectorized && cfg.scalarFn == nil:
		return nil, &ConfigurationError{Rule: name, Reason: "scalar parameters require Check"}
	}

	return &Rule{
		name:        name,
		description: cfg.description,
		params:      data,
		options:     options,
		scalarFn:    cfg.scalarFn,
		seriesFn:    cfg.seriesFn,
	}, nil
}

// MustRule is like NewRule but panics on error. Intended for rule sets
// declared as package-level fixtures where the schema is known to be valid.
func MustRule(name string, opts ...RuleOption) *Rule {
	r, err := NewRule(name, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) Name() string { return r.name }

func (r *Rule) Description() string { return r.description }

// Vectorized reports whether the rule is invoked once per concrete column
// combination with whole columns, as opposed to once per row.
func (r *Rule) Vectorized() bool { return r.seriesFn != nil }

// Params returns the data parameter schema in declaration order.
func (r *Rule) Params() []Param {
	return slices.Clone(r.params)
}

// Options returns the option parameter schema in declaration order.
func (r *Rule) Options() []Param {
	return slices.Clone(r.options)
}

// withDescription returns a copy with a replaced description. Used by
// configuration overlays; the original rule is left untouched.
func (r *Rule) withDescription(s string) *Rule {
	clone := *r
	clone.description = s
	return &clone
}

func checkAssignable(v any, t ParamType) error {
	switch t {
	case Bool:
		if _, ok := toBool(v); !ok {
			return fmt.Errorf("value of type %T is not assignable to bool", v)
		}
	case Int:
		if _, ok := toInt(v); !ok {
			return fmt.Errorf("value of type %T is not assignable to int", v)
		}
	case Float:
		if _, ok := toFloat(v); !ok {
			return fmt.Errorf("value of type %T is not assignable to float", v)
		}
	case String:
		if _, ok := toString(v); !ok {
			return fmt.Errorf("value of type %T is not assignable to string", v)
		}
	case Time:
		if _, ok := toTime(v); !ok {
			return fmt.Errorf("value of type %T is not assignable to time", v)
		}
	}
	return nil
}
