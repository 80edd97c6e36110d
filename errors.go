package checkkit

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a rule or rule set declared in a way the
// engine cannot execute: missing check function, untyped or duplicate
// parameters, no data parameters, or an option left without a value.
// It is raised at construction time, never mid-run.
type ConfigurationError struct {
	Rule   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Rule == "" {
		return "checkkit: invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("checkkit: invalid configuration of %q: %s", e.Rule, e.Reason)
}

// MissingColumnError reports a rule parameter that could not be bound to
// any dataset column by alias, exact match, or naming-convention inference.
type MissingColumnError struct {
	Rule  string
	Param string

	// InferShared records whether shared inference was enabled for the
	// failed run, so the message can suggest turning it on.
	InferShared bool
}

func (e *MissingColumnError) Error() string {
	msg := fmt.Sprintf("checkkit: no column matches parameter %q of rule %q", e.Param, e.Rule)
	if !e.InferShared {
		msg += "; consider enabling shared inference (WithInferShared)"
	}
	return msg
}

// AlignmentError reports shared parameters of one rule that resolved to
// column groups of different sizes or with mismatched entity prefixes.
// Missing lists the column names the shorter group lacks.
type AlignmentError struct {
	Rule    string
	Param   string
	Want    int
	Got     int
	Missing []string
}

func (e *AlignmentError) Error() string {
	msg := fmt.Sprintf("checkkit: shared parameter %q of rule %q binds %d columns, want %d", e.Param, e.Rule, e.Got, e.Want)
	if e.Got == e.Want {
		msg = fmt.Sprintf("checkkit: shared parameter %q of rule %q is misaligned with its counterpart groups", e.Param, e.Rule)
	}
	if len(e.Missing) > 0 {
		msg += "; missing columns: " + strings.Join(e.Missing, ", ")
	}
	return msg
}

// MixedParameterTypeError reports a rule declaring both scalar and
// column-series data parameters. Rules must be homogeneous so the
// dispatcher can pick one invocation mode per rule.
type MixedParameterTypeError struct {
	Rule         string
	ScalarParams []string
	SeriesParams []string
}

func (e *MixedParameterTypeError) Error() string {
	return fmt.Sprintf("checkkit: rule %q mixes scalar parameters (%s) with series parameters (%s)",
		e.Rule, strings.Join(e.ScalarParams, ", "), strings.Join(e.SeriesParams, ", "))
}

// NotRunError reports a summary or error-log request made before any
// validation run produced results.
type NotRunError struct {
	Op string
}

func (e *NotRunError) Error() string {
	return fmt.Sprintf("checkkit: %s requested before any validation run", e.Op)
}
