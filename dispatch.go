package checkkit

import (
	"fmt"

	"github.com/dmitrymomot/checkkit/pkg/tabular"
)

// runRule executes one bound rule against the dataset and returns one
// Result per concrete argument set. The invocation mode is a property of
// the rule (fixed at construction), not a per-run decision: vectorized
// rules receive whole columns once per set, scalar rules run once per row
// per set. Check functions are trusted code; anything they panic with
// propagates to the caller untouched.
func runRule(rule *Rule, b Binding, ds *tabular.Dataset, optionValues map[string]any) ([]Result, error) {
	opts, err := resolveOptions(rule, optionValues)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, b.Expansions())
	for set := 0; set < b.Expansions(); set++ {
		columns := make([]string, len(b.entries))
		bound := make(map[string]tabular.Column, len(b.entries))
		for i, e := range b.entries {
			name := e.columnFor(set)
			col, ok := ds.Column(name)
			if !ok {
				// Bind guarantees presence; a miss here means the dataset
				// changed between binding and dispatch.
				return nil, &MissingColumnError{Rule: rule.name, Param: e.param.Name, InferShared: true}
			}
			columns[i] = name
			bound[e.param.Name] = col
		}

		var passed []bool
		if rule.Vectorized() {
			passed = invokeSeries(rule, bound, opts, ds.Len())
		} else {
			passed = invokeScalar(rule, bound, opts, ds.Len())
		}

		results = append(results, Result{
			Rule:        rule.name,
			Instance:    instanceName(rule.name, b, set, columns),
			Description: rule.description,
			Columns:     columns,
			Ref:         joinRef(columns),
			Passed:      passed,
		})
	}
	return results, nil
}

func invokeSeries(rule *Rule, bound map[string]tabular.Column, opts map[string]any, rows int) []bool {
	out := rule.seriesFn(SeriesArgs{rows: rows, columns: bound, options: opts})
	if len(out) != rows {
		panic(fmt.Sprintf("checkkit: series check of rule %q returned %d verdicts for %d rows", rule.name, len(out), rows))
	}
	return out
}

func invokeScalar(rule *Rule, bound map[string]tabular.Column, opts map[string]any, rows int) []bool {
	passed := make([]bool, rows)
	for row := 0; row < rows; row++ {
		values := make(map[string]any, len(bound)+len(opts))
		for param, col := range bound {
			values[param] = col.Value(row)
		}
		for name, v := range opts {
			values[name] = v
		}
		passed[row] = rule.scalarFn(Args{row: row, values: values})
	}
	return passed
}

// resolveOptions overlays per-run option values on the rule's declared
// defaults. An option left without either is a configuration fault and
// surfaces before any row is touched.
func resolveOptions(rule *Rule, optionValues map[string]any) (map[string]any, error) {
	if len(rule.options) == 0 {
		return nil, nil
	}
	resolved := make(map[string]any, len(rule.options))
	for _, opt := range rule.options {
		if v, ok := optionValues[opt.Name]; ok {
			resolved[opt.Name] = v
			continue
		}
		if opt.HasDefault {
			resolved[opt.Name] = opt.Default
			continue
		}
		return nil, &ConfigurationError{Rule: rule.name, Reason: fmt.Sprintf("option %q has no value and no default", opt.Name)}
	}
	return resolved, nil
}

// instanceName distinguishes expansions of one rule in reports: the entity
// prefix when the group came from naming-convention inference, the leading
// column otherwise.
func instanceName(rule string, b Binding, set int, columns []string) string {
	if b.Expansions() == 1 {
		return rule
	}
	if prefix := b.setPrefix(set); prefix != "" {
		return rule + "_" + prefix
	}
	for i, e := range b.entries {
		if e.shared {
			return rule + "_" + columns[i]
		}
	}
	return rule
}
