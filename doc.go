// Package checkkit is a rule-binding and execution engine for validating
// tabular datasets.
//
// A caller declares validation rules as small check functions with an
// explicit, typed parameter schema. The engine determines which dataset
// column feeds each parameter, executes every rule against every matching
// column combination, and reports pass/fail outcomes per record. The column
// names of a dataset vary per report, so the binding step reconciles the
// fixed parameter vocabulary of the rules against whatever columns the
// dataset actually carries.
//
// Key Features:
//
//   - Explicit parameter schemas instead of reflection: Scalar, Series, and
//     Option declarations with a declared type each
//   - Alias maps from logical parameter names to literal column names,
//     layerable across composed rule sets without silent overwrites
//   - Shared-parameter inference: one logical parameter replicated across
//     column families following a naming convention (tsm_expenses,
//     vt_expenses), with pluggable name splitting
//   - Vectorized rules invoked once per column combination and scalar rules
//     invoked once per row, chosen by the rule's schema
//   - Summary and error-log deliverables as plain tabular datasets
//
// Basic Usage:
//
//	margin := checkkit.MustRule("margin_positive",
//		checkkit.WithDescription("Gross income covers expenses."),
//		checkkit.Scalar("stock_gross_income", checkkit.Float),
//		checkkit.Scalar("stock_expenses", checkkit.Float),
//		checkkit.Check(func(a checkkit.Args) bool {
//			return a.Float("stock_gross_income")-a.Float("stock_expenses") >= 0
//		}),
//	)
//
//	set := checkkit.MustRuleSet("portfolio", checkkit.WithRule(margin))
//
//	ds := tabular.MustNew(
//		tabular.Strings("id", "a-1", "a-2"),
//		tabular.Floats("tsm_gross_income", 150, 90),
//		tabular.Floats("tsm_expenses", 10, 125),
//	)
//
//	runner := checkkit.New(set)
//	if _, err := runner.Run(ds, checkkit.WithInferShared(true)); err != nil {
//		// a parameter could not be bound, or the declaration is invalid
//	}
//	summary, _ := runner.Summary()
//	failures, _ := runner.ErrorLog()
//
// Binding Precedence:
//
// Each data parameter resolves against the dataset in a fixed order: an
// explicit alias entry wins over an exact column name match, which wins over
// naming-convention inference. Inference is off by default and enabled per
// run with WithInferShared. When several columns share a parameter's base
// name, the rule expands into one result per entity prefix; groups that do
// not line up across the rule's parameters abort the run with a diagnostic
// naming the missing columns.
//
// Composition:
//
// Rule sets compose explicitly instead of inheriting:
//
//	base := checkkit.MustRuleSet("common",
//		checkkit.WithRule(margin),
//		checkkit.WithAlias("price", "Total Price"),
//	)
//	monthly := checkkit.MustRuleSet("monthly_report",
//		checkkit.Extend(base),
//		checkkit.WithRule(rowCount),
//		checkkit.WithAlias("price", "Unit Price"), // ignored: base already aliases price
//	)
//
// A derived set adds rules and aliases; an alias key already present in a
// base keeps the base's columns.
//
// The engine follows these principles:
//   - Declarations are validated at construction, not mid-run
//   - A run either completes for every rule or reports nothing
//   - Datasets are read-only; results are plain values
//   - Explicit over implicit
package checkkit
