package checkkit

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/checkkit/pkg/tabular"
)

// Column names of the summary and error-log tables.
const (
	ColGroup          = "group"
	ColCheckName      = "check_name"
	ColDescription    = "description"
	ColTotalValidated = "total_validated"
	ColTotalPassed    = "total_passed"
	ColTotalFailed    = "total_failed"
	ColCheck          = "check"
)

// buildSummary renders one row per result, sorted by failure count so the
// noisiest checks surface first. Ties keep run order. When the run carried
// a group label the table gains a leading group column.
func buildSummary(results []Result, group string) (*tabular.Dataset, error) {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b Result) int {
		return b.Failures() - a.Failures()
	})

	names := make([]string, len(sorted))
	descriptions := make([]string, len(sorted))
	validated := make([]int64, len(sorted))
	passed := make([]int64, len(sorted))
	failed := make([]int64, len(sorted))
	for i, res := range sorted {
		names[i] = res.Instance
		descriptions[i] = res.Description
		if descriptions[i] == "" {
			descriptions[i] = humanizeName(res.Rule)
		}
		validated[i] = int64(res.Total())
		passed[i] = int64(res.Passes())
		failed[i] = int64(res.Failures())
	}

	columns := make([]tabular.Column, 0, 6)
	if group != "" {
		groups := make([]string, len(sorted))
		for i := range groups {
			groups[i] = group
		}
		columns = append(columns, tabular.Strings(ColGroup, groups...))
	}
	columns = append(columns,
		tabular.Strings(ColCheckName, names...),
		tabular.Strings(ColDescription, descriptions...),
		tabular.Ints(ColTotalValidated, validated...),
		tabular.Ints(ColTotalPassed, passed...),
		tabular.Ints(ColTotalFailed, failed...),
	)
	return tabular.New(columns...)
}

// buildErrorLog selects, per result, the dataset rows that failed, tags
// them with the check instance (and group label when set), and
// concatenates everything into one table preserving the original columns.
func buildErrorLog(results []Result, ds *tabular.Dataset, group string) (*tabular.Dataset, error) {
	source := ds.Columns()
	values := make([][]any, len(source))
	var checks []string

	for _, res := range results {
		rows := res.FailingRows()
		if len(rows) == 0 {
			continue
		}
		for j, col := range source {
			for _, row := range rows {
				values[j] = append(values[j], col.Value(row))
			}
		}
		for range rows {
			checks = append(checks, res.Instance)
		}
	}

	columns := make([]tabular.Column, 0, len(source)+2)
	for j, col := range source {
		columns = append(columns, tabular.NewColumn(col.Name(), col.Kind(), values[j]))
	}
	columns = append(columns, tabular.Strings(ColCheck, checks...))
	if group != "" {
		groups := make([]string, len(checks))
		for i := range groups {
			groups[i] = group
		}
		columns = append(columns, tabular.Strings(ColGroup, groups...))
	}
	return tabular.New(columns...)
}

// humanizeName turns a snake_case rule name into a readable description,
// e.g. "margin_positive" becomes "Margin Positive".
func humanizeName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
