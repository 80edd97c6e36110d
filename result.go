package checkkit

import "strings"

// Result holds the outcome of one rule against one concrete column
// combination: one pass/fail verdict per dataset row. A rule with shared
// parameters over N entities yields N Results per run.
type Result struct {
	// Rule is the declared rule name.
	Rule string

	// Instance distinguishes expansions of the same rule: the rule name
	// alone for a single combination, or suffixed with the entity prefix
	// (or leading column) of the combination.
	Instance string

	// Description is the declared rule description; may be empty, in
	// which case reports derive one from the rule name.
	Description string

	// Columns lists the literal dataset columns used, in parameter order.
	Columns []string

	// Ref joins Columns into a single reference string.
	Ref string

	// Passed holds one verdict per dataset row.
	Passed []bool
}

// Total returns the number of records validated.
func (r Result) Total() int { return len(r.Passed) }

// Passes returns the number of records that passed.
func (r Result) Passes() int {
	n := 0
	for _, ok := range r.Passed {
		if ok {
			n++
		}
	}
	return n
}

// Failures returns the number of records that failed.
func (r Result) Failures() int { return r.Total() - r.Passes() }

// FailingRows returns the zero-based dataset rows that failed, in order.
func (r Result) FailingRows() []int {
	var rows []int
	for i, ok := range r.Passed {
		if !ok {
			rows = append(rows, i)
		}
	}
	return rows
}

func joinRef(columns []string) string {
	return strings.Join(columns, "+")
}
