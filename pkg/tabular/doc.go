// Package tabular provides a minimal in-memory container for tabular data:
// named, ordered, equal-length columns of uniform kind.
//
// It is the exchange format between data producers (file readers, query
// adapters, test fixtures) and consumers such as validation engines and
// report writers. The container is deliberately small: no joins, no
// grouping, no mutation. A Dataset is assembled once and read many times.
//
// # Usage
//
//	ds, err := tabular.New(
//	    tabular.Strings("id", "a-1", "a-2"),
//	    tabular.Floats("gross_income", 150, 90),
//	    tabular.Floats("expenses", 10, 25),
//	)
//	if err != nil {
//	    // columns disagreed on length or names collided
//	}
//	col, ok := ds.Column("gross_income")
//
// Columns share their backing slice between copies; treat values as
// read-only. Derived tables (row selections, filtered views) are built
// with Column.Take and a fresh New call.
//
// # Error Handling
//
// Constructors return sentinel errors (ErrColumnLength, ErrDuplicateColumn,
// ErrEmptyColumnName) wrapped with positional detail, so callers can match
// with errors.Is while logging the specific offender.
package tabular
