package tabular

import "errors"

// Package-specific errors
var (
	// ErrColumnLength is returned when columns of differing lengths are combined into one dataset.
	ErrColumnLength = errors.New("tabular: columns must have equal length")

	// ErrDuplicateColumn is returned when two columns share the same name.
	ErrDuplicateColumn = errors.New("tabular: duplicate column name")

	// ErrEmptyColumnName is returned when a column is created without a name.
	ErrEmptyColumnName = errors.New("tabular: column name must not be empty")
)
