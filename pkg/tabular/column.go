package tabular

import "time"

// Kind describes the value type a column holds. Columns built through the
// typed constructors report the matching kind; Values produces KindAny.
type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "any"
	}
}

// Column is a named, ordered sequence of values of uniform kind.
// Columns are value types; the backing slice is shared between copies,
// so callers must treat a column's values as read-only.
type Column struct {
	name   string
	kind   Kind
	values []any
}

// NewColumn creates a column from pre-boxed values. The typed constructors
// below are preferred; NewColumn exists for callers assembling derived
// tables that must preserve the kind of a source column.
func NewColumn(name string, kind Kind, values []any) Column {
	return Column{name: name, kind: kind, values: values}
}

func Bools(name string, vs ...bool) Column {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Column{name: name, kind: KindBool, values: values}
}

func Ints(name string, vs ...int64) Column {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Column{name: name, kind: KindInt, values: values}
}

func Floats(name string, vs ...float64) Column {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Column{name: name, kind: KindFloat, values: values}
}

func Strings(name string, vs ...string) Column {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Column{name: name, kind: KindString, values: values}
}

func Times(name string, vs ...time.Time) Column {
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return Column{name: name, kind: KindTime, values: values}
}

// Values creates a column of mixed or caller-defined values.
func Values(name string, vs ...any) Column {
	values := make([]any, len(vs))
	copy(values, vs)
	return Column{name: name, kind: KindAny, values: values}
}

func (c Column) Name() string { return c.name }

func (c Column) Kind() Kind { return c.kind }

func (c Column) Len() int { return len(c.values) }

// Value returns the value at row i. Panics when i is out of range,
// matching slice indexing semantics.
func (c Column) Value(i int) any { return c.values[i] }

// Values returns the backing slice without copying, so whole-column
// consumers avoid per-row allocation. Callers must not mutate it.
func (c Column) Values() []any { return c.values }

// Take returns a new column with the same name and kind containing the
// values at the given row indices, in the given order.
func (c Column) Take(rows []int) Column {
	values := make([]any, len(rows))
	for i, r := range rows {
		values[i] = c.values[r]
	}
	return Column{name: c.name, kind: c.kind, values: values}
}
