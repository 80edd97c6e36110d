package checkkit

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/checkkit/pkg/tabular"
)

// Args carries the values for one scalar invocation: the bound column value
// of every data parameter at the current row, plus the resolved option
// values. Typed accessors coerce between compatible numeric widths; a value
// the declared type cannot represent is a rule-declaration bug and panics
// with the parameter name and row, matching the engine's policy of never
// reporting partial results.
type Args struct {
	row    int
	values map[string]any
}

// Row returns the zero-based dataset row being checked.
func (a Args) Row() int { return a.row }

// Value returns the raw value for the named parameter.
func (a Args) Value(name string) any { return a.values[name] }

func (a Args) Bool(name string) bool {
	v, ok := toBool(a.values[name])
	if !ok {
		panic(a.coercionError(name, "bool"))
	}
	return v
}

func (a Args) Int(name string) int64 {
	v, ok := toInt(a.values[name])
	if !ok {
		panic(a.coercionError(name, "int"))
	}
	return v
}

func (a Args) Float(name string) float64 {
	v, ok := toFloat(a.values[name])
	if !ok {
		panic(a.coercionError(name, "float"))
	}
	return v
}

func (a Args) String(name string) string {
	v, ok := toString(a.values[name])
	if !ok {
		panic(a.coercionError(name, "string"))
	}
	return v
}

func (a Args) Time(name string) time.Time {
	v, ok := toTime(a.values[name])
	if !ok {
		panic(a.coercionError(name, "time"))
	}
	return v
}

func (a Args) coercionError(name, want string) string {
	return fmt.Sprintf("checkkit: parameter %q: cannot use value of type %T as %s (row %d)", name, a.values[name], want, a.row)
}

// SeriesArgs carries the values for one vectorized invocation: the bound
// column of every data parameter, whole and uncopied, plus the resolved
// option values. Typed column accessors allocate a converted copy; Values
// exposes the backing slice for allocation-free access.
type SeriesArgs struct {
	rows    int
	columns map[string]tabular.Column
	options map[string]any
}

// Len returns the dataset row count, which is also the length every
// returned verdict slice must have.
func (s SeriesArgs) Len() int { return s.rows }

// Column returns the bound column for the named parameter.
func (s SeriesArgs) Column(name string) tabular.Column { return s.columns[name] }

// Values returns the bound column's backing values without copying.
func (s SeriesArgs) Values(name string) []any { return s.columns[name].Values() }

func (s SeriesArgs) Bools(name string) []bool {
	col := s.columns[name]
	out := make([]bool, col.Len())
	for i, raw := range col.Values() {
		v, ok := toBool(raw)
		if !ok {
			panic(s.coercionError(name, "bool", raw, i))
		}
		out[i] = v
	}
	return out
}

func (s SeriesArgs) Ints(name string) []int64 {
	col := s.columns[name]
	out := make([]int64, col.Len())
	for i, raw := range col.Values() {
		v, ok := toInt(raw)
		if !ok {
			panic(s.coercionError(name, "int", raw, i))
		}
		out[i] = v
	}
	return out
}

func (s SeriesArgs) Floats(name string) []float64 {
	col := s.columns[name]
	out := make([]float64, col.Len())
	for i, raw := range col.Values() {
		v, ok := toFloat(raw)
		if !ok {
			panic(s.coercionError(name, "float", raw, i))
		}
		out[i] = v
	}
	return out
}

func (s SeriesArgs) Strings(name string) []string {
	col := s.columns[name]
	out := make([]string, col.Len())
	for i, raw := range col.Values() {
		v, ok := toString(raw)
		if !ok {
			panic(s.coercionError(name, "string", raw, i))
		}
		out[i] = v
	}
	return out
}

func (s SeriesArgs) Times(name string) []time.Time {
	col := s.columns[name]
	out := make([]time.Time, col.Len())
	for i, raw := range col.Values() {
		v, ok := toTime(raw)
		if !ok {
			panic(s.coercionError(name, "time", raw, i))
		}
		out[i] = v
	}
	return out
}

// Option returns the resolved value of the named option parameter.
func (s SeriesArgs) Option(name string) any { return s.options[name] }

func (s SeriesArgs) OptionBool(name string) bool {
	v, ok := toBool(s.options[name])
	if !ok {
		panic(s.optionError(name, "bool"))
	}
	return v
}

func (s SeriesArgs) OptionInt(name string) int64 {
	v, ok := toInt(s.options[name])
	if !ok {
		panic(s.optionError(name, "int"))
	}
	return v
}

func (s SeriesArgs) OptionFloat(name string) float64 {
	v, ok := toFloat(s.options[name])
	if !ok {
		panic(s.optionError(name, "float"))
	}
	return v
}

func (s SeriesArgs) OptionString(name string) string {
	v, ok := toString(s.options[name])
	if !ok {
		panic(s.optionError(name, "string"))
	}
	return v
}

func (s SeriesArgs) coercionError(name, want string, raw any, row int) string {
	return fmt.Sprintf("checkkit: parameter %q: cannot use value of type %T as %s (row %d)", name, raw, want, row)
}

func (s SeriesArgs) optionError(name, want string) string {
	return fmt.Sprintf("checkkit: option %q: cannot use value of type %T as %s", name, s.options[name], want)
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}
