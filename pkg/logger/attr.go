package logger

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the validation run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Rule records the rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// RuleSet records the rule set name under the key "rule_set".
func RuleSet(name string) slog.Attr {
	return slog.String("rule_set", name)
}

// Dataset records the dataset or group label under the key "dataset".
func Dataset(name string) slog.Attr {
	return slog.String("dataset", name)
}

// Columns records the literal column names feeding a rule under the key
// "columns". If names is empty, it returns an empty Attr.
func Columns(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.String("columns", strings.Join(names, "+"))
}

// Param records a parameter name under the key "param".
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Rows records a record count under the key "rows".
func Rows(n int) slog.Attr {
	return slog.Int("rows", n)
}

// Failed records a failure count under the key "failed".
func Failed(n int) slog.Attr {
	return slog.Int("failed", n)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
