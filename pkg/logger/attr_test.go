package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("run", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "run", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRunID(t *testing.T) {
	attr := logger.RunID("8e5c")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "8e5c", attr.Value.Any())

	empty := logger.RunID(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRule(t *testing.T) {
	attr := logger.Rule("margin_positive")
	require.Equal(t, "rule", attr.Key)
	assert.Equal(t, "margin_positive", attr.Value.String())
}

func TestRuleSet(t *testing.T) {
	attr := logger.RuleSet("portfolio")
	require.Equal(t, "rule_set", attr.Key)
	assert.Equal(t, "portfolio", attr.Value.String())
}

func TestDataset(t *testing.T) {
	attr := logger.Dataset("march_report")
	require.Equal(t, "dataset", attr.Key)
	assert.Equal(t, "march_report", attr.Value.String())
}

func TestColumns(t *testing.T) {
	attr := logger.Columns("tsm_gross_income", "tsm_expenses")
	require.Equal(t, "columns", attr.Key)
	assert.Equal(t, "tsm_gross_income+tsm_expenses", attr.Value.String())

	empty := logger.Columns()
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestParam(t *testing.T) {
	attr := logger.Param("stock_expenses")
	require.Equal(t, "param", attr.Key)
	assert.Equal(t, "stock_expenses", attr.Value.String())
}

func TestRows(t *testing.T) {
	attr := logger.Rows(1042)
	require.Equal(t, "rows", attr.Key)
	assert.Equal(t, int64(1042), attr.Value.Int64())
}

func TestFailed(t *testing.T) {
	attr := logger.Failed(3)
	require.Equal(t, "failed", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(250 * time.Millisecond)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 250*time.Millisecond, attr.Value.Duration())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("binder")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "binder", attr.Value.String())
}
