package checkkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit"
)

func createTestRule(name string) *checkkit.Rule {
	return checkkit.MustRule(name,
		checkkit.Scalar("value", checkkit.Float),
		checkkit.Check(func(checkkit.Args) bool { return true }),
	)
}

func TestNewRuleSet(t *testing.T) {
	t.Parallel()

	t.Run("collects rules in declaration order", func(t *testing.T) {
		t.Parallel()
		first := createTestRule("first")
		second := createTestRule("second")

		set, err := checkkit.NewRuleSet("report",
			checkkit.WithRule(first),
			checkkit.WithRule(second),
		)
		require.NoError(t, err)

		assert.Equal(t, "report", set.Name())
		assert.Equal(t, 2, set.Len())
		rules := set.Rules()
		require.Len(t, rules, 2)
		assert.Equal(t, "first", rules[0].Name())
		assert.Equal(t, "second", rules[1].Name())
	})

	t.Run("set without rules is valid", func(t *testing.T) {
		t.Parallel()
		set, err := checkkit.NewRuleSet("vocabulary",
			checkkit.WithAlias("price", "Total Price"),
		)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
		assert.Equal(t, checkkit.AliasMap{"price": {"Total Price"}}, set.Aliases())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := checkkit.NewRuleSet("")
		var cfgErr *checkkit.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "name is required")
	})

	t.Run("nil rule is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := checkkit.NewRuleSet("report", checkkit.WithRule(nil))
		var cfgErr *checkkit.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "nil rule")
	})

	t.Run("duplicate rule names are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := checkkit.NewRuleSet("report",
			checkkit.WithRules(createTestRule("margin"), createTestRule("margin")),
		)
		var cfgErr *checkkit.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, `duplicate rule "margin"`)
	})

	t.Run("duplicate across base and own rules is rejected", func(t *testing.T) {
		t.Parallel()
		base := checkkit.MustRuleSet("base", checkkit.WithRule(createTestRule("margin")))
		_, err := checkkit.NewRuleSet("derived",
			checkkit.Extend(base),
			checkkit.WithRule(createTestRule("margin")),
		)
		var cfgErr *checkkit.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, `duplicate rule "margin"`)
	})
}

func TestRuleSetComposition(t *testing.T) {
	t.Parallel()

	t.Run("base rules come before own rules", func(t *testing.T) {
		t.Parallel()
		base := checkkit.MustRuleSet("base",
			checkkit.WithRule(createTestRule("base_rule")),
		)
		derived := checkkit.MustRuleSet("derived",
			checkkit.Extend(base),
			checkkit.WithRule(createTestRule("own_rule")),
		)

		rules := derived.Rules()
		require.Len(t, rules, 2)
		assert.Equal(t, "base_rule", rules[0].Name())
		assert.Equal(t, "own_rule", rules[1].Name())
	})

	t.Run("base aliases win over the derived overlay", func(t *testing.T) {
		t.Parallel()
		base := checkkit.MustRuleSet("base",
			checkkit.WithAlias("price", "Total Price"),
		)
		derived := checkkit.MustRuleSet("derived",
			checkkit.Extend(base),
			checkkit.WithAlias("price", "Unit Price"),
			checkkit.WithAlias("quantity", "Qty"),
		)

		aliases := derived.Aliases()
		assert.Equal(t, []string{"Total Price"}, aliases["price"])
		assert.Equal(t, []string{"Qty"}, aliases["quantity"])
	})

	t.Run("earlier base wins over later base", func(t *testing.T) {
		t.Parallel()
		first := checkkit.MustRuleSet("first", checkkit.WithAlias("price", "First Price"))
		second := checkkit.MustRuleSet("second", checkkit.WithAlias("price", "Second Price"))

		derived := checkkit.MustRuleSet("derived",
			checkkit.Extend(first),
			checkkit.Extend(second),
		)
		assert.Equal(t, []string{"First Price"}, derived.Aliases()["price"])
	})

	t.Run("repeated alias replaces within the own overlay", func(t *testing.T) {
		t.Parallel()
		set := checkkit.MustRuleSet("report",
			checkkit.WithAlias("price", "Total Price"),
			checkkit.WithAlias("price", "Unit Price"),
		)
		assert.Equal(t, []string{"Unit Price"}, set.Aliases()["price"])
	})

	t.Run("bulk alias overlay merges into the own layer", func(t *testing.T) {
		t.Parallel()
		set := checkkit.MustRuleSet("report",
			checkkit.WithAliases(checkkit.AliasMap{
				"price":    {"Total Price"},
				"quantity": {"Qty", "Quantity Ordered"},
			}),
		)
		aliases := set.Aliases()
		assert.Equal(t, []string{"Total Price"}, aliases["price"])
		assert.Equal(t, []string{"Qty", "Quantity Ordered"}, aliases["quantity"])
	})

	t.Run("nil base is ignored", func(t *testing.T) {
		t.Parallel()
		set, err := checkkit.NewRuleSet("report", checkkit.Extend(nil))
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("composition does not mutate the base", func(t *testing.T) {
		t.Parallel()
		base := checkkit.MustRuleSet("base",
			checkkit.WithRule(createTestRule("base_rule")),
			checkkit.WithAlias("price", "Total Price"),
		)
		_ = checkkit.MustRuleSet("derived",
			checkkit.Extend(base),
			checkkit.WithRule(createTestRule("own_rule")),
			checkkit.WithAlias("quantity", "Qty"),
		)

		assert.Equal(t, 1, base.Len())
		assert.NotContains(t, base.Aliases(), "quantity")
	})
}

func TestRuleSetAccessors(t *testing.T) {
	t.Parallel()

	set := checkkit.MustRuleSet("report",
		checkkit.WithRule(createTestRule("margin")),
		checkkit.WithAlias("price", "Total Price"),
	)

	t.Run("rule lookup by name", func(t *testing.T) {
		t.Parallel()
		rule, ok := set.Rule("margin")
		require.True(t, ok)
		assert.Equal(t, "margin", rule.Name())

		_, ok = set.Rule("missing")
		assert.False(t, ok)
	})

	t.Run("aliases accessor returns a copy", func(t *testing.T) {
		t.Parallel()
		aliases := set.Aliases()
		aliases["price"][0] = "mutated"
		aliases["extra"] = []string{"Extra"}

		fresh := set.Aliases()
		assert.Equal(t, []string{"Total Price"}, fresh["price"])
		assert.NotContains(t, fresh, "extra")
	})
}

func TestMustRuleSet(t *testing.T) {
	t.Parallel()

	t.Run("panics on invalid composition", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			checkkit.MustRuleSet("")
		})
	})
}
