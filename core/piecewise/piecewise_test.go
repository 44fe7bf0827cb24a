package piecewise

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/table"
)

var guides = table.NewSchema("guides")

func bracketed(t *testing.T) *Function {
	t.Helper()
	fn, err := NewFunction("charm", guides, 0, 50,
		Bracket{Upper: 10, Cost: func(n int) table.Record { return table.Ints(guides, int64(5*n)) }},
		Bracket{Upper: 25, Cost: func(n int) table.Record { return table.Ints(guides, int64(50+10*(n-10))) }},
		Bracket{Upper: 50, Cost: func(n int) table.Record { return table.Ints(guides, int64(200+20*(n-25))) }},
	)
	require.NoError(t, err)
	return fn
}

func TestBracketBoundariesAreClosed(t *testing.T) {
	fn := bracketed(t)
	tests := []struct {
		level   int
		bracket int
		guides  string
	}{
		{level: 1, bracket: 0, guides: "5"},
		{level: 10, bracket: 0, guides: "50"},
		{level: 11, bracket: 1, guides: "60"},
		{level: 25, bracket: 1, guides: "200"},
		{level: 26, bracket: 2, guides: "220"},
		{level: 50, bracket: 2, guides: "700"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bracket, fn.BracketFor(tt.level), "level %d", tt.level)
		cost, err := fn.CostForLevel(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.guides, cost.Get("guides").String(), "level %d", tt.level)
	}
}

func TestEveryLevelHasExactlyOneBracket(t *testing.T) {
	fn := bracketed(t)
	for level := 1; level <= 50; level++ {
		assert.GreaterOrEqual(t, fn.BracketFor(level), 0, "gap at %d", level)
	}
}

func TestCostOutsideDomain(t *testing.T) {
	fn := bracketed(t)
	_, err := fn.CostForLevel(0)
	assert.Error(t, err)
	_, err = fn.CostForLevel(51)
	assert.Error(t, err)
}

func TestNewFunctionRejectsBadBrackets(t *testing.T) {
	cost := func(int) table.Record { return table.Ints(guides, 1) }

	_, err := NewFunction("overlap", guides, 0, 20, Bracket{Upper: 10, Cost: cost}, Bracket{Upper: 10, Cost: cost})
	assert.Error(t, err)

	_, err = NewFunction("short", guides, 0, 20, Bracket{Upper: 10, Cost: cost})
	assert.Error(t, err)

	_, err = NewFunction("nil cost", guides, 0, 20, Bracket{Upper: 20})
	assert.Error(t, err)

	assert.Panics(t, func() { MustFunction("empty", guides, 0, 20) })
}

func TestMaterializeMatchesFunction(t *testing.T) {
	fn := bracketed(t)
	tbl, err := Materialize(fn)
	require.NoError(t, err)

	for level := 1; level <= 50; level++ {
		want, _ := fn.CostForLevel(level)
		got, err := tbl.CostAt(level)
		require.NoError(t, err)
		assert.True(t, got.Equal(want, guides), "level %d", level)
	}
}

func TestTriggeredMilestones(t *testing.T) {
	ms := []Milestone{
		{Level: 120, Stat: "Infantry Attack", Value: decimal.NewFromInt(20)},
		{Level: 140, Stat: "Hero Health Up", Value: decimal.RequireFromString("7.5")},
		{Level: 160, Stat: "Infantry Defense", Value: decimal.NewFromInt(30)},
		{Level: 180, Stat: "Hero Attack Up", Value: decimal.NewFromInt(15)},
		{Level: 200, Stat: "Infantry Attack", Value: decimal.NewFromInt(50)},
	}

	got := Triggered(ms, 120, 180)
	require.Len(t, got, 3)
	assert.Equal(t, 140, got[0].Level)
	assert.Equal(t, 180, got[2].Level)

	assert.Len(t, Triggered(ms, 100, 200), 5)
	assert.Empty(t, Triggered(ms, 100, 119))
	assert.Empty(t, Triggered(ms, 200, 200))
}
