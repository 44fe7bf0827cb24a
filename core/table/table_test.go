package table

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kingshot-calc/internal/errors"
)

var food = NewSchema("food")

func denseMastery(t *testing.T) *Table {
	t.Helper()
	schema := NewSchema("hammers", "gear")
	var rows []LevelEntry
	for n := 1; n <= 20; n++ {
		gear := int64(0)
		if n > 10 {
			gear = int64(n - 10)
		}
		rows = append(rows, LevelEntry{Level: n, Cost: Ints(schema, int64(10*n), gear)})
	}
	tbl, err := NewLevelTable("mastery", schema, 0, 20, rows)
	require.NoError(t, err)
	return tbl
}

func sparsePet(t *testing.T, policy InterpolationPolicy) *Table {
	t.Helper()
	tbl, err := NewLevelTable("pet", food, 1, 30, []LevelEntry{
		{Level: 1, Cost: Ints(food, 10)},
		{Level: 10, Cost: Ints(food, 700)},
		{Level: 20, Cost: Ints(food, 1700)},
		{Level: 30, Cost: Ints(food, 2000)},
	}, Sparse(policy))
	require.NoError(t, err)
	return tbl
}

func TestDenseLookupReturnsLiteralRow(t *testing.T) {
	tbl := denseMastery(t)
	for _, e := range tbl.Entries() {
		got, err := tbl.CostAt(e.Key.Ordinal)
		require.NoError(t, err)
		assert.True(t, got.Equal(e.Cost, tbl.Schema()), "level %d", e.Key.Ordinal)

		again, err := tbl.CostAt(e.Key.Ordinal)
		require.NoError(t, err)
		assert.True(t, again.Equal(got, tbl.Schema()), "lookup must be deterministic")
	}
}

func TestDenseMissIsInternalError(t *testing.T) {
	tbl := denseMastery(t)
	_, err := tbl.CostAt(21)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeInternal))
}

func TestCostAtReturnsCopies(t *testing.T) {
	tbl := denseMastery(t)
	got, err := tbl.CostAt(5)
	require.NoError(t, err)
	got["hammers"] = decimal.NewFromInt(-1)

	again, err := tbl.CostAt(5)
	require.NoError(t, err)
	assert.Equal(t, "50", again.Get("hammers").String())
}

func TestSparseInterpolation(t *testing.T) {
	tbl := sparsePet(t, LinearFloor)

	got, err := tbl.CostAt(15)
	require.NoError(t, err)
	assert.Equal(t, "1200", got.Get("food").String())

	// known keys are returned verbatim
	got, err = tbl.CostAt(20)
	require.NoError(t, err)
	assert.Equal(t, "1700", got.Get("food").String())

	// floored: 10 + 690*4/9 = 316.66..
	got, err = tbl.CostAt(5)
	require.NoError(t, err)
	assert.Equal(t, "316", got.Get("food").String())
}

func TestSparseInterpolationLiesBetweenNeighbours(t *testing.T) {
	for _, policy := range []InterpolationPolicy{Linear, LinearFloor} {
		tbl := sparsePet(t, policy)
		for level := 2; level <= 30; level++ {
			lo, hi := tbl.neighbours(level)
			got, err := tbl.CostAt(level)
			require.NoError(t, err)
			v := got.Get("food")
			assert.True(t, v.GreaterThanOrEqual(tbl.costs[lo].Get("food")), "level %d below lower neighbour", level)
			assert.True(t, v.LessThanOrEqual(tbl.costs[hi].Get("food")), "level %d above upper neighbour", level)
		}
	}
}

func TestSparseLinearKeepsFraction(t *testing.T) {
	tbl := sparsePet(t, Linear)
	got, err := tbl.CostAt(21)
	require.NoError(t, err)
	assert.Equal(t, "1730", got.Get("food").String())

	got, err = tbl.CostAt(5)
	require.NoError(t, err)
	assert.True(t, got.Get("food").GreaterThan(decimal.NewFromInt(316)))
	assert.True(t, got.Get("food").LessThan(decimal.NewFromInt(317)))
}

func TestSparseSingleNeighbourIsUnmodified(t *testing.T) {
	tbl, err := NewLevelTable("edge", food, 0, 10, []LevelEntry{
		{Level: 1, Cost: Ints(food, 40)},
		{Level: 10, Cost: Ints(food, 400)},
	}, Sparse(Linear))
	require.NoError(t, err)

	// level 0 has no lower neighbour
	got, err := tbl.CostAt(0)
	require.NoError(t, err)
	assert.Equal(t, "40", got.Get("food").String())
}

func TestSparseCacheIsConsistent(t *testing.T) {
	tbl := sparsePet(t, LinearFloor)
	first, err := tbl.CostAt(25)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.cache.Len())

	second, err := tbl.CostAt(25)
	require.NoError(t, err)
	assert.True(t, first.Equal(second, food))
}

func TestNewLevelTableRejectsBadInput(t *testing.T) {
	schema := NewSchema("xp")
	tests := []struct {
		name    string
		lower   int
		upper   int
		entries []LevelEntry
		opts    []Option
	}{
		{
			name:    "dense gap",
			lower:   0,
			upper:   3,
			entries: []LevelEntry{{Level: 1, Cost: Ints(schema, 1)}, {Level: 3, Cost: Ints(schema, 3)}},
		},
		{
			name:    "unordered",
			lower:   0,
			upper:   2,
			entries: []LevelEntry{{Level: 2, Cost: Ints(schema, 1)}, {Level: 1, Cost: Ints(schema, 3)}},
		},
		{
			name:    "negative quantity",
			lower:   0,
			upper:   1,
			entries: []LevelEntry{{Level: 1, Cost: Ints(schema, -1)}},
		},
		{
			name:    "foreign resource",
			lower:   0,
			upper:   1,
			entries: []LevelEntry{{Level: 1, Cost: Ints(NewSchema("gold"), 1)}},
		},
		{
			name:    "sparse does not reach upper",
			lower:   0,
			upper:   10,
			entries: []LevelEntry{{Level: 1, Cost: Ints(schema, 1)}, {Level: 5, Cost: Ints(schema, 5)}},
			opts:    []Option{Sparse(Linear)},
		},
		{
			name:  "empty bounds",
			lower: 3,
			upper: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevelTable("bad", schema, tt.lower, tt.upper, tt.entries, tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestTierTable(t *testing.T) {
	schema := NewSchema("satin", "threads")
	tbl, err := NewTierTable("gear", schema, []Tier{
		{ID: "green-0", Label: "Green 0★", Cost: Ints(schema, 1500, 15)},
		{ID: "green-1", Label: "Green 1★", Cost: Ints(schema, 3800, 40)},
		{ID: "blue-0", Cost: Ints(schema, 7000, 70)},
	})
	require.NoError(t, err)

	lo, hi := tbl.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
	assert.Equal(t, Tiers, tbl.Kind())

	idx, ok := tbl.Resolve("GREEN 1★")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = tbl.Resolve(" blue-0 ")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = tbl.Resolve("red-3")
	assert.False(t, ok)

	assert.Equal(t, Key{Ordinal: 2, ID: "blue-0", Label: "blue-0"}, tbl.KeyAt(2))
	assert.Equal(t, []string{"green-0", "green-1", "blue-0", "Green 0★", "Green 1★"}, tbl.Names())
}

func TestTierTableRejectsDuplicates(t *testing.T) {
	schema := NewSchema("satin")
	_, err := NewTierTable("gear", schema, []Tier{
		{ID: "a", Cost: Ints(schema, 1)},
		{ID: "A", Cost: Ints(schema, 2)},
	})
	assert.Error(t, err)
}

func TestRecordArithmetic(t *testing.T) {
	schema := NewSchema("guides", "designs", "boost")
	a := Decimals(schema, "5", "0", "0.5")
	b := Decimals(schema, "10", "1", "0.5")

	sum := a.Add(b)
	assert.True(t, sum.Equal(Decimals(schema, "15", "1", "1"), schema))
	assert.True(t, b.Scale(3).Equal(Decimals(schema, "30", "3", "1.5"), schema))
	assert.True(t, Zero(schema).Equal(Record{}, schema))
	assert.Equal(t, "5", a.Get("guides").String(), "Add must not mutate its receiver")
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []InterpolationPolicy{NoInterpolation, Linear, LinearFloor} {
		got, ok := ParsePolicy(p.String())
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ParsePolicy("cubic")
	assert.False(t, ok)
}

func TestCappedNarrowsUpperBound(t *testing.T) {
	tbl := sparsePet(t, LinearFloor)

	view := Capped(tbl, 20)
	lower, upper := view.Bounds()
	assert.Equal(t, 1, lower)
	assert.Equal(t, 20, upper)

	want, err := tbl.CostAt(15)
	require.NoError(t, err)
	got, err := view.CostAt(15)
	require.NoError(t, err)
	assert.True(t, want.Equal(got, food))

	assert.Same(t, tbl, Capped(tbl, 30))
	assert.Same(t, tbl, Capped(tbl, 90))
}
