package accumulate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/table"
)

var masterySchema = table.NewSchema("hammers", "gear")

func masteryTable(t *testing.T) *table.Table {
	t.Helper()
	var rows []table.LevelEntry
	for n := 1; n <= 20; n++ {
		gear := int64(0)
		if n > 10 {
			gear = int64(n - 10)
		}
		rows = append(rows, table.LevelEntry{Level: n, Cost: table.Ints(masterySchema, int64(10*n), gear)})
	}
	tbl, err := table.NewLevelTable("mastery", masterySchema, 0, 20, rows)
	require.NoError(t, err)
	return tbl
}

func TestAccumulateSumsRange(t *testing.T) {
	tbl := masteryTable(t)

	tests := []struct {
		name    string
		req     Request
		hammers string
		gear    string
		steps   int
	}{
		{name: "fresh piece to 10", req: Request{Current: 0, Target: 10}, hammers: "550", gear: "0", steps: 10},
		{name: "level 1 to 10 excludes level 1", req: Request{Current: 1, Target: 10}, hammers: "540", gear: "0", steps: 9},
		{name: "10 to 15 needs gear", req: Request{Current: 10, Target: 15}, hammers: "650", gear: "15", steps: 5},
		{name: "multiplier scales", req: Request{Current: 10, Target: 15, Multiplier: 3}, hammers: "1950", gear: "45", steps: 5},
		{name: "zero multiplier treated as one", req: Request{Current: 19, Target: 20, Multiplier: 0}, hammers: "200", gear: "10", steps: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Accumulate(tbl, tt.req)
			assert.Equal(t, tt.hammers, res.Total("hammers").String())
			assert.Equal(t, tt.gear, res.Total("gear").String())
			assert.Len(t, res.Breakdown, tt.steps)
			assert.True(t, res.Consistent())
		})
	}
}

func TestBreakdownLengthAndFinalCumulative(t *testing.T) {
	tbl := masteryTable(t)
	for cur := 0; cur < 20; cur++ {
		for tgt := cur + 1; tgt <= 20; tgt++ {
			res := Accumulate(tbl, Request{Current: cur, Target: tgt, Multiplier: 2})
			require.Len(t, res.Breakdown, tgt-cur)
			last := res.Breakdown[len(res.Breakdown)-1]
			for _, r := range masterySchema {
				assert.True(t, last.Cumulative.Get(r).Equal(res.Totals.Get(r)), "%d->%d %s", cur, tgt, r)
			}
			assert.Equal(t, cur+1, res.Breakdown[0].Key.Ordinal)
			assert.Equal(t, tgt, last.Key.Ordinal)
		}
	}
}

func TestAdjacentRangeHasOneStep(t *testing.T) {
	res := Accumulate(masteryTable(t), Request{Current: 0, Target: 1})
	require.Len(t, res.Breakdown, 1)
	assert.True(t, res.Breakdown[0].Cost.Equal(res.Totals, masterySchema))
	assert.True(t, res.Breakdown[0].Cumulative.Equal(res.Totals, masterySchema))
}

func TestAccumulateTiers(t *testing.T) {
	schema := table.NewSchema("satin", "threads", "vision")
	tbl, err := table.NewTierTable("gear", schema, []table.Tier{
		{ID: "green-0", Label: "Green 0★", Cost: table.Ints(schema, 1500, 15, 0)},
		{ID: "green-1", Label: "Green 1★", Cost: table.Ints(schema, 3800, 40, 0)},
		{ID: "blue-0", Label: "Blue 0★", Cost: table.Ints(schema, 7000, 70, 0)},
		{ID: "blue-1", Label: "Blue 1★", Cost: table.Ints(schema, 9700, 95, 0)},
	})
	require.NoError(t, err)

	res := Accumulate(tbl, Request{Current: 0, Target: 3, Multiplier: 2})
	assert.Equal(t, "41000", res.Total("satin").String())
	assert.Equal(t, "410", res.Total("threads").String())
	assert.Equal(t, "0", res.Total("vision").String())
	assert.Equal(t, "Green 0★", res.Current.Label)
	assert.Equal(t, "Blue 1★", res.Target.Label)
	assert.Equal(t, "Green 1★", res.Breakdown[0].Key.Label)
}

type brokenSource struct{ *table.Table }

func (b brokenSource) CostAt(ordinal int) (table.Record, error) {
	return nil, fmt.Errorf("no row %d", ordinal)
}

func TestLookupFailureIsInvariantViolation(t *testing.T) {
	src := brokenSource{masteryTable(t)}
	assert.Panics(t, func() { Accumulate(src, Request{Current: 0, Target: 2}) })
}

func TestUnvalidatedRequestPanics(t *testing.T) {
	tbl := masteryTable(t)
	assert.Panics(t, func() { Accumulate(tbl, Request{Current: 20, Target: 10}) })
	assert.Panics(t, func() { Accumulate(tbl, Request{Current: 0, Target: 21}) })
}

func TestBucketsPreserveTotals(t *testing.T) {
	tbl := masteryTable(t)
	res := Accumulate(tbl, Request{Current: 3, Target: 17})

	buckets := res.Buckets(5)
	require.Len(t, buckets, 4)
	assert.Equal(t, "4-5", buckets[0].Label)
	assert.Equal(t, "6-10", buckets[1].Label)
	assert.Equal(t, "11-15", buckets[2].Label)
	assert.Equal(t, "16-17", buckets[3].Label)

	sum := table.Zero(masterySchema)
	steps := 0
	for _, b := range buckets {
		sum = sum.Add(b.Cost)
		steps += b.Steps
	}
	assert.True(t, sum.Equal(res.Totals, masterySchema))
	assert.Equal(t, len(res.Breakdown), steps)
	assert.True(t, buckets[3].Cumulative.Equal(res.Totals, masterySchema))

	assert.Nil(t, res.Buckets(0))
}
