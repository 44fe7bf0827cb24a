package heroshard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/calculator"
	apperrors "kingshot-calc/internal/errors"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		in     calculator.Input
		shards string
		coins  string
		needed string
	}{
		{
			name:   "epic full promotion",
			in:     calculator.Input{Current: "0", Target: "5"},
			shards: "310", coins: "155000", needed: "310",
		},
		{
			name: "legendary with shards owned",
			in: calculator.Input{Current: "2", Target: "4",
				Options: map[string]string{"rarity": "Legendary", "owned": "100"}},
			shards: "240", coins: "240000", needed: "140",
		},
		{
			name: "owned covers everything",
			in: calculator.Input{Current: "0", Target: "1",
				Options: map[string]string{"owned": "50"}},
			shards: "10", coins: "5000", needed: "0",
		},
	}
	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := c.Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.shards, report.Result.Total(Shards).String())
			assert.Equal(t, tt.coins, report.Result.Total(Coins).String())
			assert.Contains(t, report.Details, calculator.Detail{Label: "Shards Still Needed", Value: tt.needed})
		})
	}
}

func TestCalculateStats(t *testing.T) {
	report, err := New().Calculate(calculator.Input{Current: "3", Target: "5"})
	require.NoError(t, err)
	assert.Contains(t, report.Details, calculator.Detail{Label: "Stars", Value: "3★ → 5★"})
	assert.Contains(t, report.Details, calculator.Detail{Label: "Total Stats", Value: "ATK +18.0, DEF +16.0, HP +80.0"})
}

func TestCalculateRejections(t *testing.T) {
	_, err := New().Calculate(calculator.Input{Current: "0", Target: "6"})
	assert.True(t, apperrors.IsType(err, apperrors.TypeOutOfBounds))

	_, err = New().Calculate(calculator.Input{Current: "0", Target: "1", Options: map[string]string{"rarity": "mythic"}})
	assert.True(t, apperrors.IsType(err, apperrors.TypeUnknownKey))

	_, err = New().Calculate(calculator.Input{Current: "0", Target: "1", Options: map[string]string{"owned": "-1"}})
	assert.True(t, apperrors.IsType(err, apperrors.TypeOutOfBounds))
}

func TestShardsNeeded(t *testing.T) {
	assert.Equal(t, "0", ShardsNeeded(decimal.NewFromInt(10), decimal.NewFromInt(11)).String())
	assert.Equal(t, "4", ShardsNeeded(decimal.NewFromInt(10), decimal.NewFromInt(6)).String())
}
