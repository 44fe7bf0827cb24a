package building

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/calculator"
	apperrors "kingshot-calc/internal/errors"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20M", "20000000"},
		{"4.3M", "4300000"},
		{"750K", "750000"},
		{"1.5B", "1500000000"},
		{"26", "26"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String(), tt.in)
	}

	for _, bad := range []string{"", "M", "x4", "-3K"} {
		_, err := ParseAmount(bad)
		assert.True(t, apperrors.IsType(err, apperrors.TypeParsing), bad)
	}
}

func TestParseCostIgnoresExtraTokens(t *testing.T) {
	rec, err := ParseCost("29M 29M 5.8M 1.4M 40 2")
	require.NoError(t, err)
	assert.Equal(t, "29000000", rec.Get(Wood).String())
	assert.Equal(t, "5800000", rec.Get(Ore).String())
	assert.Equal(t, "1400000", rec.Get(Gold).String())
	assert.Equal(t, "40", rec.Get(Jewels).String())

	_, err = ParseCost("20M 20M 4M")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"20:09:30", 20*3600 + 9*60 + 30},
		{"1d 19:12:00", 43*3600 + 12*60},
		{"2d 09:36:00", 57*3600 + 36*60},
		{"45", 45 * 3600},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseDuration("1d aa:00")
	assert.Error(t, err)
}

func TestTableCoversEveryRow(t *testing.T) {
	tbl, err := Table()
	require.NoError(t, err)
	lower, upper := tbl.Bounds()
	assert.Equal(t, 0, lower)
	assert.Equal(t, len(TrueGoldCommandCenter)-1, upper)
	assert.Equal(t, "TG 10", tbl.KeyAt(upper).Label)
}

func TestCalculate(t *testing.T) {
	report, err := New().Calculate(calculator.Input{Current: "TG 5", Target: "tg 6"})
	require.NoError(t, err)

	res := report.Result
	require.Len(t, res.Breakdown, 5)
	assert.Equal(t, "145000000", res.Total(Wood).String())
	assert.Equal(t, "180", res.Total(Jewels).String())
	assert.Nil(t, report.Timeline)
	// 5 x 1d 19:12:00 = 216h
	assert.Contains(t, report.Details, calculator.Detail{Label: "Construction Time", Value: "9d 0h 0m"})
}

func TestCalculateSpeedBonusAndDailyHours(t *testing.T) {
	report, err := New().Calculate(calculator.Input{
		Current: "TG 5", Target: "TG 6", Income: "12",
		Options: map[string]string{"speed": "25"},
	})
	require.NoError(t, err)

	// 216h x 0.75 = 162h
	assert.True(t, Hours(report.Result.Total(Seconds)).Equal(decimal.NewFromInt(162)))
	assert.Contains(t, report.Details, calculator.Detail{Label: "Construction Time", Value: "6d 18h 0m"})
	assert.Contains(t, report.Details, calculator.Detail{Label: "Build Speed Bonus", Value: "25%"})
	require.NotNil(t, report.Timeline)
	assert.Equal(t, "14 days", report.Timeline.String())
	// resources are not affected by speed
	assert.Equal(t, "145000000", report.Result.Total(Wood).String())
}

func TestCalculateRejections(t *testing.T) {
	tests := []struct {
		name string
		in   calculator.Input
		want apperrors.Type
	}{
		{"unknown level", calculator.Input{Current: "TG 11", Target: "TG 10"}, apperrors.TypeUnknownKey},
		{"backwards", calculator.Input{Current: "TG 6", Target: "TG 5"}, apperrors.TypeInvalidRange},
		{"speed too high", calculator.Input{Current: "TG 5", Target: "TG 6",
			Options: map[string]string{"speed": "100"}}, apperrors.TypeOutOfBounds},
		{"speed text", calculator.Input{Current: "TG 5", Target: "TG 6",
			Options: map[string]string{"speed": "fast"}}, apperrors.TypeNotANumber},
		{"too many daily hours", calculator.Input{Current: "TG 5", Target: "TG 6", Income: "25"}, apperrors.TypeOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Calculate(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.TypeOf(err))
		})
	}
}
