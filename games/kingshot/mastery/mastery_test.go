package mastery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/calculator"
	apperrors "kingshot-calc/internal/errors"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		in       calculator.Input
		hammers  string
		gear     string
		timeline string
	}{
		{
			name:     "fresh piece to 10",
			in:       calculator.Input{Current: "0", Target: "10", Income: "100"},
			hammers:  "550",
			gear:     "0",
			timeline: "5.5 months",
		},
		{
			name:     "level 1 to 10",
			in:       calculator.Input{Current: "1", Target: "10", Income: "0"},
			hammers:  "540",
			gear:     "0",
			timeline: "—",
		},
		{
			name:     "into mythic levels",
			in:       calculator.Input{Current: "10", Target: "15", Income: "650"},
			hammers:  "650",
			gear:     "15",
			timeline: "1 month",
		},
		{
			name:     "three pieces",
			in:       calculator.Input{Current: "10", Target: "15", Income: "100", Multiplier: 3},
			hammers:  "1950",
			gear:     "45",
			timeline: "1 year 8 months",
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := c.Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.hammers, report.Result.Total(Hammers).String())
			assert.Equal(t, tt.gear, report.Result.Total(MythicGear).String())
			assert.Equal(t, tt.timeline, report.Timeline.String())
		})
	}
}

func TestSelectedPiecesSetMultiplier(t *testing.T) {
	report, err := New().Calculate(calculator.Input{
		Current: "0", Target: "10", Income: "100",
		Options: map[string]string{"pieces": "infantry-0, archer-3,infantry-0"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Result.Multiplier)
	assert.Equal(t, "1100", report.Result.Total(Hammers).String())
	assert.Contains(t, report.Details, calculator.Detail{Label: "Hammers per piece", Value: "550"})
	assert.Contains(t, report.Details, calculator.Detail{Label: "Piece", Value: "Archer - Bow"})
}

func TestCalculateRejections(t *testing.T) {
	tests := []struct {
		name string
		in   calculator.Input
		want apperrors.Type
	}{
		{"inverted", calculator.Input{Current: "20", Target: "10", Income: "0"}, apperrors.TypeInvalidRange},
		{"above max", calculator.Input{Current: "0", Target: "21", Income: "0"}, apperrors.TypeOutOfBounds},
		{"below min", calculator.Input{Current: "-1", Target: "5", Income: "0"}, apperrors.TypeOutOfBounds},
		{"income too high", calculator.Input{Current: "0", Target: "5", Income: "10001"}, apperrors.TypeOutOfBounds},
		{"blank target", calculator.Input{Current: "0", Target: "", Income: "0"}, apperrors.TypeNotANumber},
		{"unknown piece", calculator.Input{Current: "0", Target: "5", Income: "0",
			Options: map[string]string{"pieces": "dragon-1"}}, apperrors.TypeUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Calculate(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.TypeOf(err))
		})
	}
}

func TestPieces(t *testing.T) {
	require.Len(t, Pieces, MaxPieces)
	assert.Equal(t, "cavalry-3", Pieces[7].ID)
	assert.Equal(t, "Spear", Pieces[7].Name)
}
