package herogear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/calculator"
	apperrors "kingshot-calc/internal/errors"
)

func input(cur, tgt, class, piece string) calculator.Input {
	return calculator.Input{
		Current: cur, Target: tgt,
		Options: map[string]string{"class": class, "piece": piece},
	}
}

func TestGoldPhase(t *testing.T) {
	report, err := New().Calculate(input("0", "10", "infantry", "helmet"))
	require.NoError(t, err)
	require.NotNil(t, report.Result)
	assert.Empty(t, report.Milestones)

	res := report.Result
	assert.Equal(t, "23", res.Total(HeroAttack).String())
	assert.Equal(t, "225", res.Total(HeroHealth).String())
	assert.Equal(t, "7.7", res.Total(EscortAttack).String())
	assert.Equal(t, "3.5", res.Total(Lethality).String())
	assert.True(t, res.Total(HeroDefense).IsZero())

	assert.Contains(t, report.Details, calculator.Detail{Label: "Troop Type", Value: "Infantry"})
	assert.Contains(t, report.Details, calculator.Detail{Label: "Hero Attack at 10", Value: "138.00"})
}

func TestChestUsesDefenseLine(t *testing.T) {
	report, err := New().Calculate(input("50", "60", "archer", "chest"))
	require.NoError(t, err)
	assert.Equal(t, "30", report.Result.Total(HeroDefense).String())
	assert.Equal(t, "3.5", report.Result.Total(TroopHealth).String())
	assert.True(t, report.Result.Total(HeroAttack).IsZero())
}

func TestSpanningRangeSplitsAtGoldCap(t *testing.T) {
	report, err := New().Calculate(input("90", "150", "cavalry", "gloves"))
	require.NoError(t, err)

	require.NotNil(t, report.Result)
	assert.Equal(t, 100, report.Result.Target.Ordinal)
	assert.Len(t, report.Result.Breakdown, 10)

	require.Len(t, report.Milestones, 2)
	assert.Equal(t, 120, report.Milestones[0].Level)
	assert.Equal(t, "Cavalry Defense", report.Milestones[0].Stat)
	assert.Equal(t, "Hero Health Up", report.Milestones[1].Stat)
}

func TestRedPhaseOnly(t *testing.T) {
	report, err := New().Calculate(input("100", "200", "archer", "helmet"))
	require.NoError(t, err)
	assert.Nil(t, report.Result)
	require.Len(t, report.Milestones, 5)
	assert.Equal(t, "Archer Attack", report.Milestones[0].Stat)
	assert.Equal(t, "Hero Attack Up", report.Milestones[3].Stat)
	assert.Equal(t, "50", report.Milestones[4].Value.String())

	// a milestone at the current level was already earned
	report, err = New().Calculate(input("120", "140", "archer", "helmet"))
	require.NoError(t, err)
	require.Len(t, report.Milestones, 1)
	assert.Equal(t, 140, report.Milestones[0].Level)
}

func TestRejections(t *testing.T) {
	tests := []struct {
		name string
		in   calculator.Input
		want apperrors.Type
	}{
		{"beyond red cap", input("0", "201", "infantry", "helmet"), apperrors.TypeOutOfBounds},
		{"inverted", input("150", "120", "infantry", "helmet"), apperrors.TypeInvalidRange},
		{"bad class", input("0", "10", "mage", "helmet"), apperrors.TypeUnknownKey},
		{"bad piece", input("0", "10", "infantry", "glove"), apperrors.TypeUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Calculate(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.TypeOf(err))
		})
	}
}

func TestPieceGroups(t *testing.T) {
	assert.Equal(t, HelmetBoots, CategoryOf("boots"))
	assert.Equal(t, ChestGloves, CategoryOf("gloves"))
	assert.Equal(t, HelmetChest, GroupOf("chest"))
	assert.Equal(t, GlovesBoots, GroupOf("boots"))
}
