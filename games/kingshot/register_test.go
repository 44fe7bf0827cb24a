package kingshot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/games/kingshot/pet"
	apperrors "kingshot-calc/internal/errors"
)

func hammerTable(t *testing.T, schema table.Schema) *table.Table {
	t.Helper()
	var rows []table.LevelEntry
	for n := 1; n <= 20; n++ {
		rows = append(rows, table.LevelEntry{Level: n, Cost: table.Record{"hammers": decimal.NewFromInt(1)}})
	}
	tbl, err := table.NewLevelTable("mastery", schema, 0, 20, rows)
	require.NoError(t, err)
	return tbl
}

func TestRegisterBuiltins(t *testing.T) {
	reg := calculator.NewRegistry()
	require.NoError(t, Register(reg, nil))

	assert.Equal(t, 11, reg.Count())
	assert.Equal(t, []string{
		"bear", "building", "charm", "gear", "herogear", "heroshard",
		"herostats", "heroxp", "mastery", "pet", "troop",
	}, reg.Names())
}

func TestRegisterUsesLoadedTable(t *testing.T) {
	reg := calculator.NewRegistry()
	tbl := hammerTable(t, table.NewSchema("hammers", "mythic_gear"))
	require.NoError(t, Register(reg, map[string]*table.Table{"mastery": tbl}))

	calc, err := reg.Get("mastery")
	require.NoError(t, err)
	report, err := calc.Calculate(calculator.Input{Current: "0", Target: "10", Income: "100"})
	require.NoError(t, err)
	assert.Equal(t, "10", report.Result.Totals.Get("hammers").String())
}

func TestRegisterKeepsBuiltinForIncompatibleTable(t *testing.T) {
	reg := calculator.NewRegistry()
	tbl := hammerTable(t, table.NewSchema("hammers"))

	err := Register(reg, map[string]*table.Table{"mastery": tbl})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
	assert.Contains(t, err.Error(), `missing resource "mythic_gear"`)

	calc, err := reg.Get("mastery")
	require.NoError(t, err)
	report, err := calc.Calculate(calculator.Input{Current: "0", Target: "10", Income: "100"})
	require.NoError(t, err)
	assert.Equal(t, "550", report.Result.Totals.Get("hammers").String())
	assert.Equal(t, 11, reg.Count())
}

func TestRegisterRejectsUnknownOverride(t *testing.T) {
	reg := calculator.NewRegistry()
	tbl := hammerTable(t, table.NewSchema("hammers"))

	err := Register(reg, map[string]*table.Table{"castle": tbl})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not replace any calculator table")
}

func TestEveryCalculatorDescribesItself(t *testing.T) {
	for _, c := range Calculators() {
		assert.NotEmpty(t, c.Title(), c.Name())
		assert.NotEmpty(t, c.Description(), c.Name())
	}
}

func TestLoadedPetTableKeepsRarityCaps(t *testing.T) {
	loaded, err := pet.Table(pet.MaxLevel)
	require.NoError(t, err)
	reg := calculator.NewRegistry()
	require.NoError(t, Register(reg, map[string]*table.Table{"pet": loaded}))

	calc, err := reg.Get("pet")
	require.NoError(t, err)

	_, err = calc.Calculate(calculator.Input{Current: "1", Target: "90", Income: "100", Options: map[string]string{"rarity": "common"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeOutOfBounds))

	report, err := calc.Calculate(calculator.Input{Current: "1", Target: "90", Income: "100", Options: map[string]string{"rarity": "legendary"}})
	require.NoError(t, err)
	assert.Equal(t, 90, report.Result.Target.Ordinal)
}
