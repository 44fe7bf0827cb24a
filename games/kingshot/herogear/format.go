package herogear

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kingshot-calc/core/table"
)

func decimalOf(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// label renders "hero_attack" as "Hero Attack"
func label(r table.Resource) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(r), "_", " "))
}
