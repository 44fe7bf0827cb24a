package timeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProjectZeroIncomeIsUndefined(t *testing.T) {
	for _, rate := range []string{"0", "-5"} {
		p := Project(d("1000"), d(rate), Month)
		assert.False(t, p.Defined)
		assert.True(t, p.Periods.IsZero())
		assert.Equal(t, Undefined, p.String())
	}
}

func TestProjectDivides(t *testing.T) {
	p := Project(d("1000"), d("200"), Month)
	assert.True(t, p.Defined)
	assert.Equal(t, "5", p.Periods.String())
	assert.Equal(t, "200", p.Rate.String())
	assert.Equal(t, "5.0 months", p.String())

	p = Project(d("910"), d("200"), Month)
	assert.Equal(t, "4.55", p.Periods.String())
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "< 1 month"},
		{"0.99", "< 1 month"},
		{"1", "1 month"},
		{"1.04", "1.0 months"},
		{"4.55", "4.6 months"},
		{"11.9", "11.9 months"},
		{"12", "1 year"},
		{"24", "2 years"},
		{"13", "1 year 1 month"},
		{"15.4", "1 year 3 months"},
		{"23.7", "2 years"},
		{"12.2", "1 year"},
		{"38", "3 years 2 months"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMonths(d(tt.in)))
		})
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "< 1 day"},
		{"1", "1 day"},
		{"1.2", "2 days"},
		{"29.5", "30 days"},
		{"30", "1 month"},
		{"31", "1 month 1 day"},
		{"45.5", "1 month 16 days"},
		{"59.5", "2 months"},
		{"90", "3 months"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDays(d(tt.in)))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1d 19h 12m", FormatHours(d("43.2")))
	assert.Equal(t, "20h 9m", FormatHours(d("20.1583333333")))
	assert.Equal(t, "45m", FormatHours(d("0.75")))
	assert.Equal(t, "2d 0h 0m", FormatHours(d("48")))
}

func TestProjectionStringByUnit(t *testing.T) {
	assert.Equal(t, "5 days", Project(d("250"), d("50"), Day).String())
	assert.Equal(t, "2h 30m", Project(d("5"), d("2"), Hour).String())
}
