package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcExtrasPerUnitRates(t *testing.T) {
	b := CalcExtras(ExtrasCounts{
		ExtraHours: 2,
		Tables:     3,
		Chairs:     10,
		Toys:       1,
	}, decimal.Zero)

	assert.True(t, b.ExtraHoursCost.Equal(dec("200")))
	assert.True(t, b.TablesCost.Equal(dec("300")))
	assert.True(t, b.ChairsCost.Equal(dec("1000")))
	assert.True(t, b.ToysCost.Equal(dec("100")))
}

func TestCalcExtrasPlaypenBlocks(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "0"},
		{1, "200"},
		{8, "200"},
		{9, "400"},
		{16, "400"},
		{17, "600"},
	}
	for _, tc := range cases {
		b := CalcExtras(ExtrasCounts{Playpens: tc.count}, decimal.Zero)
		assert.True(t, b.PlaypensCost.Equal(dec(tc.want)),
			"playpens=%d: esperado %s, obtenido %s", tc.count, tc.want, b.PlaypensCost)
	}
}

// The total folds in the hour charge AND the free-form services cost; the
// hour charge also stays available as its own column.
func TestCalcExtrasTotalIncludesHoursAndServices(t *testing.T) {
	b := CalcExtras(ExtrasCounts{
		ExtraHours: 1,
		Tables:     2,
		Chairs:     4,
		Playpens:   9,
		Toys:       3,
	}, dec("150.50"))

	// 100 + 200 + 400 + 400 + 300 + 150.50
	assert.True(t, b.TotalExtrasCost.Equal(dec("1550.50")))
	assert.True(t, b.ExtraHoursCost.Equal(dec("100")))
	assert.True(t, b.ServicesCost.Equal(dec("150.50")))
}

func TestCalcExtrasNegativeCountsAreZero(t *testing.T) {
	b := CalcExtras(ExtrasCounts{ExtraHours: -2, Tables: -1, Playpens: -5}, decimal.Zero)
	assert.True(t, b.TotalExtrasCost.IsZero())
}

func TestCalcEndTime(t *testing.T) {
	cases := []struct {
		start      string
		extraHours int
		want       string
	}{
		{"14:00", 0, "18:00"},
		{"14:30", 0, "18:30"},
		{"14:00", 2, "20:00"},
		{"22:00", 2, "04:00"}, // wraps past midnight
		{"20:00", 0, "00:00"},
		{"09:15", 1, "14:15"},
	}
	for _, tc := range cases {
		got, err := CalcEndTime(tc.start, tc.extraHours)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "start=%s extra=%d", tc.start, tc.extraHours)
	}
}

func TestCalcEndTimeRejectsMalformedClock(t *testing.T) {
	for _, bad := range []string{"", "14", "25:00", "14:60", "2pm", "14:0x"} {
		_, err := CalcEndTime(bad, 0)
		assert.ErrorIs(t, err, ErrValidation, "entrada %q", bad)
	}
}

func TestCalcEndTimeNegativeExtraHoursTreatedAsZero(t *testing.T) {
	got, err := CalcEndTime("10:00", -3)
	require.NoError(t, err)
	assert.Equal(t, "14:00", got)
}
