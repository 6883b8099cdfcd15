package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Flat rates for event extras, in MXN. Playpens are billed per block of
// up to 8 units; everything else is billed per unit or per hour.
const (
	RatePerExtraHour  = 100
	RatePerTable      = 100
	RatePerChair      = 100
	RatePerToy        = 100
	RatePerPlaypenSet = 200
	PlaypensPerSet    = 8

	// BaseEventHours is the included duration of every event.
	BaseEventHours = 4

	// DefaultAdvancePayment applies when the client confirms an advance
	// without stating the amount.
	DefaultAdvancePayment = 300
)

// ExtrasCounts are the raw quantities submitted for an event.
type ExtrasCounts struct {
	ExtraHours int
	Tables     int
	Chairs     int
	Playpens   int
	Toys       int
}

// ExtrasBreakdown carries every derived cost column of an event.
// TotalExtrasCost includes ExtraHoursCost and the free-form services cost.
type ExtrasBreakdown struct {
	ExtraHoursCost  decimal.Decimal
	TablesCost      decimal.Decimal
	ChairsCost      decimal.Decimal
	PlaypensCost    decimal.Decimal
	ToysCost        decimal.Decimal
	ServicesCost    decimal.Decimal
	TotalExtrasCost decimal.Decimal
}

// CalcExtras derives every extras cost from the raw counts. Negative counts
// are treated as zero. servicesCost is the manually priced free-form extra
// services amount, folded into the total as-is.
func CalcExtras(counts ExtrasCounts, servicesCost decimal.Decimal) ExtrasBreakdown {
	b := ExtrasBreakdown{
		ExtraHoursCost: perUnit(counts.ExtraHours, RatePerExtraHour),
		TablesCost:     perUnit(counts.Tables, RatePerTable),
		ChairsCost:     perUnit(counts.Chairs, RatePerChair),
		PlaypensCost:   playpensCost(counts.Playpens),
		ToysCost:       perUnit(counts.Toys, RatePerToy),
		ServicesCost:   servicesCost,
	}
	b.TotalExtrasCost = b.ExtraHoursCost.
		Add(b.TablesCost).
		Add(b.ChairsCost).
		Add(b.PlaypensCost).
		Add(b.ToysCost).
		Add(b.ServicesCost)
	return b
}

func perUnit(count, rate int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count) * int64(rate))
}

// playpensCost charges one set rate per started block of PlaypensPerSet.
func playpensCost(count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	sets := (count + PlaypensPerSet - 1) / PlaypensPerSet
	return decimal.NewFromInt(int64(sets) * RatePerPlaypenSet)
}

// CalcEndTime returns the event end time: start plus the base duration plus
// the contracted extra hours, wrapping past midnight. startTime must be
// "HH:MM" on a 24-hour clock; minutes carry through unchanged.
func CalcEndTime(startTime string, extraHours int) (string, error) {
	h, m, err := parseClock(startTime)
	if err != nil {
		return "", err
	}
	if extraHours < 0 {
		extraHours = 0
	}
	endH := (h + BaseEventHours + extraHours) % 24
	return fmt.Sprintf("%02d:%02d", endH, m), nil
}

// parseClock validates and splits an "HH:MM" string.
func parseClock(v string) (hour, minute int, err error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: hora inválida %q, se espera HH:MM", ErrValidation, v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hora inválida %q", ErrValidation, v)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minutos inválidos %q", ErrValidation, v)
	}
	return hour, minute, nil
}
