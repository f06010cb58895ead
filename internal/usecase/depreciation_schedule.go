package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// DepreciationScheduleInput is the input of GenerateDepreciationSchedule.
// OpeningAccumulated is the charge already booked before Start (zero on first
// generation).
type DepreciationScheduleInput struct {
	AssetCode          string
	Cost               decimal.Decimal
	OpeningAccumulated decimal.Decimal
	Start              domain.Period
	Periods            []domain.Period
	Policy             domain.Policy
}

// DepreciationSchedule is the generated depreciation ledger tail.
type DepreciationSchedule struct {
	Entries []domain.DepreciationEntry
	// CostCarry maps a year to the book value carried into it, for reducing balance.
	CostCarry map[int]decimal.Decimal
}

// GenerateDepreciationSchedule computes one entry per period at or after Start.
// Running totals are kept at full precision; only stored amounts and book values
// are rounded.
func GenerateDepreciationSchedule(in DepreciationScheduleInput) DepreciationSchedule {
	out := DepreciationSchedule{CostCarry: map[int]decimal.Decimal{}}
	if !in.Policy.Depreciates() {
		return out
	}

	periods := periodsAtOrAfter(in.Periods, in.Start)

	if in.Policy.Method == domain.MethodReducingBalance {
		out.Entries, out.CostCarry = reducingBalance(in, periods)
		return out
	}

	out.Entries = equalInstallments(in, periods)
	return out
}

// equalInstallments charges cost*rate/100/12 every period of the horizon. The
// charge is constant, so book value goes negative once the cost is used up.
func equalInstallments(in DepreciationScheduleInput, periods []domain.Period) []domain.DepreciationEntry {
	monthly := in.Policy.AnnualCharge(in.Cost).Div(monthsPerYear)
	accumulated := in.OpeningAccumulated
	entries := make([]domain.DepreciationEntry, 0, len(periods))

	for _, p := range periods {
		accumulated = accumulated.Add(monthly)

		entries = append(entries, domain.DepreciationEntry{
			AssetCode: in.AssetCode,
			Period:    p.Key(),
			Rate:      in.Policy.Rate,
			Amount:    monthly.Round(domain.LedgerPlaces),
			BookValue: in.Cost.Sub(accumulated).Round(domain.LedgerPlaces),
		})
	}

	return entries
}

// reducingBalance recomputes the annual charge from the book value at the start of
// each year. The book value carried into a year is also returned as that year's cost.
func reducingBalance(in DepreciationScheduleInput, periods []domain.Period) ([]domain.DepreciationEntry, map[int]decimal.Decimal) {
	bookValue := in.Cost.Sub(in.OpeningAccumulated)
	entries := make([]domain.DepreciationEntry, 0, len(periods))
	carry := map[int]decimal.Decimal{}

	years := groupByYear(periods)
	for i, year := range years {
		monthly := in.Policy.AnnualCharge(bookValue).Div(monthsPerYear)
		applied := decimal.Zero

		for _, p := range year {
			applied = applied.Add(monthly)
			entries = append(entries, domain.DepreciationEntry{
				AssetCode: in.AssetCode,
				Period:    p.Key(),
				Rate:      in.Policy.Rate,
				Amount:    monthly.Round(domain.LedgerPlaces),
				BookValue: bookValue.Sub(applied).Round(domain.LedgerPlaces),
			})
		}

		bookValue = bookValue.Sub(applied)
		if i < len(years)-1 {
			carry[years[i+1][0].Year] = bookValue
		}
	}

	return entries, carry
}

// EffectiveStart returns the later of target and the period holding the asset's
// depreciation start date, when that period is part of periods.
func EffectiveStart(target domain.Period, depreciationStart time.Time, periods []domain.Period) domain.Period {
	if depreciationStart.IsZero() || !depreciationStart.After(target.EndDate) {
		return target
	}

	for _, p := range periods {
		if p.Contains(depreciationStart) {
			if target.Before(p) {
				return p
			}
			break
		}
	}

	return target
}
