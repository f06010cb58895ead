package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

// CostScheduleInput is the input of GenerateCostSchedule.
type CostScheduleInput struct {
	AssetCode string
	Cost      decimal.Decimal
	Start     domain.Period
	Periods   []domain.Period
	Policy    domain.Policy
}

// GenerateCostSchedule projects the asset's cost for every period at or after Start.
//
// Equal installments (or a zero rate) carry the cost flat. Reducing balance keeps
// the current cost for the start year and reduces each following year by that
// year's annual charge. The depreciation schedule later replaces those projections
// with actual year-end book values (see ApplyCostCarry).
func GenerateCostSchedule(in CostScheduleInput) []domain.CostEntry {
	periods := periodsAtOrAfter(in.Periods, in.Start)
	entries := make([]domain.CostEntry, 0, len(periods))

	if in.Policy.Method != domain.MethodReducingBalance || !in.Policy.Depreciates() {
		for _, p := range periods {
			entries = append(entries, costEntry(in.AssetCode, p, in.Cost))
		}
		return entries
	}

	cost := in.Cost
	for i, year := range groupByYear(periods) {
		if i > 0 {
			cost = cost.Sub(in.Policy.AnnualCharge(cost))
		}
		for _, p := range year {
			entries = append(entries, costEntry(in.AssetCode, p, cost))
		}
	}

	return entries
}

// ApplyCostCarry reconciles every year after the first one with the
// depreciation schedule. A year with a carried book value takes it; a year
// reached before depreciation has started keeps the previous year's cost.
// Entries must be in period order.
func ApplyCostCarry(entries []domain.CostEntry, carry map[int]decimal.Decimal) {
	if len(entries) == 0 {
		return
	}

	firstYear := entries[0].Period.Year()
	year := firstYear
	cost := entries[0].Cost

	for i := range entries {
		y := entries[i].Period.Year()
		if y == firstYear {
			cost = entries[i].Cost
			continue
		}

		if y != year {
			year = y
			if v, ok := carry[y]; ok {
				cost = v.Round(domain.LedgerPlaces)
			}
		}
		entries[i].Cost = cost
	}
}

func costEntry(assetCode string, p domain.Period, cost decimal.Decimal) domain.CostEntry {
	return domain.CostEntry{
		AssetCode: assetCode,
		Period:    p.Key(),
		Cost:      cost.Round(domain.LedgerPlaces),
	}
}

// periodsAtOrAfter keeps periods >= start, compared by (year, number).
func periodsAtOrAfter(periods []domain.Period, start domain.Period) []domain.Period {
	out := make([]domain.Period, 0, len(periods))
	for _, p := range periods {
		if !p.Before(start) {
			out = append(out, p)
		}
	}
	return out
}

// groupByYear splits an ordered sequence into consecutive same-year runs.
func groupByYear(periods []domain.Period) [][]domain.Period {
	var groups [][]domain.Period
	for _, p := range periods {
		n := len(groups)
		if n == 0 || groups[n-1][0].Year != p.Year {
			groups = append(groups, []domain.Period{p})
			continue
		}
		groups[n-1] = append(groups[n-1], p)
	}
	return groups
}
