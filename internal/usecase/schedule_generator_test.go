package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

func monthsOf(years ...int) []domain.Period {
	var out []domain.Period
	for _, y := range years {
		for m := 1; m <= 12; m++ {
			start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
			out = append(out, domain.Period{
				ID:        int64(y*100 + m),
				Number:    m,
				Month:     m,
				Year:      y,
				StartDate: start,
				EndDate:   start.AddDate(0, 1, -1),
			})
		}
	}
	return out
}

func periodAt(periods []domain.Period, key domain.PeriodKey) domain.Period {
	for _, p := range periods {
		if p.Key() == key {
			return p
		}
	}
	panic("period not found: " + string(key))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func policy(method domain.Method, rate string) domain.Policy {
	return domain.Policy{Code: "D1", Method: method, Rate: dec(rate), Configured: true}
}

func TestGenerateDepreciationSchedule_EqualInstallments(t *testing.T) {
	periods := monthsOf(2025)

	got := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode: "A1",
		Cost:      dec("12000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    policy(domain.MethodEqualInstallments, "10"),
	})

	if len(got.Entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(got.Entries))
	}

	for _, e := range got.Entries {
		if !e.Amount.Equal(dec("100")) {
			t.Fatalf("%s: expected monthly charge 100, got %s", e.Period, e.Amount)
		}
	}

	if bv := got.Entries[5].BookValue; got.Entries[5].Period != "06-2025" || !bv.Equal(dec("11400")) {
		t.Fatalf("expected book value 11400 at 06-2025, got %s at %s", bv, got.Entries[5].Period)
	}

	if len(got.CostCarry) != 0 {
		t.Fatalf("equal installments must not carry cost, got %v", got.CostCarry)
	}
}

func TestGenerateDepreciationSchedule_EqualInstallmentsConstantCharge(t *testing.T) {
	periods := monthsOf(2025, 2026, 2027, 2028, 2029, 2030)

	got := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode: "A1",
		Cost:      dec("12000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    policy(domain.MethodEqualInstallments, "20"),
	})

	if len(got.Entries) != 72 {
		t.Fatalf("expected 72 entries, got %d", len(got.Entries))
	}

	for _, e := range got.Entries {
		if !e.Amount.Equal(dec("200")) {
			t.Fatalf("%s: expected constant charge 200, got %s", e.Period, e.Amount)
		}
	}

	if e := got.Entries[59]; e.Period != "12-2029" || !e.BookValue.IsZero() {
		t.Fatalf("expected zero book value at 12-2029, got %s at %s", e.BookValue, e.Period)
	}
	if e := got.Entries[60]; e.Period != "01-2030" || !e.BookValue.Equal(dec("-200")) {
		t.Fatalf("expected -200 at 01-2030, got %s at %s", e.BookValue, e.Period)
	}
}

func TestGenerateDepreciationSchedule_OpeningAccumulated(t *testing.T) {
	periods := monthsOf(2025)

	got := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode:          "A1",
		Cost:               dec("12000"),
		OpeningAccumulated: dec("600"),
		Start:              periodAt(periods, "07-2025"),
		Periods:            periods,
		Policy:             policy(domain.MethodEqualInstallments, "10"),
	})

	if len(got.Entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(got.Entries))
	}
	if got.Entries[0].Period != "07-2025" || !got.Entries[0].BookValue.Equal(dec("11300")) {
		t.Fatalf("expected 11300 at 07-2025, got %s at %s", got.Entries[0].BookValue, got.Entries[0].Period)
	}
}

func TestGenerateDepreciationSchedule_ReducingBalance(t *testing.T) {
	periods := monthsOf(2025, 2026)

	got := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode: "A1",
		Cost:      dec("10000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    policy(domain.MethodReducingBalance, "20"),
	})

	if len(got.Entries) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(got.Entries))
	}

	if !got.Entries[0].Amount.Equal(dec("166.6667")) {
		t.Fatalf("expected first-year charge 166.6667, got %s", got.Entries[0].Amount)
	}

	if !got.Entries[11].BookValue.Equal(dec("8000")) {
		t.Fatalf("expected year-end book value 8000, got %s", got.Entries[11].BookValue)
	}

	if !got.Entries[12].Amount.Equal(dec("133.3333")) {
		t.Fatalf("expected second-year charge 133.3333, got %s", got.Entries[12].Amount)
	}

	carry, ok := got.CostCarry[2026]
	if !ok || !carry.Round(domain.LedgerPlaces).Equal(dec("8000")) {
		t.Fatalf("expected 8000 carried into 2026, got %v", got.CostCarry)
	}
	if _, ok := got.CostCarry[2025]; ok {
		t.Fatalf("start year must not be carried")
	}
}

func TestGenerateDepreciationSchedule_ZeroRate(t *testing.T) {
	periods := monthsOf(2025)

	got := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode: "A1",
		Cost:      dec("5000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    domain.UnconfiguredPolicy(),
	})

	if len(got.Entries) != 0 {
		t.Fatalf("expected no depreciation rows, got %d", len(got.Entries))
	}
}

func TestGenerateCostSchedule(t *testing.T) {
	periods := monthsOf(2025, 2026)

	t.Run("equal installments stay flat", func(t *testing.T) {
		got := usecase.GenerateCostSchedule(usecase.CostScheduleInput{
			AssetCode: "A1",
			Cost:      dec("12000"),
			Start:     periodAt(periods, "03-2025"),
			Periods:   periods,
			Policy:    policy(domain.MethodEqualInstallments, "10"),
		})

		if len(got) != 22 {
			t.Fatalf("expected 22 rows from 03-2025, got %d", len(got))
		}
		if got[0].Period != "03-2025" {
			t.Fatalf("expected first row 03-2025, got %s", got[0].Period)
		}
		for _, e := range got {
			if !e.Cost.Equal(dec("12000")) {
				t.Fatalf("%s: expected flat cost, got %s", e.Period, e.Cost)
			}
		}
	})

	t.Run("reducing balance carries book value", func(t *testing.T) {
		p := policy(domain.MethodReducingBalance, "20")
		costs := usecase.GenerateCostSchedule(usecase.CostScheduleInput{
			AssetCode: "A1",
			Cost:      dec("10000"),
			Start:     periodAt(periods, "01-2025"),
			Periods:   periods,
			Policy:    p,
		})
		dep := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
			AssetCode: "A1",
			Cost:      dec("10000"),
			Start:     periodAt(periods, "01-2025"),
			Periods:   periods,
			Policy:    p,
		})

		usecase.ApplyCostCarry(costs, dep.CostCarry)

		if !costs[0].Cost.Equal(dec("10000")) {
			t.Fatalf("expected 10000 in 2025, got %s", costs[0].Cost)
		}
		if costs[12].Period != "01-2026" || !costs[12].Cost.Equal(dec("8000")) {
			t.Fatalf("expected 8000 at 01-2026, got %s at %s", costs[12].Cost, costs[12].Period)
		}
	})
}

func TestApplyCostCarry_FlatUntilDepreciationStarts(t *testing.T) {
	periods := monthsOf(2025, 2026, 2027)
	p := policy(domain.MethodReducingBalance, "20")

	costs := usecase.GenerateCostSchedule(usecase.CostScheduleInput{
		AssetCode: "A1",
		Cost:      dec("10000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    p,
	})
	dep := usecase.GenerateDepreciationSchedule(usecase.DepreciationScheduleInput{
		AssetCode: "A1",
		Cost:      dec("10000"),
		Start:     periodAt(periods, "06-2026"),
		Periods:   periods,
		Policy:    p,
	})

	usecase.ApplyCostCarry(costs, dep.CostCarry)

	if !costs[12].Cost.Equal(dec("10000")) || !costs[23].Cost.Equal(dec("10000")) {
		t.Fatalf("expected 2026 to stay at 10000, got %s / %s", costs[12].Cost, costs[23].Cost)
	}
	if !costs[24].Cost.Equal(dec("8833.3333")) {
		t.Fatalf("expected 8833.3333 at 01-2027, got %s", costs[24].Cost)
	}
}

func TestApplyCostCarry_NoDepreciationKeepsCost(t *testing.T) {
	periods := monthsOf(2025, 2026)

	costs := usecase.GenerateCostSchedule(usecase.CostScheduleInput{
		AssetCode: "A1",
		Cost:      dec("10000"),
		Start:     periodAt(periods, "01-2025"),
		Periods:   periods,
		Policy:    policy(domain.MethodReducingBalance, "20"),
	})

	usecase.ApplyCostCarry(costs, nil)

	for _, c := range costs {
		if !c.Cost.Equal(dec("10000")) {
			t.Fatalf("%s: expected 10000, got %s", c.Period, c.Cost)
		}
	}
}

func TestEffectiveStart(t *testing.T) {
	periods := monthsOf(2025)
	target := periodAt(periods, "01-2025")

	got := usecase.EffectiveStart(target, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), periods)
	if got.Key() != "03-2025" {
		t.Fatalf("expected 03-2025, got %s", got.Key())
	}

	got = usecase.EffectiveStart(target, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), periods)
	if got.Key() != "01-2025" {
		t.Fatalf("expected target when start date is earlier, got %s", got.Key())
	}

	got = usecase.EffectiveStart(target, time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), periods)
	if got.Key() != "03-2025" {
		t.Fatalf("expected 03-2025 for the last day of March, got %s", got.Key())
	}

	got = usecase.EffectiveStart(target, time.Time{}, periods)
	if got.Key() != "01-2025" {
		t.Fatalf("expected target for zero start date, got %s", got.Key())
	}
}
