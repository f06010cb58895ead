package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase/mocks"
)

type scheduleFixture struct {
	periods   []domain.Period
	assets    *mocks.MockAssetRepository
	costs     *mocks.MockCostRepository
	deps      *mocks.MockDepreciationRepository
	txLog     *mocks.MockTransactionLogRepository
	outbox    *mocks.MockOutboxRepository
	txManager *mocks.MockTransactionManager
	metrics   *metrics.Metrics
	uc        *usecase.ScheduleUseCase
	ucDeps    usecase.ScheduleDependencies

	mu       sync.Mutex
	current  domain.PeriodKey
	policies map[string]*domain.Policy
	groups   map[string]string
}

// newScheduleFixture builds a schedule engine over in-memory ledgers. An empty
// current key means no period is flagged current.
func newScheduleFixture(t *testing.T, current domain.PeriodKey, years ...int) *scheduleFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &scheduleFixture{
		periods:   monthsOf(years...),
		assets:    mocks.NewMockAssetRepository(),
		costs:     mocks.NewMockCostRepository(),
		deps:      mocks.NewMockDepreciationRepository(),
		txLog:     mocks.NewMockTransactionLogRepository(),
		outbox:    mocks.NewMockOutboxRepository(),
		txManager: mocks.NewMockTransactionManager(),
		metrics:   metrics.NewWithRegistry(prometheus.NewRegistry()),
		current:   current,
		policies:  map[string]*domain.Policy{},
		groups:    map[string]string{},
	}

	periodRepo := mocks.NewMockPeriodRepository(ctrl)
	periodRepo.EXPECT().GetCurrent(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Period, error) {
		f.mu.Lock()
		key := f.current
		f.mu.Unlock()
		if key == "" {
			return nil, domain.ErrPeriodNotFound
		}
		p := periodAt(f.periods, key)
		p.IsCurrent = true
		return &p, nil
	}).AnyTimes()
	periodRepo.EXPECT().GetByYear(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, year int) ([]domain.Period, error) {
		var out []domain.Period
		for _, p := range f.periods {
			if p.Year == year {
				out = append(out, p)
			}
		}
		return out, nil
	}).AnyTimes()
	periodRepo.EXPECT().GetByKey(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, number, year int) (*domain.Period, error) {
		for _, p := range f.periods {
			if p.Number == number && p.Year == year {
				return &p, nil
			}
		}
		return nil, domain.ErrPeriodNotFound
	}).AnyTimes()

	policyRepo := mocks.NewMockPolicyRepository(ctrl)
	policyRepo.EXPECT().GetByGroup(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, group string) (*domain.Policy, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		p, ok := f.policies[f.groups[group]]
		if !ok {
			return nil, domain.ErrPolicyNotConfigured
		}
		cp := *p
		return &cp, nil
	}).AnyTimes()
	policyRepo.EXPECT().GetByCode(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, code string) (*domain.Policy, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		p, ok := f.policies[code]
		if !ok {
			return nil, domain.ErrPolicyNotFound
		}
		cp := *p
		return &cp, nil
	}).AnyTimes()

	logger := zerolog.Nop()
	calendar := usecase.NewPeriodCalendar(periodRepo, nil, 0, logger, f.metrics)

	f.ucDeps = usecase.ScheduleDependencies{
		TxManager:  f.txManager,
		Calendar:   calendar,
		Policies:   usecase.NewPolicyLookup(policyRepo, logger, f.metrics),
		AssetRepo:  f.assets,
		PolicyRepo: policyRepo,
		CostRepo:   f.costs,
		DepRepo:    f.deps,
		TxLogRepo:  f.txLog,
		OutboxRepo: f.outbox,
		IDGen:      mocks.NewMockIDGenerator(),
		Logger:     logger,
		Metrics:    f.metrics,
		Clock:      func() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) },
	}
	f.configure(usecase.ScheduleConfig{MaxYears: len(years) - 1, Workers: 2})

	return f
}

// configure rebuilds the engine over the same ledgers.
func (f *scheduleFixture) configure(cfg usecase.ScheduleConfig) {
	f.uc = usecase.NewScheduleUseCase(f.ucDeps, cfg)
}

func (f *scheduleFixture) setCurrent(key domain.PeriodKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = key
}

func (f *scheduleFixture) setPolicy(group, code string, method domain.Method, rate string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups[group] = code
	f.policies[code] = &domain.Policy{Code: code, Method: method, Rate: dec(rate)}
	f.assets.MapGroup(group, code)
}

func (f *scheduleFixture) addAsset(code, group, cost string) {
	f.assets.Put(&domain.Asset{
		Code:           code,
		GroupCode:      group,
		PurchaseAmount: dec(cost),
		Cost:           dec(cost),
		Status:         domain.AssetStatusActive,
	})
}

func (f *scheduleFixture) addAssetFrom(code, group, cost string, depreciationStart time.Time) {
	f.assets.Put(&domain.Asset{
		Code:                  code,
		GroupCode:             group,
		PurchaseAmount:        dec(cost),
		Cost:                  dec(cost),
		DepreciationStartDate: depreciationStart,
		Status:                domain.AssetStatusActive,
	})
}

func costsOf(f *scheduleFixture, code string) []domain.CostEntry {
	rows, _ := f.costs.History(context.Background(), code)
	return rows
}

func depsOf(f *scheduleFixture, code string) []domain.DepreciationEntry {
	rows, _ := f.deps.History(context.Background(), code)
	return rows
}

func countType(records []*domain.Transaction, txType domain.TransactionType) int {
	n := 0
	for _, r := range records {
		if r.Type == txType {
			n++
		}
	}
	return n
}

func TestScheduleUseCase_OnAssetCreated(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")
	ctx := context.Background()

	result, err := f.uc.OnAssetCreated(ctx, "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CostEntries != 24 || result.DepreciationEntries != 24 {
		t.Fatalf("expected 24/24 rows, got %d/%d", result.CostEntries, result.DepreciationEntries)
	}
	if result.StartPeriod != "01-2025" || !result.Policy.Configured {
		t.Fatalf("unexpected result %+v", result)
	}

	deps := depsOf(f, "A1")
	if !deps[5].BookValue.Equal(dec("11400")) {
		t.Fatalf("expected 11400 at 06-2025, got %s", deps[5].BookValue)
	}

	// Running it again replaces the rows and does not log a second creation.
	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}

	if n := len(costsOf(f, "A1")); n != 24 {
		t.Fatalf("expected 24 cost rows after retry, got %d", n)
	}
	if n := len(depsOf(f, "A1")); n != 24 {
		t.Fatalf("expected 24 depreciation rows after retry, got %d", n)
	}

	records, _ := f.txLog.ListByAsset(ctx, "A1")
	if n := countType(records, domain.TransactionTypeAdded); n != 1 {
		t.Fatalf("expected one creation record, got %d", n)
	}
	if !records[0].Amount.Equal(dec("12000")) || records[0].Period != "01-2025" {
		t.Fatalf("unexpected creation record %+v", records[0])
	}

	if got := testutil.ToFloat64(f.metrics.ScheduleOperations.WithLabelValues("create", "success")); got != 2 {
		t.Fatalf("expected 2 successful create operations, got %v", got)
	}
}

func TestScheduleUseCase_OnAssetCreated_RowsInPeriodOrder(t *testing.T) {
	f := newScheduleFixture(t, "11-2025", 2025, 2026)
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "20")
	f.addAsset("A1", "G1", "10000")

	if _, err := f.uc.OnAssetCreated(context.Background(), "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := f.deps.Rows()
	for i := 1; i < len(rows); i++ {
		if rows[i].Period.Compare(rows[i-1].Period) <= 0 {
			t.Fatalf("row %d (%s) not after row %d (%s)", i, rows[i].Period, i-1, rows[i-1].Period)
		}
	}

	costs := costsOf(f, "A1")
	if costs[0].Period != "11-2025" || costs[2].Period != "01-2026" {
		t.Fatalf("unexpected cost periods %s, %s", costs[0].Period, costs[2].Period)
	}
}

func TestScheduleUseCase_OnAssetCreated_ReducingBalanceCostFollowsBookValue(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026, 2027)
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "20")
	f.addAsset("A1", "G1", "10000")

	if _, err := f.uc.OnAssetCreated(context.Background(), "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	costs := costsOf(f, "A1")
	deps := depsOf(f, "A1")
	if len(costs) != 36 || len(deps) != 36 {
		t.Fatalf("expected 36/36 rows, got %d/%d", len(costs), len(deps))
	}

	for i := 12; i < len(costs); i += 12 {
		if costs[i].Period.Number() != 1 || deps[i-1].Period.Number() != 12 {
			t.Fatalf("unexpected periods %s / %s", costs[i].Period, deps[i-1].Period)
		}
		if !costs[i].Cost.Equal(deps[i-1].BookValue) {
			t.Fatalf("%s: cost %s does not match year-end book value %s", costs[i].Period, costs[i].Cost, deps[i-1].BookValue)
		}
	}

	if !costs[12].Cost.Equal(dec("8000")) || !costs[24].Cost.Equal(dec("6400")) {
		t.Fatalf("expected 8000 and 6400, got %s and %s", costs[12].Cost, costs[24].Cost)
	}
}

func TestScheduleUseCase_OnAssetCreated_DepreciationStartsInLaterYear(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026, 2027)
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "20")
	f.addAssetFrom("A1", "G1", "10000", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	if _, err := f.uc.OnAssetCreated(context.Background(), "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	costs := costsOf(f, "A1")
	if len(costs) != 36 {
		t.Fatalf("expected 36 cost rows, got %d", len(costs))
	}
	for _, c := range costs[:24] {
		if !c.Cost.Equal(dec("10000")) {
			t.Fatalf("%s: cost must stay flat before depreciation starts, got %s", c.Period, c.Cost)
		}
	}

	deps := depsOf(f, "A1")
	if len(deps) != 19 || deps[0].Period != "06-2026" {
		t.Fatalf("expected 19 rows from 06-2026, got %d from %s", len(deps), deps[0].Period)
	}
	if !deps[0].BookValue.Equal(dec("9833.3333")) {
		t.Fatalf("expected 9833.3333 at 06-2026, got %s", deps[0].BookValue)
	}

	// 10000 - 7 * 10000*20/1200
	if costs[24].Period != "01-2027" || !costs[24].Cost.Equal(dec("8833.3333")) {
		t.Fatalf("expected 8833.3333 at 01-2027, got %s at %s", costs[24].Cost, costs[24].Period)
	}
	if !costs[24].Cost.Equal(deps[6].BookValue) {
		t.Fatalf("01-2027 cost %s does not match 12-2026 book value %s", costs[24].Cost, deps[6].BookValue)
	}
}

func TestScheduleUseCase_OnAssetCreated_UnconfiguredGroup(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025)
	f.addAsset("A1", "NOPOLICY", "5000")

	result, err := f.uc.OnAssetCreated(context.Background(), "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Policy.Configured || result.DepreciationEntries != 0 {
		t.Fatalf("expected fallback policy without depreciation, got %+v", result)
	}
	if result.CostEntries != 12 {
		t.Fatalf("expected 12 flat cost rows, got %d", result.CostEntries)
	}
	if got := testutil.ToFloat64(f.metrics.PolicyFallbacks); got != 1 {
		t.Fatalf("expected one policy fallback, got %v", got)
	}
}

func TestScheduleUseCase_OnAssetCreated_NoCurrentPeriod(t *testing.T) {
	f := newScheduleFixture(t, "", 2025)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")

	_, err := f.uc.OnAssetCreated(context.Background(), "A1")
	if !errors.Is(err, domain.ErrNoCurrentPeriod) {
		t.Fatalf("expected ErrNoCurrentPeriod, got %v", err)
	}
	if len(f.costs.Rows()) != 0 || len(f.deps.Rows()) != 0 {
		t.Fatalf("expected no ledger rows")
	}
	if f.txManager.Commits() != 0 {
		t.Fatalf("expected no commit")
	}
}

func TestScheduleUseCase_OnAssetRevalued(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")
	ctx := context.Background()

	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := usecase.RevalueAssetInput{AssetCode: "A1", NewCost: dec("15000"), EffectivePeriod: "07-2025"}

	result, err := f.uc.OnAssetRevalued(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Transaction.Amount.Equal(dec("3000")) || !result.Asset.Cost.Equal(dec("15000")) {
		t.Fatalf("unexpected revaluation result %+v", result.Transaction)
	}

	first := costsOf(f, "A1")
	firstDeps := depsOf(f, "A1")

	// Same revaluation again leaves the ledgers unchanged.
	again, err := f.uc.OnAssetRevalued(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error on repeat: %v", err)
	}
	if !again.Transaction.Amount.IsZero() {
		t.Fatalf("expected zero delta on repeat, got %s", again.Transaction.Amount)
	}

	second := costsOf(f, "A1")
	secondDeps := depsOf(f, "A1")
	if len(first) != len(second) || len(firstDeps) != len(secondDeps) {
		t.Fatalf("row counts changed: %d/%d -> %d/%d", len(first), len(firstDeps), len(second), len(secondDeps))
	}
	for i := range second {
		if second[i].Period != first[i].Period || !second[i].Cost.Equal(first[i].Cost) {
			t.Fatalf("cost row %d changed: %+v -> %+v", i, first[i], second[i])
		}
	}
	for i := range secondDeps {
		if !secondDeps[i].Amount.Equal(firstDeps[i].Amount) || !secondDeps[i].BookValue.Equal(firstDeps[i].BookValue) {
			t.Fatalf("depreciation row %d changed", i)
		}
	}

	if len(second) != 24 || len(secondDeps) != 24 {
		t.Fatalf("expected exactly one row per period, got %d/%d", len(second), len(secondDeps))
	}
	if !second[5].Cost.Equal(dec("12000")) {
		t.Fatalf("rows before the effective period must keep the old cost, got %s", second[5].Cost)
	}
	if second[6].Period != "07-2025" || !second[6].Cost.Equal(dec("15000")) {
		t.Fatalf("expected 15000 from 07-2025, got %s at %s", second[6].Cost, second[6].Period)
	}
	if !secondDeps[6].Amount.Equal(dec("125")) {
		t.Fatalf("expected charge 125 from 07-2025, got %s", secondDeps[6].Amount)
	}

	records, _ := f.txLog.ListByAsset(ctx, "A1")
	if n := countType(records, domain.TransactionTypeRevalued); n != 2 {
		t.Fatalf("expected 2 revaluation records, got %d", n)
	}
}

func TestScheduleUseCase_OnAssetRevalued_Errors(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.RevalueAssetInput
		wantErr error
	}{
		{
			name:    "negative cost",
			input:   usecase.RevalueAssetInput{AssetCode: "A1", NewCost: dec("-1"), EffectivePeriod: "03-2025"},
			wantErr: domain.ErrInvalidCost,
		},
		{
			name:    "unknown period",
			input:   usecase.RevalueAssetInput{AssetCode: "A1", NewCost: dec("100"), EffectivePeriod: "03-2030"},
			wantErr: domain.ErrPeriodNotFound,
		},
		{
			name:    "malformed period",
			input:   usecase.RevalueAssetInput{AssetCode: "A1", NewCost: dec("100"), EffectivePeriod: "2025-03"},
			wantErr: domain.ErrInvalidPeriodKey,
		},
		{
			name:    "unknown asset",
			input:   usecase.RevalueAssetInput{AssetCode: "NOPE", NewCost: dec("100"), EffectivePeriod: "03-2025"},
			wantErr: domain.ErrAssetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.OnAssetRevalued(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestScheduleUseCase_OnAssetScrapped(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")
	ctx := context.Background()

	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := f.uc.OnAssetScrapped(ctx, usecase.ScrapAssetInput{AssetCode: "A1", EffectivePeriod: "04-2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Asset.IsScrapped() || !result.Asset.Cost.IsZero() {
		t.Fatalf("expected scrapped asset with zero cost, got %+v", result.Asset)
	}
	if !result.Transaction.Amount.Equal(dec("-12000")) || !result.Transaction.Cost.IsZero() {
		t.Fatalf("unexpected scrap record %+v", result.Transaction)
	}

	for _, c := range costsOf(f, "A1") {
		atOrAfter := c.Period.Compare("04-2025") >= 0
		if atOrAfter && !c.Cost.IsZero() {
			t.Fatalf("%s: expected zero cost after scrap, got %s", c.Period, c.Cost)
		}
		if !atOrAfter && !c.Cost.Equal(dec("12000")) {
			t.Fatalf("%s: cost before scrap must be kept, got %s", c.Period, c.Cost)
		}
	}

	var tail []domain.DepreciationEntry
	for _, d := range depsOf(f, "A1") {
		if d.Period.Compare("04-2025") >= 0 {
			tail = append(tail, d)
		}
	}
	if len(tail) != 1 || tail[0].Period != "04-2025" || !tail[0].IsTerminal() {
		t.Fatalf("expected a single terminal row at 04-2025, got %+v", tail)
	}

	stored, _ := f.assets.GetByCode(ctx, "A1")
	if !stored.IsScrapped() {
		t.Fatalf("expected stored asset to be scrapped")
	}

	_, err = f.uc.OnAssetScrapped(ctx, usecase.ScrapAssetInput{AssetCode: "A1", EffectivePeriod: "05-2025"})
	if !errors.Is(err, domain.ErrAssetScrapped) {
		t.Fatalf("expected ErrAssetScrapped on second scrap, got %v", err)
	}

	_, err = f.uc.OnAssetRevalued(ctx, usecase.RevalueAssetInput{AssetCode: "A1", NewCost: dec("100"), EffectivePeriod: "06-2025"})
	if !errors.Is(err, domain.ErrAssetScrapped) {
		t.Fatalf("expected ErrAssetScrapped on revalue, got %v", err)
	}
}

func TestScheduleUseCase_OnPolicyRateChanged(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	ctx := context.Background()

	for _, code := range []string{"A", "B", "C", "D"} {
		f.addAsset(code, "G1", "12000")
		if _, err := f.uc.OnAssetCreated(ctx, code); err != nil {
			t.Fatalf("create %s: %v", code, err)
		}
	}

	if _, err := f.uc.OnAssetScrapped(ctx, usecase.ScrapAssetInput{AssetCode: "D", EffectivePeriod: "01-2025"}); err != nil {
		t.Fatalf("scrap D: %v", err)
	}

	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "20")
	f.assets.GetByCodeForUpdateFunc = func(ctx context.Context, tx usecase.Transaction, code string) (*domain.Asset, error) {
		if code == "A" {
			return nil, errors.New("row lock timeout")
		}
		return f.assets.GetByCode(ctx, code)
	}

	report, err := f.uc.OnPolicyRateChanged(ctx, "D1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]usecase.RateChangeStatus{
		"A": usecase.RateChangeFailed,
		"B": usecase.RateChangeSucceeded,
		"C": usecase.RateChangeSucceeded,
		"D": usecase.RateChangeSkipped,
	}
	if len(report.Outcomes) != len(want) {
		t.Fatalf("expected %d outcomes, got %d", len(want), len(report.Outcomes))
	}
	for _, o := range report.Outcomes {
		if o.Status != want[o.AssetCode] {
			t.Fatalf("%s: expected %s, got %s", o.AssetCode, want[o.AssetCode], o.Status)
		}
	}
	if report.Outcomes[0].AssetCode != "A" || report.Outcomes[0].Error == "" {
		t.Fatalf("expected sorted outcomes with the failure message, got %+v", report.Outcomes[0])
	}

	if got := depsOf(f, "A")[0].Amount; !got.Equal(dec("100")) {
		t.Fatalf("failed asset must keep its old charge, got %s", got)
	}
	for _, code := range []string{"B", "C"} {
		deps := depsOf(f, code)
		if len(deps) != 12 || !deps[0].Amount.Equal(dec("200")) || !deps[0].Rate.Equal(dec("20")) {
			t.Fatalf("%s: expected 12 rows at the new rate, got %d rows, first %+v", code, len(deps), deps[0])
		}
	}

	if got := testutil.ToFloat64(f.metrics.RateChangeAssets.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected one failed asset metric, got %v", got)
	}
}

func TestScheduleUseCase_OnPolicyRateChanged_ContinuesAccumulation(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025)
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "10")
	f.addAsset("A1", "G1", "12000")
	ctx := context.Background()

	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Six months are booked at 100 when the rate changes in July.
	f.setCurrent("07-2025")
	f.setPolicy("G1", "D1", domain.MethodEqualInstallments, "20")

	report, err := f.uc.OnPolicyRateChanged(ctx, "D1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Period != "07-2025" || report.Count(usecase.RateChangeSucceeded) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	deps := depsOf(f, "A1")
	if len(deps) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(deps))
	}
	if !deps[5].Amount.Equal(dec("100")) {
		t.Fatalf("rows before the current period must be kept, got %s", deps[5].Amount)
	}
	// 12000 - 6*100 - 200
	if !deps[6].Amount.Equal(dec("200")) || !deps[6].BookValue.Equal(dec("11200")) {
		t.Fatalf("expected 200 / 11200 at 07-2025, got %s / %s", deps[6].Amount, deps[6].BookValue)
	}
}

func TestScheduleUseCase_OnPolicyRateChanged_ReducingBalance(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026)
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "20")
	f.addAsset("A1", "G1", "10000")
	ctx := context.Background()

	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.setCurrent("07-2025")
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "10")

	report, err := f.uc.OnPolicyRateChanged(ctx, "D1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Count(usecase.RateChangeSucceeded) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	deps := depsOf(f, "A1")
	if len(deps) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(deps))
	}
	if !deps[5].Amount.Equal(dec("166.6667")) {
		t.Fatalf("rows before the current period must be kept, got %s", deps[5].Amount)
	}

	// Book value 10000 - 6*166.6667 = 8999.9998, charged at 10% a year.
	if !deps[6].Amount.Equal(dec("75")) || !deps[6].BookValue.Equal(dec("8924.9998")) || !deps[6].Rate.Equal(dec("10")) {
		t.Fatalf("unexpected 07-2025 row %+v", deps[6])
	}
	if !deps[11].BookValue.Equal(dec("8549.9998")) {
		t.Fatalf("expected 8549.9998 at 12-2025, got %s", deps[11].BookValue)
	}
	if !deps[12].Amount.Equal(dec("71.25")) {
		t.Fatalf("expected 71.25 from 01-2026, got %s", deps[12].Amount)
	}

	// Cost rows are left alone unless cost feedback is on.
	if got := costsOf(f, "A1")[12].Cost; !got.Equal(dec("8000")) {
		t.Fatalf("expected 01-2026 cost to stay 8000, got %s", got)
	}
}

func TestScheduleUseCase_OnPolicyRateChanged_CostFeedback(t *testing.T) {
	f := newScheduleFixture(t, "01-2025", 2025, 2026)
	f.configure(usecase.ScheduleConfig{MaxYears: 1, Workers: 2, RateChangeCostFeedback: true})
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "20")
	f.addAsset("A1", "G1", "10000")
	ctx := context.Background()

	if _, err := f.uc.OnAssetCreated(ctx, "A1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.setCurrent("07-2025")
	f.setPolicy("G1", "D1", domain.MethodReducingBalance, "10")

	if _, err := f.uc.OnPolicyRateChanged(ctx, "D1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	costs := costsOf(f, "A1")
	deps := depsOf(f, "A1")
	for _, c := range costs[:12] {
		if !c.Cost.Equal(dec("10000")) {
			t.Fatalf("%s: start year cost must be kept, got %s", c.Period, c.Cost)
		}
	}
	for _, c := range costs[12:] {
		if !c.Cost.Equal(deps[11].BookValue) {
			t.Fatalf("%s: expected %s, got %s", c.Period, deps[11].BookValue, c.Cost)
		}
	}
	if !costs[12].Cost.Equal(dec("8549.9998")) {
		t.Fatalf("expected 8549.9998 at 01-2026, got %s", costs[12].Cost)
	}
}

func TestRateChangeReport_Count(t *testing.T) {
	r := &usecase.RateChangeReport{Rate: decimal.NewFromInt(5), Outcomes: []usecase.RateChangeOutcome{
		{AssetCode: "A", Status: usecase.RateChangeSucceeded},
		{AssetCode: "B", Status: usecase.RateChangeSucceeded},
		{AssetCode: "C", Status: usecase.RateChangeSkipped},
	}}

	if r.Count(usecase.RateChangeSucceeded) != 2 || r.Count(usecase.RateChangeFailed) != 0 {
		t.Fatalf("unexpected counts")
	}
}
