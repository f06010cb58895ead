package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
)

// ScheduleConfig tunes schedule generation.
type ScheduleConfig struct {
	// MaxYears is how many years after the start year a schedule covers.
	MaxYears int
	// Workers bounds concurrent recalculations in a rate-change fan-out.
	Workers int
	// RateChangeCostFeedback also rewrites reducing-balance cost rows on a rate change.
	RateChangeCostFeedback bool
}

// ScheduleDependencies are the collaborators of ScheduleUseCase.
type ScheduleDependencies struct {
	TxManager  TransactionManager
	Calendar   *PeriodCalendar
	Policies   *PolicyLookup
	AssetRepo  AssetRepository
	PolicyRepo PolicyRepository
	CostRepo   CostRepository
	DepRepo    DepreciationRepository
	TxLogRepo  TransactionLogRepository
	OutboxRepo OutboxRepository
	IDGen      IDGenerator
	Retrier    Retrier
	Logger     zerolog.Logger
	Metrics    *metrics.Metrics
	Clock      func() time.Time
}

// ScheduleUseCase drives schedule generation and recalculation for asset
// lifecycle events. Every operation deletes the affected ledger tail and
// regenerates it inside a single transaction.
type ScheduleUseCase struct {
	txManager  TransactionManager
	calendar   *PeriodCalendar
	policies   *PolicyLookup
	assetRepo  AssetRepository
	policyRepo PolicyRepository
	costRepo   CostRepository
	depRepo    DepreciationRepository
	txLogRepo  TransactionLogRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	retrier    Retrier
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	clock      func() time.Time
	cfg        ScheduleConfig
}

// NewScheduleUseCase creates a new ScheduleUseCase.
func NewScheduleUseCase(deps ScheduleDependencies, cfg ScheduleConfig) *ScheduleUseCase {
	if cfg.MaxYears <= 0 {
		cfg.MaxYears = DefaultMaxScheduleYears
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultRateChangeWorkers
	}
	if deps.Clock == nil {
		deps.Clock = func() time.Time { return time.Now().UTC() }
	}

	return &ScheduleUseCase{
		txManager:  deps.TxManager,
		calendar:   deps.Calendar,
		policies:   deps.Policies,
		assetRepo:  deps.AssetRepo,
		policyRepo: deps.PolicyRepo,
		costRepo:   deps.CostRepo,
		depRepo:    deps.DepRepo,
		txLogRepo:  deps.TxLogRepo,
		outboxRepo: deps.OutboxRepo,
		idGen:      deps.IDGen,
		retrier:    deps.Retrier,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      deps.Clock,
		cfg:        cfg,
	}
}

// ScheduleResult summarizes a regenerated ledger tail.
type ScheduleResult struct {
	AssetCode           string
	StartPeriod         domain.PeriodKey
	Policy              domain.Policy
	CostEntries         int
	DepreciationEntries int
}

// OnAssetCreated generates the asset's schedule from the current period. Rows
// from the current period onward are replaced, so it is also the retry path for
// a failed generation. The creation record is written once.
func (uc *ScheduleUseCase) OnAssetCreated(ctx context.Context, assetCode string) (*ScheduleResult, error) {
	start := time.Now()

	var result *ScheduleResult
	err := uc.retry(ctx, func() error {
		var err error
		result, err = uc.generateFromCurrent(ctx, assetCode)
		return err
	})

	uc.observe("create", start, err)

	return result, err
}

func (uc *ScheduleUseCase) generateFromCurrent(ctx context.Context, assetCode string) (*ScheduleResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	asset, err := uc.assetRepo.GetByCodeForUpdate(txCtx, tx, assetCode)
	if err != nil {
		return nil, err
	}
	if err := asset.EnsureActive(); err != nil {
		return nil, err
	}

	current, err := uc.calendar.CurrentPeriod(txCtx)
	if err != nil {
		return nil, err
	}

	policy, err := uc.policies.MethodAndRateFor(txCtx, asset.GroupCode)
	if err != nil {
		return nil, err
	}

	result, err := uc.regenerate(txCtx, tx, asset, asset.Cost, current, policy)
	if err != nil {
		return nil, err
	}

	exists, err := uc.txLogRepo.ExistsByType(txCtx, tx, asset.Code, domain.TransactionTypeAdded)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := uc.appendTransaction(txCtx, tx, asset.Code, current.Key(), domain.TransactionTypeAdded, asset.PurchaseAmount, asset.PurchaseAmount); err != nil {
			return nil, err
		}
	}

	if err := uc.emit(txCtx, tx, domain.AggregateTypeAsset, asset.Code, domain.EventTypeScheduleGenerated, map[string]any{
		"asset_code":   asset.Code,
		"start_period": string(result.StartPeriod),
		"method":       string(policy.Method),
		"rate":         policy.Rate.String(),
		"configured":   policy.Configured,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return result, nil
}

// RevalueAssetInput represents input for revaluing an asset.
type RevalueAssetInput struct {
	AssetCode       string
	NewCost         decimal.Decimal
	EffectivePeriod domain.PeriodKey
}

// RevaluationResult is the outcome of a revaluation.
type RevaluationResult struct {
	Asset       *domain.Asset
	Transaction *domain.Transaction
	Schedule    *ScheduleResult
}

// OnAssetRevalued regenerates the ledger tail from the effective period using
// the new cost, records the cost delta and persists the new cost.
func (uc *ScheduleUseCase) OnAssetRevalued(ctx context.Context, input RevalueAssetInput) (*RevaluationResult, error) {
	if err := domain.ValidateAmount(input.NewCost); err != nil {
		return nil, err
	}

	start := time.Now()

	var result *RevaluationResult
	err := uc.retry(ctx, func() error {
		var err error
		result, err = uc.revalue(ctx, input)
		return err
	})

	uc.observe("revalue", start, err)
	if err == nil && uc.metrics != nil {
		uc.metrics.AssetsRevalued.Inc()
	}

	return result, err
}

func (uc *ScheduleUseCase) revalue(ctx context.Context, input RevalueAssetInput) (*RevaluationResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	asset, err := uc.assetRepo.GetByCodeForUpdate(txCtx, tx, input.AssetCode)
	if err != nil {
		return nil, err
	}
	if err := asset.EnsureActive(); err != nil {
		return nil, err
	}

	period, err := uc.calendar.PeriodByKey(txCtx, input.EffectivePeriod)
	if err != nil {
		return nil, err
	}

	policy, err := uc.policies.MethodAndRateFor(txCtx, asset.GroupCode)
	if err != nil {
		return nil, err
	}

	oldCost := asset.Cost

	schedule, err := uc.regenerate(txCtx, tx, asset, input.NewCost, period, policy)
	if err != nil {
		return nil, err
	}

	record := uc.newTransaction(asset.Code, period.Key(), domain.TransactionTypeRevalued, input.NewCost.Sub(oldCost), input.NewCost)
	if err := uc.txLogRepo.Append(txCtx, tx, record); err != nil {
		return nil, err
	}

	now := uc.clock()
	if err := uc.setCost(txCtx, tx, asset.Code, input.NewCost, now); err != nil {
		return nil, err
	}

	if err := uc.emit(txCtx, tx, domain.AggregateTypeAsset, asset.Code, domain.EventTypeAssetRevalued, map[string]any{
		"asset_code": asset.Code,
		"period":     string(period.Key()),
		"old_cost":   oldCost.String(),
		"new_cost":   input.NewCost.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	asset.Cost = input.NewCost
	asset.UpdatedAt = now

	return &RevaluationResult{
		Asset:       asset,
		Transaction: record,
		Schedule:    schedule,
	}, nil
}

// ScrapAssetInput represents input for scrapping an asset.
type ScrapAssetInput struct {
	AssetCode       string
	EffectivePeriod domain.PeriodKey
}

// ScrapResult is the outcome of scrapping an asset.
type ScrapResult struct {
	Asset       *domain.Asset
	Transaction *domain.Transaction
}

// OnAssetScrapped zeroes the cost ledger from the effective period, closes the
// depreciation ledger with a single terminal row and marks the asset scrapped.
// Scrapping an already scrapped asset fails with domain.ErrAssetScrapped.
func (uc *ScheduleUseCase) OnAssetScrapped(ctx context.Context, input ScrapAssetInput) (*ScrapResult, error) {
	start := time.Now()

	var result *ScrapResult
	err := uc.retry(ctx, func() error {
		var err error
		result, err = uc.scrap(ctx, input)
		return err
	})

	uc.observe("scrap", start, err)
	if err == nil && uc.metrics != nil {
		uc.metrics.AssetsScrapped.Inc()
	}

	return result, err
}

func (uc *ScheduleUseCase) scrap(ctx context.Context, input ScrapAssetInput) (*ScrapResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	asset, err := uc.assetRepo.GetByCodeForUpdate(txCtx, tx, input.AssetCode)
	if err != nil {
		return nil, err
	}
	if err := asset.EnsureActive(); err != nil {
		return nil, err
	}

	period, err := uc.calendar.PeriodByKey(txCtx, input.EffectivePeriod)
	if err != nil {
		return nil, err
	}
	key := period.Key()

	if _, err := uc.costRepo.ZeroFrom(txCtx, tx, asset.Code, key); err != nil {
		return nil, fmt.Errorf("zero cost ledger: %w", err)
	}

	if err := uc.truncateDepreciation(txCtx, tx, asset.Code, key); err != nil {
		return nil, err
	}

	if err := uc.depRepo.Insert(txCtx, tx, []domain.DepreciationEntry{domain.TerminalDepreciationEntry(asset.Code, key)}); err != nil {
		return nil, fmt.Errorf("insert terminal depreciation: %w", err)
	}

	record := uc.newTransaction(asset.Code, key, domain.TransactionTypeScrapped, asset.Cost.Neg(), decimal.Zero)
	if err := uc.txLogRepo.Append(txCtx, tx, record); err != nil {
		return nil, err
	}

	now := uc.clock()
	if err := uc.setCost(txCtx, tx, asset.Code, decimal.Zero, now); err != nil {
		return nil, err
	}
	if err := uc.assetRepo.SetStatus(txCtx, tx, asset.Code, domain.AssetStatusScrapped, now); err != nil {
		return nil, err
	}

	if err := uc.emit(txCtx, tx, domain.AggregateTypeAsset, asset.Code, domain.EventTypeAssetScrapped, map[string]any{
		"asset_code": asset.Code,
		"period":     string(key),
		"cost":       asset.Cost.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	asset.Cost = decimal.Zero
	asset.Status = domain.AssetStatusScrapped
	asset.UpdatedAt = now

	return &ScrapResult{Asset: asset, Transaction: record}, nil
}

// RateChangeStatus is the outcome of one asset in a rate-change fan-out.
type RateChangeStatus string

const (
	RateChangeSucceeded RateChangeStatus = "succeeded"
	RateChangeFailed    RateChangeStatus = "failed"
	RateChangeSkipped   RateChangeStatus = "skipped"
)

// RateChangeOutcome is the result for a single asset.
type RateChangeOutcome struct {
	AssetCode string
	Status    RateChangeStatus
	Entries   int
	Error     string
}

// RateChangeReport summarizes a rate-change fan-out.
type RateChangeReport struct {
	DepreciationCode string
	Period           domain.PeriodKey
	Rate             decimal.Decimal
	Outcomes         []RateChangeOutcome
}

// Count returns the number of outcomes with status.
func (r *RateChangeReport) Count(status RateChangeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// OnPolicyRateChanged regenerates the depreciation tail of every asset on the
// depreciation code from the current period, using the stored policy rate.
// Assets are recalculated independently on a bounded pool; one failing asset
// is logged and reported without stopping the others.
func (uc *ScheduleUseCase) OnPolicyRateChanged(ctx context.Context, depreciationCode string) (*RateChangeReport, error) {
	start := time.Now()

	report, err := uc.fanOutRateChange(ctx, depreciationCode)

	uc.observe("rate_change", start, err)

	return report, err
}

func (uc *ScheduleUseCase) fanOutRateChange(ctx context.Context, depreciationCode string) (*RateChangeReport, error) {
	p, err := uc.policyRepo.GetByCode(ctx, depreciationCode)
	if err != nil {
		return nil, err
	}
	policy := *p
	policy.Configured = true

	current, err := uc.calendar.CurrentPeriod(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := uc.calendar.PeriodsFrom(ctx, current, uc.cfg.MaxYears)
	if err != nil {
		return nil, err
	}

	assets, err := uc.assetRepo.ListByDepreciationCode(ctx, depreciationCode)
	if err != nil {
		return nil, err
	}

	report := &RateChangeReport{
		DepreciationCode: depreciationCode,
		Period:           current.Key(),
		Rate:             policy.Rate,
		Outcomes:         make([]RateChangeOutcome, 0, len(assets)),
	}

	var mu sync.Mutex
	record := func(o RateChangeOutcome) {
		mu.Lock()
		defer mu.Unlock()
		report.Outcomes = append(report.Outcomes, o)
		if uc.metrics != nil {
			uc.metrics.RateChangeAssets.WithLabelValues(string(o.Status)).Inc()
		}
	}

	var g errgroup.Group
	g.SetLimit(uc.cfg.Workers)

	for _, asset := range assets {
		if asset.IsScrapped() {
			record(RateChangeOutcome{AssetCode: asset.Code, Status: RateChangeSkipped})
			continue
		}

		code := asset.Code
		g.Go(func() error {
			var entries int
			err := uc.retry(ctx, func() error {
				var err error
				entries, err = uc.recalculateAsset(ctx, code, policy, current, periods)
				return err
			})

			switch {
			case errors.Is(err, domain.ErrAssetScrapped):
				record(RateChangeOutcome{AssetCode: code, Status: RateChangeSkipped})
			case err != nil:
				uc.logger.Error().
					Err(err).
					Str("asset_code", code).
					Str("depreciation_code", depreciationCode).
					Msg("rate change recalculation failed")
				record(RateChangeOutcome{AssetCode: code, Status: RateChangeFailed, Error: err.Error()})
			default:
				record(RateChangeOutcome{AssetCode: code, Status: RateChangeSucceeded, Entries: entries})
			}

			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(report.Outcomes, func(i, j int) bool {
		return report.Outcomes[i].AssetCode < report.Outcomes[j].AssetCode
	})

	uc.logger.Info().
		Str("depreciation_code", depreciationCode).
		Str("period", string(current.Key())).
		Int("succeeded", report.Count(RateChangeSucceeded)).
		Int("failed", report.Count(RateChangeFailed)).
		Int("skipped", report.Count(RateChangeSkipped)).
		Msg("rate change recalculation finished")

	return report, nil
}

// recalculateAsset replaces one asset's depreciation rows from the current period,
// continuing from the charge already booked before it.
func (uc *ScheduleUseCase) recalculateAsset(ctx context.Context, assetCode string, policy domain.Policy, current domain.Period, periods []domain.Period) (int, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	asset, err := uc.assetRepo.GetByCodeForUpdate(txCtx, tx, assetCode)
	if err != nil {
		return 0, err
	}
	if err := asset.EnsureActive(); err != nil {
		return 0, err
	}

	key := current.Key()

	accumulated, err := uc.depRepo.SumBefore(txCtx, tx, asset.Code, key)
	if err != nil {
		return 0, err
	}

	if err := uc.truncateDepreciation(txCtx, tx, asset.Code, key); err != nil {
		return 0, err
	}

	schedule := GenerateDepreciationSchedule(DepreciationScheduleInput{
		AssetCode:          asset.Code,
		Cost:               asset.Cost,
		OpeningAccumulated: accumulated,
		Start:              EffectiveStart(current, asset.DepreciationStartDate, periods),
		Periods:            periods,
		Policy:             policy,
	})

	if len(schedule.Entries) > 0 {
		if err := uc.depRepo.Insert(txCtx, tx, schedule.Entries); err != nil {
			return 0, err
		}
		uc.countRows("depreciation", len(schedule.Entries))
	}

	if uc.cfg.RateChangeCostFeedback {
		years := make([]int, 0, len(schedule.CostCarry))
		for year := range schedule.CostCarry {
			years = append(years, year)
		}
		sort.Ints(years)

		for _, year := range years {
			cost := schedule.CostCarry[year].Round(domain.LedgerPlaces)
			if err := uc.costRepo.UpdateYear(txCtx, tx, asset.Code, year, cost); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return 0, err
	}

	return len(schedule.Entries), nil
}

// regenerate deletes both ledger tails from start and writes the new schedule.
func (uc *ScheduleUseCase) regenerate(ctx context.Context, tx Transaction, asset *domain.Asset, cost decimal.Decimal, start domain.Period, policy domain.Policy) (*ScheduleResult, error) {
	periods, err := uc.calendar.PeriodsFrom(ctx, start, uc.cfg.MaxYears)
	if err != nil {
		return nil, err
	}

	key := start.Key()
	if err := uc.truncateCosts(ctx, tx, asset.Code, key); err != nil {
		return nil, err
	}
	if err := uc.truncateDepreciation(ctx, tx, asset.Code, key); err != nil {
		return nil, err
	}

	costs := GenerateCostSchedule(CostScheduleInput{
		AssetCode: asset.Code,
		Cost:      cost,
		Start:     start,
		Periods:   periods,
		Policy:    policy,
	})

	schedule := GenerateDepreciationSchedule(DepreciationScheduleInput{
		AssetCode: asset.Code,
		Cost:      cost,
		Start:     EffectiveStart(start, asset.DepreciationStartDate, periods),
		Periods:   periods,
		Policy:    policy,
	})

	ApplyCostCarry(costs, schedule.CostCarry)

	if len(costs) > 0 {
		if err := uc.costRepo.Insert(ctx, tx, costs); err != nil {
			return nil, fmt.Errorf("insert cost schedule: %w", err)
		}
		uc.countRows("cost", len(costs))
	}

	if len(schedule.Entries) > 0 {
		if err := uc.depRepo.Insert(ctx, tx, schedule.Entries); err != nil {
			return nil, fmt.Errorf("insert depreciation schedule: %w", err)
		}
		uc.countRows("depreciation", len(schedule.Entries))
	}

	return &ScheduleResult{
		AssetCode:           asset.Code,
		StartPeriod:         key,
		Policy:              policy,
		CostEntries:         len(costs),
		DepreciationEntries: len(schedule.Entries),
	}, nil
}

// truncateCosts removes cost rows after the last row strictly before period.
func (uc *ScheduleUseCase) truncateCosts(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) error {
	ordinal, err := uc.costRepo.LastOrdinalBefore(ctx, tx, assetCode, period)
	if err != nil {
		return err
	}
	if _, err := uc.costRepo.DeleteAfterOrdinal(ctx, tx, assetCode, ordinal); err != nil {
		return fmt.Errorf("delete cost tail: %w", err)
	}
	return nil
}

// truncateDepreciation removes depreciation rows after the last row strictly before period.
func (uc *ScheduleUseCase) truncateDepreciation(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) error {
	ordinal, err := uc.depRepo.LastOrdinalBefore(ctx, tx, assetCode, period)
	if err != nil {
		return err
	}
	if _, err := uc.depRepo.DeleteAfterOrdinal(ctx, tx, assetCode, ordinal); err != nil {
		return fmt.Errorf("delete depreciation tail: %w", err)
	}
	return nil
}

func (uc *ScheduleUseCase) setCost(ctx context.Context, tx Transaction, assetCode string, cost decimal.Decimal, at time.Time) error {
	rows, err := uc.assetRepo.SetCost(ctx, tx, assetCode, cost, at)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (uc *ScheduleUseCase) newTransaction(assetCode string, period domain.PeriodKey, txType domain.TransactionType, amount, cost decimal.Decimal) *domain.Transaction {
	now := uc.clock()
	return &domain.Transaction{
		ID:        uc.idGen.Generate(),
		AssetCode: assetCode,
		Period:    period,
		Type:      txType,
		Date:      now,
		Amount:    amount,
		Cost:      cost,
		CreatedAt: now,
	}
}

func (uc *ScheduleUseCase) appendTransaction(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey, txType domain.TransactionType, amount, cost decimal.Decimal) error {
	return uc.txLogRepo.Append(ctx, tx, uc.newTransaction(assetCode, period, txType, amount, cost))
}

func (uc *ScheduleUseCase) emit(ctx context.Context, tx Transaction, aggregateType, aggregateID, eventType string, payload map[string]any) error {
	if uc.outboxRepo == nil {
		return nil
	}
	event := domain.NewOutboxEvent(uc.idGen.Generate(), aggregateType, aggregateID, eventType, payload, uc.clock())
	return uc.outboxRepo.Create(ctx, tx, event)
}

func (uc *ScheduleUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *ScheduleUseCase) countRows(ledger string, n int) {
	if uc.metrics != nil {
		uc.metrics.LedgerRowsWritten.WithLabelValues(ledger).Add(float64(n))
	}
}

func (uc *ScheduleUseCase) observe(operation string, start time.Time, err error) {
	if uc.metrics == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	uc.metrics.ScheduleOperations.WithLabelValues(operation, status).Inc()
	uc.metrics.ScheduleDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
