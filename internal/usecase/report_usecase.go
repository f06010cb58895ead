package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

// ReportUseCase serves read-only views of the ledgers.
type ReportUseCase struct {
	assetRepo AssetRepository
	costRepo  CostRepository
	depRepo   DepreciationRepository
	txLogRepo TransactionLogRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(
	assetRepo AssetRepository,
	costRepo CostRepository,
	depRepo DepreciationRepository,
	txLogRepo TransactionLogRepository,
) *ReportUseCase {
	return &ReportUseCase{
		assetRepo: assetRepo,
		costRepo:  costRepo,
		depRepo:   depRepo,
		txLogRepo: txLogRepo,
	}
}

// CostHistory returns the asset's cost ledger in period order. A non-nil
// range limits it to the periods inside the range.
func (uc *ReportUseCase) CostHistory(ctx context.Context, assetCode string, r *domain.PeriodRange) ([]domain.CostEntry, error) {
	if _, err := uc.assetRepo.GetByCode(ctx, assetCode); err != nil {
		return nil, err
	}

	if r == nil {
		return uc.costRepo.History(ctx, assetCode)
	}

	if err := validateRange(*r); err != nil {
		return nil, err
	}

	return uc.costRepo.Range(ctx, assetCode, *r)
}

// DepreciationHistory returns the asset's depreciation ledger in period order.
func (uc *ReportUseCase) DepreciationHistory(ctx context.Context, assetCode string, r *domain.PeriodRange) ([]domain.DepreciationEntry, error) {
	if _, err := uc.assetRepo.GetByCode(ctx, assetCode); err != nil {
		return nil, err
	}

	if r == nil {
		return uc.depRepo.History(ctx, assetCode)
	}

	if err := validateRange(*r); err != nil {
		return nil, err
	}

	return uc.depRepo.Range(ctx, assetCode, *r)
}

// AssetCostPeriods lists the periods present in the asset's cost ledger in
// display form ("JAN-2025").
func (uc *ReportUseCase) AssetCostPeriods(ctx context.Context, assetCode string) ([]string, error) {
	entries, err := uc.CostHistory(ctx, assetCode, nil)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Period.Display())
	}

	return out, nil
}

// Transactions returns the asset's lifecycle log.
func (uc *ReportUseCase) Transactions(ctx context.Context, assetCode string) ([]*domain.Transaction, error) {
	if _, err := uc.assetRepo.GetByCode(ctx, assetCode); err != nil {
		return nil, err
	}
	return uc.txLogRepo.ListByAsset(ctx, assetCode)
}

// BookValue is the asset's carrying amount at the end of a year.
type BookValue struct {
	AssetCode string
	Year      int
	Period    domain.PeriodKey
	Value     decimal.Decimal
}

// BookValueAtYearEnd returns the book value of the last depreciation row of year.
// Assets that never depreciated that year fall back to the cost ledger.
func (uc *ReportUseCase) BookValueAtYearEnd(ctx context.Context, assetCode string, year int) (*BookValue, error) {
	if _, err := uc.assetRepo.GetByCode(ctx, assetCode); err != nil {
		return nil, err
	}

	dep, err := uc.depRepo.LastOfYear(ctx, assetCode, year)
	if err != nil && !errors.Is(err, domain.ErrPeriodNotFound) {
		return nil, err
	}
	if dep != nil {
		return &BookValue{AssetCode: assetCode, Year: year, Period: dep.Period, Value: dep.BookValue}, nil
	}

	cost, err := uc.costRepo.LastOfYear(ctx, assetCode, year)
	if err != nil {
		return nil, err
	}
	if cost == nil {
		return nil, fmt.Errorf("%w: no ledger rows in %d", domain.ErrPeriodNotFound, year)
	}

	return &BookValue{AssetCode: assetCode, Year: year, Period: cost.Period, Value: cost.Cost}, nil
}

// TotalDepreciation sums depreciation amounts across assets.
func (uc *ReportUseCase) TotalDepreciation(ctx context.Context, filter domain.DepreciationTotalFilter) (decimal.Decimal, error) {
	if filter.Range != nil {
		if err := validateRange(*filter.Range); err != nil {
			return decimal.Zero, err
		}
	}
	return uc.depRepo.Total(ctx, filter)
}

func validateRange(r domain.PeriodRange) error {
	if !r.From.Valid() || !r.To.Valid() {
		return domain.ErrInvalidPeriodKey
	}
	if r.From.Compare(r.To) > 0 {
		return domain.ErrInvalidDateRange
	}
	return nil
}
