package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// CostRepository implements usecase.CostRepository on the asset_costs table.
// Row ids are the ledger ordinal: rows are always inserted in period order.
type CostRepository struct {
	queries *generated.Queries
}

// NewCostRepository creates a new CostRepository.
func NewCostRepository(pool *pgxpool.Pool) *CostRepository {
	return newCostRepository(pool)
}

func newCostRepository(db generated.DBTX) *CostRepository {
	return &CostRepository{queries: generated.New(db)}
}

// Insert bulk-loads entries with COPY, preserving slice order.
func (r *CostRepository) Insert(ctx context.Context, tx usecase.Transaction, entries []domain.CostEntry) error {
	if len(entries) == 0 {
		return nil
	}

	params := make([]generated.InsertCostEntriesParams, 0, len(entries))
	for _, e := range entries {
		year, number := keyParts(e.Period)
		params = append(params, generated.InsertCostEntriesParams{
			AssetCode: e.AssetCode,
			PeriodKey: e.Period.String(),
			PeriodNum: number,
			Year:      year,
			Cost:      decimalToNumeric(e.Cost.Round(domain.LedgerPlaces)),
		})
	}

	_, err := txQueries(tx).InsertCostEntries(ctx, params)
	return err
}

// LastOrdinalBefore returns the highest row id strictly before period, or 0.
func (r *CostRepository) LastOrdinalBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	year, number := keyParts(period)
	return txQueries(tx).LastCostOrdinalBefore(ctx, generated.LastCostOrdinalBeforeParams{
		AssetCode: assetCode,
		Year:      year,
		PeriodNum: number,
	})
}

// DeleteAfterOrdinal removes every row of the asset with id > ordinal.
func (r *CostRepository) DeleteAfterOrdinal(ctx context.Context, tx usecase.Transaction, assetCode string, ordinal int64) (int64, error) {
	return txQueries(tx).DeleteCostsAfterOrdinal(ctx, generated.DeleteCostsAfterOrdinalParams{
		AssetCode: assetCode,
		ID:        ordinal,
	})
}

// ZeroFrom sets cost to zero on rows at or after period.
func (r *CostRepository) ZeroFrom(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	year, number := keyParts(period)
	return txQueries(tx).ZeroCostsFrom(ctx, generated.ZeroCostsFromParams{
		AssetCode: assetCode,
		Year:      year,
		PeriodNum: number,
	})
}

// UpdateYear overwrites the cost of every row in a year.
func (r *CostRepository) UpdateYear(ctx context.Context, tx usecase.Transaction, assetCode string, year int, cost decimal.Decimal) error {
	return txQueries(tx).UpdateCostYear(ctx, generated.UpdateCostYearParams{
		AssetCode: assetCode,
		Year:      int32(year),
		Cost:      decimalToNumeric(cost.Round(domain.LedgerPlaces)),
	})
}

// History returns the asset's cost rows in period order.
func (r *CostRepository) History(ctx context.Context, assetCode string) ([]domain.CostEntry, error) {
	rows, err := r.queries.ListCosts(ctx, assetCode)
	if err != nil {
		return nil, err
	}

	return rowsToCostEntries(rows), nil
}

// Range returns the rows inside the inclusive range.
func (r *CostRepository) Range(ctx context.Context, assetCode string, pr domain.PeriodRange) ([]domain.CostEntry, error) {
	fromYear, fromNum := keyParts(pr.From)
	toYear, toNum := keyParts(pr.To)

	rows, err := r.queries.ListCostsInRange(ctx, generated.ListCostsInRangeParams{
		AssetCode: assetCode,
		FromYear:  fromYear,
		FromNum:   fromNum,
		ToYear:    toYear,
		ToNum:     toNum,
	})
	if err != nil {
		return nil, err
	}

	return rowsToCostEntries(rows), nil
}

// LastOfYear returns the highest-numbered row of the year, or nil.
func (r *CostRepository) LastOfYear(ctx context.Context, assetCode string, year int) (*domain.CostEntry, error) {
	row, err := r.queries.LastCostOfYear(ctx, generated.LastCostOfYearParams{
		AssetCode: assetCode,
		Year:      int32(year),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	e := rowToCostEntry(row)
	return &e, nil
}

func rowsToCostEntries(rows []generated.AssetCost) []domain.CostEntry {
	entries := make([]domain.CostEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToCostEntry(row))
	}
	return entries
}

func rowToCostEntry(row generated.AssetCost) domain.CostEntry {
	return domain.CostEntry{
		ID:        row.ID,
		AssetCode: row.AssetCode,
		Period:    domain.PeriodKey(row.PeriodKey),
		Cost:      numericToDecimal(row.Cost),
	}
}
