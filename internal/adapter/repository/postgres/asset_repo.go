package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// AssetRepository implements usecase.AssetRepository.
type AssetRepository struct {
	queries *generated.Queries
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return newAssetRepository(pool)
}

func newAssetRepository(db generated.DBTX) *AssetRepository {
	return &AssetRepository{queries: generated.New(db)}
}

// Create inserts a new asset within a transaction.
func (r *AssetRepository) Create(ctx context.Context, tx usecase.Transaction, asset *domain.Asset) error {
	err := txQueries(tx).CreateAsset(ctx, generated.CreateAssetParams{
		Code:                  asset.Code,
		Description:           asset.Description,
		GroupCode:             asset.GroupCode,
		CategoryCode:          asset.CategoryCode,
		Department:            asset.Department,
		Location:              asset.Location,
		TrackingCode:          asset.TrackingCode,
		SerialNumber:          asset.SerialNumber,
		PurchaseDate:          timeToPgDate(asset.PurchaseDate),
		DepreciationStartDate: timeToPgDate(asset.DepreciationStartDate),
		PurchaseAmount:        decimalToNumeric(asset.PurchaseAmount),
		Cost:                  decimalToNumeric(asset.Cost),
		Status:                string(asset.Status),
		CreatedAt:             timeToPgTimestamptz(asset.CreatedAt),
		UpdatedAt:             timeToPgTimestamptz(asset.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrAssetExists
	}

	return err
}

// GetByCode retrieves an asset by code.
func (r *AssetRepository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	row, err := r.queries.GetAssetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}

		return nil, err
	}

	return rowToAsset(row), nil
}

// GetByCodeForUpdate retrieves an asset with a FOR UPDATE lock. The lock
// serializes schedule operations on the same asset.
func (r *AssetRepository) GetByCodeForUpdate(ctx context.Context, tx usecase.Transaction, code string) (*domain.Asset, error) {
	row, err := txQueries(tx).GetAssetByCodeForUpdate(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}

		return nil, err
	}

	return rowToAsset(row), nil
}

// List returns a page of assets ordered by code.
func (r *AssetRepository) List(ctx context.Context, limit, offset int) ([]*domain.Asset, error) {
	rows, err := r.queries.ListAssets(ctx, generated.ListAssetsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToAssets(rows), nil
}

// ListByDepreciationCode returns every asset whose group maps to depreciationCode.
func (r *AssetRepository) ListByDepreciationCode(ctx context.Context, depreciationCode string) ([]*domain.Asset, error) {
	rows, err := r.queries.ListAssetsByDepreciationCode(ctx, textOrNull(depreciationCode))
	if err != nil {
		return nil, err
	}

	return rowsToAssets(rows), nil
}

// SetCost updates the carrying cost and returns the affected row count.
func (r *AssetRepository) SetCost(ctx context.Context, tx usecase.Transaction, code string, cost decimal.Decimal, updatedAt time.Time) (int64, error) {
	return txQueries(tx).UpdateAssetCost(ctx, generated.UpdateAssetCostParams{
		Code:      code,
		Cost:      decimalToNumeric(cost),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// SetStatus updates the lifecycle status.
func (r *AssetRepository) SetStatus(ctx context.Context, tx usecase.Transaction, code string, status domain.AssetStatus, updatedAt time.Time) error {
	n, err := txQueries(tx).UpdateAssetStatus(ctx, generated.UpdateAssetStatusParams{
		Code:      code,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAssetNotFound
	}

	return nil
}

func rowsToAssets(rows []generated.Asset) []*domain.Asset {
	assets := make([]*domain.Asset, 0, len(rows))
	for _, row := range rows {
		assets = append(assets, rowToAsset(row))
	}
	return assets
}

func rowToAsset(row generated.Asset) *domain.Asset {
	return &domain.Asset{
		Code:                  row.Code,
		Description:           row.Description,
		GroupCode:             row.GroupCode,
		CategoryCode:          row.CategoryCode,
		Department:            row.Department,
		Location:              row.Location,
		TrackingCode:          row.TrackingCode,
		SerialNumber:          row.SerialNumber,
		PurchaseDate:          pgDateToTime(row.PurchaseDate),
		DepreciationStartDate: pgDateToTime(row.DepreciationStartDate),
		PurchaseAmount:        numericToDecimal(row.PurchaseAmount),
		Cost:                  numericToDecimal(row.Cost),
		Status:                domain.AssetStatus(row.Status),
		CreatedAt:             row.CreatedAt.Time,
		UpdatedAt:             row.UpdatedAt.Time,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}
