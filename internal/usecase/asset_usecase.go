package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
)

// AssetUseCase handles asset business logic.
type AssetUseCase struct {
	txManager  TransactionManager
	assetRepo  AssetRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	scheduler  Scheduler
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewAssetUseCase creates a new AssetUseCase.
func NewAssetUseCase(
	txManager TransactionManager,
	assetRepo AssetRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	scheduler Scheduler,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *AssetUseCase {
	return &AssetUseCase{
		txManager:  txManager,
		assetRepo:  assetRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		scheduler:  scheduler,
		logger:     logger,
		metrics:    m,
	}
}

// CreateAssetInput represents input for registering an asset.
type CreateAssetInput struct {
	Code                  string
	Description           string
	GroupCode             string
	CategoryCode          string
	Department            string
	Location              string
	TrackingCode          string
	SerialNumber          string
	PurchaseDate          time.Time
	DepreciationStartDate time.Time
	PurchaseAmount        decimal.Decimal
}

// CreateAssetResult is the outcome of registering an asset. ScheduleWarning is set
// when the asset was stored but its schedule could not be generated.
type CreateAssetResult struct {
	Asset           *domain.Asset
	Schedule        *ScheduleResult
	ScheduleWarning error
}

// CreateAsset stores the asset and then generates its schedule. A failing
// schedule does not undo the asset; it is reported as a warning and can be
// retried with RegenerateSchedule.
func (uc *AssetUseCase) CreateAsset(ctx context.Context, input CreateAssetInput) (*CreateAssetResult, error) {
	now := time.Now().UTC()

	depStart := input.DepreciationStartDate
	if depStart.IsZero() {
		depStart = input.PurchaseDate
	}

	asset := &domain.Asset{
		Code:                  strings.TrimSpace(input.Code),
		Description:           input.Description,
		GroupCode:             strings.TrimSpace(input.GroupCode),
		CategoryCode:          input.CategoryCode,
		Department:            input.Department,
		Location:              input.Location,
		TrackingCode:          input.TrackingCode,
		SerialNumber:          input.SerialNumber,
		PurchaseDate:          input.PurchaseDate,
		DepreciationStartDate: depStart,
		PurchaseAmount:        input.PurchaseAmount,
		Cost:                  input.PurchaseAmount,
		Status:                domain.AssetStatusActive,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := uc.store(ctx, asset); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AssetsCreated.Inc()
	}

	result := &CreateAssetResult{Asset: asset}

	schedule, err := uc.scheduler.OnAssetCreated(ctx, asset.Code)
	if err != nil {
		uc.logger.Warn().
			Err(err).
			Str("asset_code", asset.Code).
			Msg("asset saved but schedule generation failed")
		if uc.metrics != nil {
			uc.metrics.ScheduleWarnings.Inc()
		}
		result.ScheduleWarning = fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
		return result, nil
	}

	result.Schedule = schedule

	return result, nil
}

func (uc *AssetUseCase) store(ctx context.Context, asset *domain.Asset) error {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.assetRepo.Create(txCtx, tx, asset); err != nil {
		return err
	}

	if uc.outboxRepo != nil {
		event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeAsset, asset.Code, domain.EventTypeAssetCreated, map[string]any{
			"asset_code":      asset.Code,
			"group_code":      asset.GroupCode,
			"purchase_amount": asset.PurchaseAmount.String(),
		}, asset.CreatedAt)
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return err
		}
	}

	return tx.Commit(txCtx)
}

// GetAsset retrieves an asset by code.
func (uc *AssetUseCase) GetAsset(ctx context.Context, code string) (*domain.Asset, error) {
	return uc.assetRepo.GetByCode(ctx, code)
}

// ListAssetsInput represents input for listing assets.
type ListAssetsInput struct {
	Limit  int
	Offset int
}

// ListAssets lists assets with pagination.
func (uc *AssetUseCase) ListAssets(ctx context.Context, input ListAssetsInput) ([]*domain.Asset, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}
	return uc.assetRepo.List(ctx, limit, offset)
}

// RegenerateSchedule reruns schedule generation from the current period.
func (uc *AssetUseCase) RegenerateSchedule(ctx context.Context, code string) (*ScheduleResult, error) {
	return uc.scheduler.OnAssetCreated(ctx, code)
}

// RevalueAsset changes the asset's cost from the effective period onward.
func (uc *AssetUseCase) RevalueAsset(ctx context.Context, input RevalueAssetInput) (*RevaluationResult, error) {
	return uc.scheduler.OnAssetRevalued(ctx, input)
}

// ScrapAsset retires the asset from the effective period onward.
func (uc *AssetUseCase) ScrapAsset(ctx context.Context, input ScrapAssetInput) (*ScrapResult, error) {
	return uc.scheduler.OnAssetScrapped(ctx, input)
}
