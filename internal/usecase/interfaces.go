package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

// PeriodRepository reads accounting periods. The engine never writes them.
type PeriodRepository interface {
	GetCurrent(ctx context.Context) (*domain.Period, error)
	GetByYear(ctx context.Context, year int) ([]domain.Period, error)
	GetByKey(ctx context.Context, number, year int) (*domain.Period, error)
}

// AssetRepository defines data access for assets.
type AssetRepository interface {
	Create(ctx context.Context, tx Transaction, asset *domain.Asset) error
	GetByCode(ctx context.Context, code string) (*domain.Asset, error)
	GetByCodeForUpdate(ctx context.Context, tx Transaction, code string) (*domain.Asset, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Asset, error)
	ListByDepreciationCode(ctx context.Context, depreciationCode string) ([]*domain.Asset, error)
	SetCost(ctx context.Context, tx Transaction, code string, cost decimal.Decimal, updatedAt time.Time) (int64, error)
	SetStatus(ctx context.Context, tx Transaction, code string, status domain.AssetStatus, updatedAt time.Time) error
}

// PolicyRepository defines data access for depreciation policies.
type PolicyRepository interface {
	Create(ctx context.Context, tx Transaction, policy *domain.Policy) error
	GetByCode(ctx context.Context, code string) (*domain.Policy, error)
	GetByCodeForUpdate(ctx context.Context, tx Transaction, code string) (*domain.Policy, error)
	// GetByGroup resolves asset group -> depreciation code -> policy.
	// Returns domain.ErrPolicyNotConfigured when the chain is broken.
	GetByGroup(ctx context.Context, groupCode string) (*domain.Policy, error)
	List(ctx context.Context) ([]*domain.Policy, error)
	UpdateRate(ctx context.Context, tx Transaction, code string, rate decimal.Decimal, updatedAt time.Time) error
}

// CostRepository defines data access for the cost ledger.
type CostRepository interface {
	// Insert writes entries in slice order.
	Insert(ctx context.Context, tx Transaction, entries []domain.CostEntry) error
	// LastOrdinalBefore returns the highest row id strictly before period, or 0.
	LastOrdinalBefore(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) (int64, error)
	DeleteAfterOrdinal(ctx context.Context, tx Transaction, assetCode string, ordinal int64) (int64, error)
	ZeroFrom(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) (int64, error)
	UpdateYear(ctx context.Context, tx Transaction, assetCode string, year int, cost decimal.Decimal) error
	History(ctx context.Context, assetCode string) ([]domain.CostEntry, error)
	Range(ctx context.Context, assetCode string, r domain.PeriodRange) ([]domain.CostEntry, error)
	LastOfYear(ctx context.Context, assetCode string, year int) (*domain.CostEntry, error)
}

// DepreciationRepository defines data access for the depreciation ledger.
type DepreciationRepository interface {
	Insert(ctx context.Context, tx Transaction, entries []domain.DepreciationEntry) error
	LastOrdinalBefore(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) (int64, error)
	DeleteAfterOrdinal(ctx context.Context, tx Transaction, assetCode string, ordinal int64) (int64, error)
	SumBefore(ctx context.Context, tx Transaction, assetCode string, period domain.PeriodKey) (decimal.Decimal, error)
	History(ctx context.Context, assetCode string) ([]domain.DepreciationEntry, error)
	Range(ctx context.Context, assetCode string, r domain.PeriodRange) ([]domain.DepreciationEntry, error)
	LastOfYear(ctx context.Context, assetCode string, year int) (*domain.DepreciationEntry, error)
	Total(ctx context.Context, filter domain.DepreciationTotalFilter) (decimal.Decimal, error)
}

// TransactionLogRepository defines access to the append-only lifecycle log.
type TransactionLogRepository interface {
	Append(ctx context.Context, tx Transaction, record *domain.Transaction) error
	ExistsByType(ctx context.Context, tx Transaction, assetCode string, txType domain.TransactionType) (bool, error)
	ListByAsset(ctx context.Context, assetCode string) ([]*domain.Transaction, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Scheduler is the schedule side of the asset lifecycle, implemented by ScheduleUseCase.
type Scheduler interface {
	OnAssetCreated(ctx context.Context, assetCode string) (*ScheduleResult, error)
	OnAssetRevalued(ctx context.Context, input RevalueAssetInput) (*RevaluationResult, error)
	OnAssetScrapped(ctx context.Context, input ScrapAssetInput) (*ScrapResult, error)
	OnPolicyRateChanged(ctx context.Context, depreciationCode string) (*RateChangeReport, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key whose request failed so a retry can run again.
	Release(ctx context.Context, key string) error
}
