package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// PolicyRepository implements usecase.PolicyRepository.
type PolicyRepository struct {
	queries *generated.Queries
}

// NewPolicyRepository creates a new PolicyRepository.
func NewPolicyRepository(pool *pgxpool.Pool) *PolicyRepository {
	return newPolicyRepository(pool)
}

func newPolicyRepository(db generated.DBTX) *PolicyRepository {
	return &PolicyRepository{queries: generated.New(db)}
}

// Create inserts a policy within a transaction.
func (r *PolicyRepository) Create(ctx context.Context, tx usecase.Transaction, policy *domain.Policy) error {
	return txQueries(tx).CreatePolicy(ctx, generated.CreatePolicyParams{
		Code:        policy.Code,
		Description: policy.Description,
		Method:      string(policy.Method),
		Rate:        decimalToNumeric(policy.Rate),
		TaxMethod:   string(policy.TaxMethod),
		TaxRate:     decimalToNumeric(policy.TaxRate),
		CreatedAt:   timeToPgTimestamptz(policy.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(policy.UpdatedAt),
	})
}

// GetByCode retrieves a policy by depreciation code.
func (r *PolicyRepository) GetByCode(ctx context.Context, code string) (*domain.Policy, error) {
	row, err := r.queries.GetPolicyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPolicyNotFound
		}

		return nil, err
	}

	return rowToPolicy(row), nil
}

// GetByCodeForUpdate retrieves a policy with a FOR UPDATE lock.
func (r *PolicyRepository) GetByCodeForUpdate(ctx context.Context, tx usecase.Transaction, code string) (*domain.Policy, error) {
	row, err := txQueries(tx).GetPolicyByCodeForUpdate(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPolicyNotFound
		}

		return nil, err
	}

	return rowToPolicy(row), nil
}

// GetByGroup follows asset group -> depreciation code -> policy.
func (r *PolicyRepository) GetByGroup(ctx context.Context, groupCode string) (*domain.Policy, error) {
	row, err := r.queries.GetPolicyByGroup(ctx, groupCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPolicyNotConfigured
		}

		return nil, err
	}

	return rowToPolicy(row), nil
}

// List returns all policies ordered by code.
func (r *PolicyRepository) List(ctx context.Context) ([]*domain.Policy, error) {
	rows, err := r.queries.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	policies := make([]*domain.Policy, 0, len(rows))
	for _, row := range rows {
		policies = append(policies, rowToPolicy(row))
	}

	return policies, nil
}

// UpdateRate sets a new book rate.
func (r *PolicyRepository) UpdateRate(ctx context.Context, tx usecase.Transaction, code string, rate decimal.Decimal, updatedAt time.Time) error {
	n, err := txQueries(tx).UpdatePolicyRate(ctx, generated.UpdatePolicyRateParams{
		Code:      code,
		Rate:      decimalToNumeric(rate),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPolicyNotFound
	}

	return nil
}

func rowToPolicy(row generated.DepreciationPolicy) *domain.Policy {
	return &domain.Policy{
		Code:        row.Code,
		Description: row.Description,
		Method:      domain.Method(row.Method),
		Rate:        numericToDecimal(row.Rate),
		TaxMethod:   domain.Method(row.TaxMethod),
		TaxRate:     numericToDecimal(row.TaxRate),
		Configured:  true,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
