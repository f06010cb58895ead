package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
)

// PolicyUseCase handles depreciation policy business logic.
type PolicyUseCase struct {
	txManager  TransactionManager
	policyRepo PolicyRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	scheduler  Scheduler
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewPolicyUseCase creates a new PolicyUseCase.
func NewPolicyUseCase(
	txManager TransactionManager,
	policyRepo PolicyRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	scheduler Scheduler,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *PolicyUseCase {
	return &PolicyUseCase{
		txManager:  txManager,
		policyRepo: policyRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		scheduler:  scheduler,
		logger:     logger,
		metrics:    m,
	}
}

// CreatePolicyInput represents input for creating a depreciation policy.
type CreatePolicyInput struct {
	Code        string
	Description string
	Method      string
	Rate        decimal.Decimal
	TaxMethod   string
	TaxRate     decimal.Decimal
}

// CreatePolicy creates a depreciation policy.
func (uc *PolicyUseCase) CreatePolicy(ctx context.Context, input CreatePolicyInput) (*domain.Policy, error) {
	method, err := domain.ParseMethod(input.Method)
	if err != nil {
		return nil, err
	}

	taxMethod, err := domain.ParseMethod(input.TaxMethod)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateRate(input.TaxRate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	policy := &domain.Policy{
		Code:        strings.TrimSpace(input.Code),
		Description: input.Description,
		Method:      method,
		Rate:        input.Rate,
		TaxMethod:   taxMethod,
		TaxRate:     input.TaxRate,
		Configured:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := uc.policyRepo.Create(ctx, tx, policy); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return policy, nil
}

// GetPolicy retrieves a depreciation policy by code.
func (uc *PolicyUseCase) GetPolicy(ctx context.Context, code string) (*domain.Policy, error) {
	policy, err := uc.policyRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	policy.Configured = true
	return policy, nil
}

// ListPolicies lists all depreciation policies.
func (uc *PolicyUseCase) ListPolicies(ctx context.Context) ([]*domain.Policy, error) {
	return uc.policyRepo.List(ctx)
}

// ChangeRateInput represents input for changing a policy rate.
type ChangeRateInput struct {
	Code string
	Rate decimal.Decimal
}

// ChangeRateResult is the outcome of a rate change. Report is nil when the rate
// did not change.
type ChangeRateResult struct {
	Policy       *domain.Policy
	PreviousRate decimal.Decimal
	Report       *RateChangeReport
}

// ChangeRate stores the new rate and then recalculates every asset on the code
// from the current period. The stored rate stays even when recalculation fails.
func (uc *PolicyUseCase) ChangeRate(ctx context.Context, input ChangeRateInput) (*ChangeRateResult, error) {
	if err := domain.ValidateRate(input.Rate); err != nil {
		return nil, err
	}

	policy, previous, err := uc.updateRate(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &ChangeRateResult{Policy: policy, PreviousRate: previous}

	if previous.Equal(input.Rate) {
		return result, nil
	}

	if uc.metrics != nil {
		uc.metrics.PolicyRateChanges.Inc()
	}

	report, err := uc.scheduler.OnPolicyRateChanged(ctx, policy.Code)
	if err != nil {
		uc.logger.Error().
			Err(err).
			Str("depreciation_code", policy.Code).
			Msg("rate stored but asset recalculation failed")
		return result, nil
	}

	result.Report = report

	return result, nil
}

func (uc *PolicyUseCase) updateRate(ctx context.Context, input ChangeRateInput) (*domain.Policy, decimal.Decimal, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	policy, err := uc.policyRepo.GetByCodeForUpdate(txCtx, tx, input.Code)
	if err != nil {
		return nil, decimal.Zero, err
	}

	previous := policy.Rate
	if previous.Equal(input.Rate) {
		policy.Configured = true
		return policy, previous, nil
	}

	now := time.Now().UTC()
	if err := uc.policyRepo.UpdateRate(txCtx, tx, policy.Code, input.Rate, now); err != nil {
		return nil, decimal.Zero, err
	}

	if uc.outboxRepo != nil {
		event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypePolicy, policy.Code, domain.EventTypePolicyRateChanged, map[string]any{
			"depreciation_code": policy.Code,
			"previous_rate":     previous.String(),
			"rate":              input.Rate.String(),
		}, now)
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return nil, decimal.Zero, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, decimal.Zero, err
	}

	policy.Rate = input.Rate
	policy.UpdatedAt = now
	policy.Configured = true

	return policy, previous, nil
}
