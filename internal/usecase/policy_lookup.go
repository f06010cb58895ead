package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
)

// PolicyLookup resolves the depreciation method and rate of an asset group.
type PolicyLookup struct {
	policyRepo PolicyRepository
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewPolicyLookup creates a new PolicyLookup.
func NewPolicyLookup(policyRepo PolicyRepository, logger zerolog.Logger, m *metrics.Metrics) *PolicyLookup {
	return &PolicyLookup{
		policyRepo: policyRepo,
		logger:     logger,
		metrics:    m,
	}
}

// MethodAndRateFor resolves group -> depreciation code -> policy. A group without
// a policy yields the unconfigured fallback (equal installments, rate 0), not an error.
func (l *PolicyLookup) MethodAndRateFor(ctx context.Context, groupCode string) (domain.Policy, error) {
	p, err := l.policyRepo.GetByGroup(ctx, groupCode)
	if err != nil && !errors.Is(err, domain.ErrPolicyNotConfigured) {
		return domain.Policy{}, err
	}

	if p == nil {
		l.logger.Warn().
			Str("group_code", groupCode).
			Msg("no depreciation policy configured for group, schedule will not depreciate")
		if l.metrics != nil {
			l.metrics.PolicyFallbacks.Inc()
		}
		return domain.UnconfiguredPolicy(), nil
	}

	policy := *p
	policy.Configured = true

	return policy, nil
}
