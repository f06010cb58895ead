package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase/mocks"
)

func TestPolicyUseCase_CreatePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPolicyRepository(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx usecase.Transaction, p *domain.Policy) error {
			if p.Method != domain.MethodReducingBalance || !p.Rate.Equal(dec("25")) {
				t.Fatalf("unexpected policy %+v", p)
			}
			return nil
		})

	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), repo, nil, mocks.NewMockIDGenerator(), scheduler, zerolog.Nop(), nil)

	policy, err := uc.CreatePolicy(context.Background(), usecase.CreatePolicyInput{
		Code:   "VEH",
		Method: "Reducing Balance",
		Rate:   dec("25"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !policy.Configured || policy.TaxMethod != domain.MethodEqualInstallments {
		t.Fatalf("unexpected policy %+v", policy)
	}
}

func TestPolicyUseCase_CreatePolicy_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), mocks.NewMockPolicyRepository(ctrl), nil, mocks.NewMockIDGenerator(), mocks.NewMockScheduler(ctrl), zerolog.Nop(), nil)

	tests := []struct {
		name    string
		input   usecase.CreatePolicyInput
		wantErr error
	}{
		{"bad method", usecase.CreatePolicyInput{Code: "X", Method: "sum_of_digits", Rate: dec("10")}, domain.ErrInvalidMethod},
		{"rate above 100", usecase.CreatePolicyInput{Code: "X", Rate: dec("150")}, domain.ErrInvalidRate},
		{"empty code", usecase.CreatePolicyInput{Rate: dec("10")}, domain.ErrInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreatePolicy(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPolicyUseCase_ChangeRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPolicyRepository(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)
	outbox := mocks.NewMockOutboxRepository()

	repo.EXPECT().GetByCodeForUpdate(gomock.Any(), gomock.Any(), "D1").Return(&domain.Policy{Code: "D1", Method: domain.MethodEqualInstallments, Rate: dec("10")}, nil)
	repo.EXPECT().UpdateRate(gomock.Any(), gomock.Any(), "D1", dec("20"), gomock.Any()).Return(nil)
	scheduler.EXPECT().OnPolicyRateChanged(gomock.Any(), "D1").Return(&usecase.RateChangeReport{DepreciationCode: "D1"}, nil)

	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), repo, outbox, mocks.NewMockIDGenerator(), scheduler, zerolog.Nop(), nil)

	result, err := uc.ChangeRate(context.Background(), usecase.ChangeRateInput{Code: "D1", Rate: dec("20")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.PreviousRate.Equal(dec("10")) || !result.Policy.Rate.Equal(dec("20")) || result.Report == nil {
		t.Fatalf("unexpected result %+v", result)
	}
	if types := outbox.EventTypes(); len(types) != 1 || types[0] != domain.EventTypePolicyRateChanged {
		t.Fatalf("expected rate change event, got %v", types)
	}
}

func TestPolicyUseCase_ChangeRate_Unchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPolicyRepository(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)

	repo.EXPECT().GetByCodeForUpdate(gomock.Any(), gomock.Any(), "D1").Return(&domain.Policy{Code: "D1", Rate: dec("10")}, nil)
	repo.EXPECT().UpdateRate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	scheduler.EXPECT().OnPolicyRateChanged(gomock.Any(), gomock.Any()).Times(0)

	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), repo, nil, mocks.NewMockIDGenerator(), scheduler, zerolog.Nop(), nil)

	result, err := uc.ChangeRate(context.Background(), usecase.ChangeRateInput{Code: "D1", Rate: dec("10.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Report != nil {
		t.Fatalf("expected no recalculation")
	}
}

func TestPolicyUseCase_ChangeRate_RecalculationFailureKeepsRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPolicyRepository(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)

	repo.EXPECT().GetByCodeForUpdate(gomock.Any(), gomock.Any(), "D1").Return(&domain.Policy{Code: "D1", Rate: dec("10")}, nil)
	repo.EXPECT().UpdateRate(gomock.Any(), gomock.Any(), "D1", gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().OnPolicyRateChanged(gomock.Any(), "D1").Return(nil, domain.ErrNoCurrentPeriod)

	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), repo, nil, mocks.NewMockIDGenerator(), scheduler, zerolog.Nop(), nil)

	result, err := uc.ChangeRate(context.Background(), usecase.ChangeRateInput{Code: "D1", Rate: dec("15")})
	if err != nil {
		t.Fatalf("rate change must succeed when recalculation fails, got %v", err)
	}
	if !result.Policy.Rate.Equal(dec("15")) || result.Report != nil {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestPolicyUseCase_ChangeRate_InvalidRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewPolicyUseCase(mocks.NewMockTransactionManager(), mocks.NewMockPolicyRepository(ctrl), nil, mocks.NewMockIDGenerator(), mocks.NewMockScheduler(ctrl), zerolog.Nop(), nil)

	if _, err := uc.ChangeRate(context.Background(), usecase.ChangeRateInput{Code: "D1", Rate: dec("-5")}); !errors.Is(err, domain.ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}
