package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/dto"
	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// PolicyService defines the behavior needed by PolicyHandler.
type PolicyService interface {
	CreatePolicy(ctx context.Context, input usecase.CreatePolicyInput) (*domain.Policy, error)
	GetPolicy(ctx context.Context, code string) (*domain.Policy, error)
	ListPolicies(ctx context.Context) ([]*domain.Policy, error)
	ChangeRate(ctx context.Context, input usecase.ChangeRateInput) (*usecase.ChangeRateResult, error)
}

// PolicyHandler handles depreciation policy HTTP requests.
type PolicyHandler struct {
	policyUC PolicyService
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policyUC PolicyService) *PolicyHandler {
	return &PolicyHandler{policyUC: policyUC}
}

// Create adds a depreciation code.
func (h *PolicyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePolicyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid policy", err)
		return
	}

	policy, err := h.policyUC.CreatePolicy(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create policy", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PolicyFromDomain(policy))
}

// Get retrieves a depreciation code.
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	policy, err := h.policyUC.GetPolicy(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, "failed to get policy", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PolicyFromDomain(policy))
}

// List lists depreciation codes.
func (h *PolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policyUC.ListPolicies(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list policies", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPoliciesResponse{Policies: dto.PoliciesFromDomain(policies)})
}

// ChangeRate sets a new rate and recalculates affected assets.
func (h *PolicyHandler) ChangeRate(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeRateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, "invalid rate", err)
		return
	}

	result, err := h.policyUC.ChangeRate(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to change rate", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChangeRateFromResult(result))
}
