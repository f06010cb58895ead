package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/dto"
	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// AssetService defines the behavior needed by AssetHandler.
type AssetService interface {
	CreateAsset(ctx context.Context, input usecase.CreateAssetInput) (*usecase.CreateAssetResult, error)
	GetAsset(ctx context.Context, code string) (*domain.Asset, error)
	ListAssets(ctx context.Context, input usecase.ListAssetsInput) ([]*domain.Asset, error)
	RegenerateSchedule(ctx context.Context, code string) (*usecase.ScheduleResult, error)
	RevalueAsset(ctx context.Context, input usecase.RevalueAssetInput) (*usecase.RevaluationResult, error)
	ScrapAsset(ctx context.Context, input usecase.ScrapAssetInput) (*usecase.ScrapResult, error)
}

// AssetHandler handles asset lifecycle HTTP requests.
type AssetHandler struct {
	assetUC AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetUC AssetService) *AssetHandler {
	return &AssetHandler{assetUC: assetUC}
}

// Create registers an asset and generates its schedule.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid asset", err)
		return
	}

	result, err := h.assetUC.CreateAsset(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create asset", err)
		return
	}

	resp := dto.CreateAssetResponse{
		Asset:    dto.AssetFromDomain(result.Asset),
		Schedule: dto.ScheduleFromResult(result.Schedule),
	}
	if result.ScheduleWarning != nil {
		resp.Warning = result.ScheduleWarning.Error()
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get retrieves an asset by code.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing asset code", "")
		return
	}

	asset, err := h.assetUC.GetAsset(r.Context(), code)
	if err != nil {
		writeDomainError(w, "failed to get asset", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetFromDomain(asset))
}

// List lists assets.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	assets, err := h.assetUC.ListAssets(r.Context(), usecase.ListAssetsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, "failed to list assets", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAssetsResponse{
		Assets: dto.AssetsFromDomain(assets),
		Total:  int64(len(assets)),
	})
}

// Schedule reruns schedule generation from the current period.
func (h *AssetHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.assetUC.RegenerateSchedule(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, "failed to generate schedule", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ScheduleFromResult(result))
}

// Revalue changes an asset's cost from an effective period.
func (h *AssetHandler) Revalue(w http.ResponseWriter, r *http.Request) {
	var req dto.RevalueAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, "invalid revaluation", err)
		return
	}

	result, err := h.assetUC.RevalueAsset(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to revalue asset", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RevaluationResponse{
		Asset:       dto.AssetFromDomain(result.Asset),
		Transaction: dto.TransactionFromDomain(result.Transaction),
		Schedule:    dto.ScheduleFromResult(result.Schedule),
	})
}

// Scrap closes an asset's ledgers at an effective period.
func (h *AssetHandler) Scrap(w http.ResponseWriter, r *http.Request) {
	var req dto.ScrapAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, "invalid scrap request", err)
		return
	}

	result, err := h.assetUC.ScrapAsset(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to scrap asset", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ScrapResponse{
		Asset:       dto.AssetFromDomain(result.Asset),
		Transaction: dto.TransactionFromDomain(result.Transaction),
	})
}
