package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/dto"
	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// ReportService defines the read side used by ReportHandler.
type ReportService interface {
	CostHistory(ctx context.Context, assetCode string, r *domain.PeriodRange) ([]domain.CostEntry, error)
	DepreciationHistory(ctx context.Context, assetCode string, r *domain.PeriodRange) ([]domain.DepreciationEntry, error)
	AssetCostPeriods(ctx context.Context, assetCode string) ([]string, error)
	Transactions(ctx context.Context, assetCode string) ([]*domain.Transaction, error)
	BookValueAtYearEnd(ctx context.Context, assetCode string, year int) (*usecase.BookValue, error)
	TotalDepreciation(ctx context.Context, filter domain.DepreciationTotalFilter) (decimal.Decimal, error)
}

// ReportHandler serves ledger histories and aggregates.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Costs returns an asset's cost ledger, optionally limited by ?from&to dates.
func (h *ReportHandler) Costs(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rng, err := dto.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeDomainError(w, "invalid date range", err)
		return
	}

	entries, err := h.reportUC.CostHistory(r.Context(), code, rng)
	if err != nil {
		writeDomainError(w, "failed to get cost history", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CostHistoryResponse{
		AssetCode: code,
		Entries:   dto.CostEntriesFromDomain(entries),
	})
}

// Depreciation returns an asset's depreciation ledger, optionally limited by ?from&to dates.
func (h *ReportHandler) Depreciation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rng, err := dto.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeDomainError(w, "invalid date range", err)
		return
	}

	entries, err := h.reportUC.DepreciationHistory(r.Context(), code, rng)
	if err != nil {
		writeDomainError(w, "failed to get depreciation history", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DepreciationHistoryResponse{
		AssetCode: code,
		Entries:   dto.DepreciationEntriesFromDomain(entries),
	})
}

// Periods lists the display periods of an asset's cost ledger.
func (h *ReportHandler) Periods(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	periods, err := h.reportUC.AssetCostPeriods(r.Context(), code)
	if err != nil {
		writeDomainError(w, "failed to list periods", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodsResponse{AssetCode: code, Periods: periods})
}

// Transactions returns an asset's lifecycle log.
func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	records, err := h.reportUC.Transactions(r.Context(), code)
	if err != nil {
		writeDomainError(w, "failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsResponse{
		AssetCode:    code,
		Transactions: dto.TransactionsFromDomain(records),
	})
}

// BookValue returns the book value at the end of ?year.
func (h *ReportHandler) BookValue(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		writeError(w, http.StatusBadRequest, "invalid year", "year must be a positive integer")
		return
	}

	bv, err := h.reportUC.BookValueAtYearEnd(r.Context(), chi.URLParam(r, "code"), year)
	if err != nil {
		writeDomainError(w, "failed to get book value", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BookValueFromResult(bv))
}

// TotalDepreciation sums depreciation charges, filtered by ?category and ?from&to.
func (h *ReportHandler) TotalDepreciation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rng, err := dto.ParseDateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		writeDomainError(w, "invalid date range", err)
		return
	}

	filter := domain.DepreciationTotalFilter{CategoryCode: q.Get("category"), Range: rng}

	total, err := h.reportUC.TotalDepreciation(r.Context(), filter)
	if err != nil {
		writeDomainError(w, "failed to total depreciation", err)
		return
	}

	resp := dto.TotalDepreciationResponse{CategoryCode: filter.CategoryCode, Total: total}
	if rng != nil {
		resp.From, resp.To = string(rng.From), string(rng.To)
	}

	writeJSON(w, http.StatusOK, resp)
}
