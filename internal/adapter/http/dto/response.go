package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	Code                  string          `json:"code"`
	Description           string          `json:"description"`
	GroupCode             string          `json:"group_code"`
	CategoryCode          string          `json:"category_code,omitempty"`
	Department            string          `json:"department,omitempty"`
	Location              string          `json:"location,omitempty"`
	TrackingCode          string          `json:"tracking_code,omitempty"`
	SerialNumber          string          `json:"serial_number,omitempty"`
	PurchaseDate          string          `json:"purchase_date"`
	DepreciationStartDate string          `json:"depreciation_start_date"`
	PurchaseAmount        decimal.Decimal `json:"purchase_amount"`
	Cost                  decimal.Decimal `json:"cost"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// AssetFromDomain converts domain asset to response.
func AssetFromDomain(a *domain.Asset) *AssetResponse {
	if a == nil {
		return nil
	}
	return &AssetResponse{
		Code:                  a.Code,
		Description:           a.Description,
		GroupCode:             a.GroupCode,
		CategoryCode:          a.CategoryCode,
		Department:            a.Department,
		Location:              a.Location,
		TrackingCode:          a.TrackingCode,
		SerialNumber:          a.SerialNumber,
		PurchaseDate:          formatDate(a.PurchaseDate),
		DepreciationStartDate: formatDate(a.DepreciationStartDate),
		PurchaseAmount:        a.PurchaseAmount,
		Cost:                  a.Cost,
		Status:                string(a.Status),
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// AssetsFromDomain converts a slice of domain assets.
func AssetsFromDomain(assets []*domain.Asset) []*AssetResponse {
	result := make([]*AssetResponse, len(assets))
	for i, a := range assets {
		result[i] = AssetFromDomain(a)
	}
	return result
}

// ListAssetsResponse represents a page of assets.
type ListAssetsResponse struct {
	Assets []*AssetResponse `json:"assets"`
	Total  int64            `json:"total"`
}

// ScheduleResponse summarizes a regenerated schedule.
type ScheduleResponse struct {
	AssetCode           string          `json:"asset_code"`
	StartPeriod         string          `json:"start_period"`
	DepreciationCode    string          `json:"depreciation_code,omitempty"`
	Method              string          `json:"method,omitempty"`
	Rate                decimal.Decimal `json:"rate"`
	PolicyConfigured    bool            `json:"policy_configured"`
	CostEntries         int             `json:"cost_entries"`
	DepreciationEntries int             `json:"depreciation_entries"`
}

// ScheduleFromResult converts a schedule result.
func ScheduleFromResult(r *usecase.ScheduleResult) *ScheduleResponse {
	if r == nil {
		return nil
	}
	return &ScheduleResponse{
		AssetCode:           r.AssetCode,
		StartPeriod:         string(r.StartPeriod),
		DepreciationCode:    r.Policy.Code,
		Method:              string(r.Policy.Method),
		Rate:                r.Policy.Rate,
		PolicyConfigured:    r.Policy.Configured,
		CostEntries:         r.CostEntries,
		DepreciationEntries: r.DepreciationEntries,
	}
}

// CreateAssetResponse is returned when an asset is registered. Warning is set
// when the asset was stored but schedule generation failed.
type CreateAssetResponse struct {
	Asset    *AssetResponse    `json:"asset"`
	Schedule *ScheduleResponse `json:"schedule,omitempty"`
	Warning  string            `json:"warning,omitempty"`
}

// TransactionResponse represents a lifecycle record.
type TransactionResponse struct {
	ID        string          `json:"id"`
	AssetCode string          `json:"asset_code"`
	Period    string          `json:"period"`
	Type      string          `json:"type"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a lifecycle record.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:        t.ID,
		AssetCode: t.AssetCode,
		Period:    string(t.Period),
		Type:      string(t.Type),
		Date:      formatDate(t.Date),
		Amount:    t.Amount,
		Cost:      t.Cost,
		CreatedAt: t.CreatedAt,
	}
}

// TransactionsFromDomain converts a transaction log.
func TransactionsFromDomain(records []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(records))
	for i, t := range records {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// RevaluationResponse is returned after a revaluation.
type RevaluationResponse struct {
	Asset       *AssetResponse       `json:"asset"`
	Transaction *TransactionResponse `json:"transaction"`
	Schedule    *ScheduleResponse    `json:"schedule,omitempty"`
}

// ScrapResponse is returned after an asset is scrapped.
type ScrapResponse struct {
	Asset       *AssetResponse       `json:"asset"`
	Transaction *TransactionResponse `json:"transaction"`
}

// CostEntryResponse is one cost ledger row.
type CostEntryResponse struct {
	ID            int64           `json:"id"`
	Period        string          `json:"period"`
	DisplayPeriod string          `json:"display_period"`
	Cost          decimal.Decimal `json:"cost"`
}

// CostEntriesFromDomain converts cost ledger rows.
func CostEntriesFromDomain(entries []domain.CostEntry) []CostEntryResponse {
	result := make([]CostEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = CostEntryResponse{
			ID:            e.ID,
			Period:        string(e.Period),
			DisplayPeriod: e.Period.Display(),
			Cost:          e.Cost,
		}
	}
	return result
}

// DepreciationEntryResponse is one depreciation ledger row.
type DepreciationEntryResponse struct {
	ID            int64           `json:"id"`
	Period        string          `json:"period"`
	DisplayPeriod string          `json:"display_period"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	BookValue     decimal.Decimal `json:"book_value"`
}

// DepreciationEntriesFromDomain converts depreciation ledger rows.
func DepreciationEntriesFromDomain(entries []domain.DepreciationEntry) []DepreciationEntryResponse {
	result := make([]DepreciationEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = DepreciationEntryResponse{
			ID:            e.ID,
			Period:        string(e.Period),
			DisplayPeriod: e.Period.Display(),
			Rate:          e.Rate,
			Amount:        e.Amount,
			BookValue:     e.BookValue,
		}
	}
	return result
}

// CostHistoryResponse wraps an asset's cost ledger.
type CostHistoryResponse struct {
	AssetCode string              `json:"asset_code"`
	Entries   []CostEntryResponse `json:"entries"`
}

// DepreciationHistoryResponse wraps an asset's depreciation ledger.
type DepreciationHistoryResponse struct {
	AssetCode string                      `json:"asset_code"`
	Entries   []DepreciationEntryResponse `json:"entries"`
}

// PeriodsResponse lists the display periods of an asset's cost ledger.
type PeriodsResponse struct {
	AssetCode string   `json:"asset_code"`
	Periods   []string `json:"periods"`
}

// TransactionsResponse wraps an asset's transaction log.
type TransactionsResponse struct {
	AssetCode    string                 `json:"asset_code"`
	Transactions []*TransactionResponse `json:"transactions"`
}

// BookValueResponse is an asset's year-end book value.
type BookValueResponse struct {
	AssetCode string          `json:"asset_code"`
	Year      int             `json:"year"`
	Period    string          `json:"period"`
	Value     decimal.Decimal `json:"value"`
}

// BookValueFromResult converts a book value.
func BookValueFromResult(bv *usecase.BookValue) *BookValueResponse {
	return &BookValueResponse{
		AssetCode: bv.AssetCode,
		Year:      bv.Year,
		Period:    string(bv.Period),
		Value:     bv.Value,
	}
}

// TotalDepreciationResponse is the sum of depreciation charges.
type TotalDepreciationResponse struct {
	CategoryCode string          `json:"category_code,omitempty"`
	From         string          `json:"from_period,omitempty"`
	To           string          `json:"to_period,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

// PolicyResponse represents a depreciation code.
type PolicyResponse struct {
	Code        string          `json:"code"`
	Description string          `json:"description,omitempty"`
	Method      string          `json:"method"`
	Rate        decimal.Decimal `json:"rate"`
	TaxMethod   string          `json:"tax_method,omitempty"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PolicyFromDomain converts a depreciation policy.
func PolicyFromDomain(p *domain.Policy) *PolicyResponse {
	if p == nil {
		return nil
	}
	return &PolicyResponse{
		Code:        p.Code,
		Description: p.Description,
		Method:      string(p.Method),
		Rate:        p.Rate,
		TaxMethod:   string(p.TaxMethod),
		TaxRate:     p.TaxRate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PoliciesFromDomain converts depreciation policies.
func PoliciesFromDomain(policies []*domain.Policy) []*PolicyResponse {
	result := make([]*PolicyResponse, len(policies))
	for i, p := range policies {
		result[i] = PolicyFromDomain(p)
	}
	return result
}

// ListPoliciesResponse wraps all depreciation codes.
type ListPoliciesResponse struct {
	Policies []*PolicyResponse `json:"policies"`
}

// RateChangeOutcomeResponse is one asset's recalculation result.
type RateChangeOutcomeResponse struct {
	AssetCode string `json:"asset_code"`
	Status    string `json:"status"`
	Entries   int    `json:"entries"`
	Error     string `json:"error,omitempty"`
}

// RateChangeReportResponse summarizes a rate-change recalculation.
type RateChangeReportResponse struct {
	Period    string                      `json:"period"`
	Succeeded int                         `json:"succeeded"`
	Failed    int                         `json:"failed"`
	Skipped   int                         `json:"skipped"`
	Outcomes  []RateChangeOutcomeResponse `json:"outcomes"`
}

// ChangeRateResponse is returned after a rate update.
type ChangeRateResponse struct {
	Policy        *PolicyResponse           `json:"policy"`
	PreviousRate  decimal.Decimal           `json:"previous_rate"`
	Recalculation *RateChangeReportResponse `json:"recalculation,omitempty"`
}

// ChangeRateFromResult converts a rate change result.
func ChangeRateFromResult(r *usecase.ChangeRateResult) *ChangeRateResponse {
	resp := &ChangeRateResponse{
		Policy:       PolicyFromDomain(r.Policy),
		PreviousRate: r.PreviousRate,
	}
	if r.Report == nil {
		return resp
	}

	outcomes := make([]RateChangeOutcomeResponse, len(r.Report.Outcomes))
	for i, o := range r.Report.Outcomes {
		outcomes[i] = RateChangeOutcomeResponse{
			AssetCode: o.AssetCode,
			Status:    string(o.Status),
			Entries:   o.Entries,
			Error:     o.Error,
		}
	}
	resp.Recalculation = &RateChangeReportResponse{
		Period:    string(r.Report.Period),
		Succeeded: r.Report.Count(usecase.RateChangeSucceeded),
		Failed:    r.Report.Count(usecase.RateChangeFailed),
		Skipped:   r.Report.Count(usecase.RateChangeSkipped),
		Outcomes:  outcomes,
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
