package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidField is returned when a request field cannot be decoded.
var ErrInvalidField = errors.New("invalid request field")

// CreateAssetRequest represents a request to register an asset.
type CreateAssetRequest struct {
	Code                  string `json:"code"`
	Description           string `json:"description"`
	GroupCode             string `json:"group_code"`
	CategoryCode          string `json:"category_code,omitempty"`
	Department            string `json:"department,omitempty"`
	Location              string `json:"location,omitempty"`
	TrackingCode          string `json:"tracking_code,omitempty"`
	SerialNumber          string `json:"serial_number,omitempty"`
	PurchaseDate          string `json:"purchase_date"`
	DepreciationStartDate string `json:"depreciation_start_date,omitempty"`
	PurchaseAmount        string `json:"purchase_amount"`
}

// ToUseCaseInput converts to use case input. A missing depreciation start
// date defaults to the purchase date.
func (r *CreateAssetRequest) ToUseCaseInput() (usecase.CreateAssetInput, error) {
	amount, err := parseAmount("purchase_amount", r.PurchaseAmount)
	if err != nil {
		return usecase.CreateAssetInput{}, err
	}

	purchased, err := parseDate("purchase_date", r.PurchaseDate)
	if err != nil {
		return usecase.CreateAssetInput{}, err
	}

	depStart := purchased
	if r.DepreciationStartDate != "" {
		if depStart, err = parseDate("depreciation_start_date", r.DepreciationStartDate); err != nil {
			return usecase.CreateAssetInput{}, err
		}
	}

	return usecase.CreateAssetInput{
		Code:                  strings.TrimSpace(r.Code),
		Description:           r.Description,
		GroupCode:             strings.TrimSpace(r.GroupCode),
		CategoryCode:          r.CategoryCode,
		Department:            r.Department,
		Location:              r.Location,
		TrackingCode:          r.TrackingCode,
		SerialNumber:          r.SerialNumber,
		PurchaseDate:          purchased,
		DepreciationStartDate: depStart,
		PurchaseAmount:        amount,
	}, nil
}

// RevalueAssetRequest represents a revaluation of an asset's cost.
type RevalueAssetRequest struct {
	NewCost string `json:"new_cost"`
	// Period accepts "MM-YYYY" or "MON-YYYY".
	Period string `json:"period"`
}

// ToUseCaseInput converts to use case input.
func (r *RevalueAssetRequest) ToUseCaseInput(assetCode string) (usecase.RevalueAssetInput, error) {
	cost, err := parseAmount("new_cost", r.NewCost)
	if err != nil {
		return usecase.RevalueAssetInput{}, err
	}

	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return usecase.RevalueAssetInput{}, err
	}

	return usecase.RevalueAssetInput{
		AssetCode:       assetCode,
		NewCost:         cost,
		EffectivePeriod: period,
	}, nil
}

// ScrapAssetRequest represents the disposal of an asset.
type ScrapAssetRequest struct {
	Period string `json:"period"`
}

// ToUseCaseInput converts to use case input.
func (r *ScrapAssetRequest) ToUseCaseInput(assetCode string) (usecase.ScrapAssetInput, error) {
	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return usecase.ScrapAssetInput{}, err
	}

	return usecase.ScrapAssetInput{AssetCode: assetCode, EffectivePeriod: period}, nil
}

// CreatePolicyRequest represents a new depreciation code.
type CreatePolicyRequest struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Method      string `json:"method"`
	Rate        string `json:"rate"`
	TaxMethod   string `json:"tax_method,omitempty"`
	TaxRate     string `json:"tax_rate,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePolicyRequest) ToUseCaseInput() (usecase.CreatePolicyInput, error) {
	rate, err := parseAmount("rate", r.Rate)
	if err != nil {
		return usecase.CreatePolicyInput{}, err
	}

	taxRate := decimal.Zero
	if r.TaxRate != "" {
		if taxRate, err = parseAmount("tax_rate", r.TaxRate); err != nil {
			return usecase.CreatePolicyInput{}, err
		}
	}

	return usecase.CreatePolicyInput{
		Code:        strings.TrimSpace(r.Code),
		Description: r.Description,
		Method:      r.Method,
		Rate:        rate,
		TaxMethod:   r.TaxMethod,
		TaxRate:     taxRate,
	}, nil
}

// ChangeRateRequest sets a new annual rate on a depreciation code.
type ChangeRateRequest struct {
	Rate string `json:"rate"`
}

// ToUseCaseInput converts to use case input.
func (r *ChangeRateRequest) ToUseCaseInput(code string) (usecase.ChangeRateInput, error) {
	rate, err := parseAmount("rate", r.Rate)
	if err != nil {
		return usecase.ChangeRateInput{}, err
	}
	return usecase.ChangeRateInput{Code: code, Rate: rate}, nil
}

// ParseDateRange maps optional from/to query dates onto a period range.
// Both empty means no range; a single bound is rejected.
func ParseDateRange(from, to string) (*domain.PeriodRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to must be given together", domain.ErrInvalidDateRange)
	}

	start, err := parseDate("from", from)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("to", to)
	if err != nil {
		return nil, err
	}

	r, err := domain.PeriodRangeFromDates(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is required", ErrInvalidField, field)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %q is not a decimal", ErrInvalidField, field, s)
	}
	return d, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidField, field)
	}
	return t, nil
}
