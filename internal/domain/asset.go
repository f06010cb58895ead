package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of an asset's ledger.
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusScrapped AssetStatus = "scrapped"
)

// Asset is a tracked fixed asset. Cost is the current carrying amount and is
// only changed by schedule operations after creation.
type Asset struct {
	Code                  string
	Description           string
	GroupCode             string
	CategoryCode          string
	Department            string
	Location              string
	TrackingCode          string
	SerialNumber          string
	PurchaseDate          time.Time
	DepreciationStartDate time.Time
	PurchaseAmount        decimal.Decimal
	Cost                  decimal.Decimal
	Status                AssetStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Validate checks the fields the schedule engine relies on.
func (a *Asset) Validate() error {
	if err := ValidateCode(a.Code); err != nil {
		return err
	}
	if strings.TrimSpace(a.GroupCode) == "" {
		return fmt.Errorf("%w: group code is required", ErrInvalidAsset)
	}
	if err := ValidateDescription(a.Description); err != nil {
		return err
	}
	if err := ValidateAmount(a.Cost); err != nil {
		return err
	}
	return ValidateAmount(a.PurchaseAmount)
}

// IsScrapped reports whether the asset reached its terminal state.
func (a *Asset) IsScrapped() bool {
	return a.Status == AssetStatusScrapped
}

// EnsureActive returns ErrAssetScrapped for scrapped assets.
func (a *Asset) EnsureActive() error {
	if a.IsScrapped() {
		return ErrAssetScrapped
	}
	return nil
}
