package domain

import "errors"

var (
	// Period errors
	ErrNoCurrentPeriod  = errors.New("no current period found")
	ErrNoPeriodsFound   = errors.New("no periods found")
	ErrPeriodNotFound   = errors.New("period not found")
	ErrInvalidPeriodKey = errors.New("invalid period key")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Asset errors
	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetExists   = errors.New("asset already exists")
	ErrAssetScrapped = errors.New("asset is scrapped")
	ErrInvalidAsset  = errors.New("invalid asset")
	ErrInvalidCost   = errors.New("cost must not be negative")

	// Policy errors
	ErrPolicyNotFound      = errors.New("depreciation policy not found")
	ErrPolicyNotConfigured = errors.New("no depreciation policy configured for asset group")
	ErrInvalidRate         = errors.New("depreciation rate must be between 0 and 100")
	ErrInvalidMethod       = errors.New("unknown depreciation method")

	// Schedule errors
	ErrGenerationFailure      = errors.New("schedule generation failed")
	ErrConcurrentModification = errors.New("concurrent modification")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidRole  = errors.New("invalid role")
)
