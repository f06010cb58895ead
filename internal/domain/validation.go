package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCode     = errors.New("invalid code")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrDescriptionLong = errors.New("description too long")
)

// Validation constants
const (
	MaxCodeLength        = 50
	MaxDescriptionLength = 255
	MaxAssetAmount       = "10000000000000000" // fits NUMERIC(20,4)
)

var codeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]*$`)

// ValidateCode validates asset and depreciation codes.
func ValidateCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidCode)
	}

	if len(code) > MaxCodeLength {
		return fmt.Errorf("%w: code exceeds %d characters", ErrInvalidCode, MaxCodeLength)
	}

	if !codeRegex.MatchString(code) {
		return fmt.Errorf("%w: %q contains forbidden characters", ErrInvalidCode, code)
	}

	return nil
}

// ValidateDescription validates free text length.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrDescriptionLong, MaxDescriptionLength)
	}
	return nil
}

// ValidateAmount validates a cost or purchase amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidCost
	}

	maxAmount, _ := decimal.NewFromString(MaxAssetAmount)
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAssetAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
