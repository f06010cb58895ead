package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Method is a depreciation method.
type Method string

const (
	MethodEqualInstallments Method = "equal_installments"
	MethodReducingBalance   Method = "reducing_balance"
)

// ParseMethod accepts canonical names and the register's display names
// ("Equal Instalments", "Reducing Balance"). Empty input yields equal installments.
func ParseMethod(s string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch normalized {
	case "", "equal_installments", "equal_instalments", "straight_line":
		return MethodEqualInstallments, nil
	case "reducing_balance", "declining_balance":
		return MethodReducingBalance, nil
	default:
		return "", ErrInvalidMethod
	}
}

var hundred = decimal.NewFromInt(100)

// Policy is a depreciation code with its method and annual rate in percent.
// Configured is false when the lookup fell back to the default policy.
type Policy struct {
	Code        string
	Description string
	Method      Method
	Rate        decimal.Decimal
	TaxMethod   Method
	TaxRate     decimal.Decimal
	Configured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnconfiguredPolicy is the fallback for groups without a depreciation code.
func UnconfiguredPolicy() Policy {
	return Policy{
		Method: MethodEqualInstallments,
		Rate:   decimal.Zero,
	}
}

// Depreciates reports whether the policy produces any charge.
func (p Policy) Depreciates() bool {
	return p.Rate.IsPositive()
}

// AnnualCharge returns base * rate / 100.
func (p Policy) AnnualCharge(base decimal.Decimal) decimal.Decimal {
	return base.Mul(p.Rate).Div(hundred)
}

// ValidateRate checks rate is within [0, 100].
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return ErrInvalidRate
	}
	return nil
}

// Validate checks the policy fields.
func (p *Policy) Validate() error {
	if err := ValidateCode(p.Code); err != nil {
		return err
	}
	if p.Method != MethodEqualInstallments && p.Method != MethodReducingBalance {
		return ErrInvalidMethod
	}
	return ValidateRate(p.Rate)
}
