package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerPlaces is the number of decimal places stored in ledger rows.
const LedgerPlaces = 4

// CostEntry is an asset's projected cost for one period, before depreciation.
type CostEntry struct {
	ID        int64
	AssetCode string
	Period    PeriodKey
	Cost      decimal.Decimal
}

// DepreciationEntry is the monthly charge and resulting book value for one period.
type DepreciationEntry struct {
	ID        int64
	AssetCode string
	Period    PeriodKey
	Rate      decimal.Decimal
	Amount    decimal.Decimal
	BookValue decimal.Decimal
}

// IsTerminal reports whether the entry closes a scrapped ledger.
func (e DepreciationEntry) IsTerminal() bool {
	return e.Rate.IsZero() && e.Amount.IsZero() && e.BookValue.IsZero()
}

// TerminalDepreciationEntry closes an asset's depreciation ledger at period.
func TerminalDepreciationEntry(assetCode string, period PeriodKey) DepreciationEntry {
	return DepreciationEntry{
		AssetCode: assetCode,
		Period:    period,
		Rate:      decimal.Zero,
		Amount:    decimal.Zero,
		BookValue: decimal.Zero,
	}
}

// TransactionType is the kind of lifecycle event recorded in the transaction log.
type TransactionType string

const (
	TransactionTypeAdded    TransactionType = "Asset added"
	TransactionTypeRevalued TransactionType = "Asset Revalued"
	TransactionTypeScrapped TransactionType = "Asset Scrapped"
)

// Transaction is an append-only lifecycle record.
type Transaction struct {
	ID        string
	AssetCode string
	Period    PeriodKey
	Type      TransactionType
	Date      time.Time
	Amount    decimal.Decimal
	Cost      decimal.Decimal
	CreatedAt time.Time
}

// DepreciationTotalFilter narrows a total depreciation query. Zero values mean no filter.
type DepreciationTotalFilter struct {
	CategoryCode string
	Range        *PeriodRange
}
