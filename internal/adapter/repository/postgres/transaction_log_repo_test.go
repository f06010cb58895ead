package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

func TestTransactionLogRepositoryAppendAndExists(t *testing.T) {
	pool := newMockPool(t)
	repo := newTransactionLogRepository(pool)
	ctx := context.Background()

	tx := beginMockTx(t, pool)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM asset_transactions")).
		WithArgs("A1", "Asset added").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	pool.ExpectExec(regexp.QuoteMeta("INSERT INTO asset_transactions")).
		WithArgs("01J0000000000000000000000", "A1", "01-2025", "Asset added",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectCommit()

	exists, err := repo.ExistsByType(ctx, tx, "A1", domain.TransactionTypeAdded)
	if err != nil || exists {
		t.Fatalf("expected no existing record, got %v (%v)", exists, err)
	}

	err = repo.Append(ctx, tx, &domain.Transaction{
		ID:        "01J0000000000000000000000",
		AssetCode: "A1",
		Period:    "01-2025",
		Type:      domain.TransactionTypeAdded,
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(12000),
		Cost:      decimal.NewFromInt(12000),
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, pool)
}

func TestTransactionLogRepositoryListByAsset(t *testing.T) {
	pool := newMockPool(t)
	repo := newTransactionLogRepository(pool)
	at := timeToPgTimestamptz(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	pool.ExpectQuery(regexp.QuoteMeta("FROM asset_transactions\nWHERE asset_code = $1 ORDER BY created_at, id")).
		WithArgs("A1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "asset_code", "period_key", "type", "tx_date", "amount", "cost", "created_at"}).
			AddRow("T1", "A1", "01-2025", "Asset added", at, num("12000"), num("12000"), at).
			AddRow("T2", "A1", "03-2025", "Asset Revalued", at, num("3000"), num("15000"), at))

	records, err := repo.ListByAsset(context.Background(), "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[1].Type != domain.TransactionTypeRevalued || !records[1].Cost.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("unexpected records %+v", records)
	}

	assertExpectations(t, pool)
}
