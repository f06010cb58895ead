package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

func num(s string) pgtype.Numeric {
	return decimalToNumeric(decimal.RequireFromString(s))
}

func beginMockTx(t *testing.T, pool pgxmock.PgxPoolIface) usecase.Transaction {
	t.Helper()
	pool.ExpectBegin()
	tx, err := newTxManagerWithPool(pool).Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tx
}

func TestCostRepositoryRegenerateTail(t *testing.T) {
	pool := newMockPool(t)
	repo := newCostRepository(pool)
	ctx := context.Background()

	tx := beginMockTx(t, pool)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(id), 0)::bigint FROM asset_costs")).
		WithArgs("A1", int32(2025), int32(3)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))
	pool.ExpectExec(regexp.QuoteMeta("DELETE FROM asset_costs WHERE asset_code = $1 AND id > $2")).
		WithArgs("A1", int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 10))
	pool.ExpectCopyFrom(pgx.Identifier{"asset_costs"}, []string{"asset_code", "period_key", "period_num", "year", "cost"}).
		WillReturnResult(2)
	pool.ExpectCommit()

	ordinal, err := repo.LastOrdinalBefore(ctx, tx, "A1", "03-2025")
	if err != nil || ordinal != 42 {
		t.Fatalf("expected ordinal 42, got %d (%v)", ordinal, err)
	}

	deleted, err := repo.DeleteAfterOrdinal(ctx, tx, "A1", ordinal)
	if err != nil || deleted != 10 {
		t.Fatalf("expected 10 deleted rows, got %d (%v)", deleted, err)
	}

	err = repo.Insert(ctx, tx, []domain.CostEntry{
		{AssetCode: "A1", Period: "03-2025", Cost: decimal.NewFromInt(500)},
		{AssetCode: "A1", Period: "04-2025", Cost: decimal.NewFromInt(500)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, pool)
}

func TestCostRepositoryInsertEmptyIsNoop(t *testing.T) {
	pool := newMockPool(t)
	repo := newCostRepository(pool)

	if err := repo.Insert(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

func TestCostRepositoryZeroFromAndUpdateYear(t *testing.T) {
	pool := newMockPool(t)
	repo := newCostRepository(pool)
	ctx := context.Background()

	tx := beginMockTx(t, pool)

	pool.ExpectExec(regexp.QuoteMeta("UPDATE asset_costs SET cost = 0")).
		WithArgs("A1", int32(2025), int32(6)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 7))
	pool.ExpectExec(regexp.QuoteMeta("UPDATE asset_costs SET cost = $3 WHERE asset_code = $1 AND year = $2")).
		WithArgs("A1", int32(2026), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 12))
	pool.ExpectRollback()

	n, err := repo.ZeroFrom(ctx, tx, "A1", "06-2025")
	if err != nil || n != 7 {
		t.Fatalf("expected 7 zeroed rows, got %d (%v)", n, err)
	}

	if err := repo.UpdateYear(ctx, tx, "A1", 2026, decimal.NewFromInt(8000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = tx.Rollback(ctx)
	assertExpectations(t, pool)
}

func TestCostRepositoryReads(t *testing.T) {
	pool := newMockPool(t)
	repo := newCostRepository(pool)
	ctx := context.Background()
	columns := []string{"id", "asset_code", "period_key", "period_num", "year", "cost"}

	pool.ExpectQuery(regexp.QuoteMeta("FROM asset_costs\nWHERE asset_code = $1\n  AND (year, period_num) >=")).
		WithArgs("A1", int32(2025), int32(11), int32(2026), int32(2)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(11), "A1", "11-2025", int32(11), int32(2025), num("10000")).
			AddRow(int64(12), "A1", "12-2025", int32(12), int32(2025), num("10000")))
	pool.ExpectQuery(regexp.QuoteMeta("WHERE asset_code = $1 AND year = $2 ORDER BY period_num DESC LIMIT 1")).
		WithArgs("A1", int32(2031)).
		WillReturnError(pgx.ErrNoRows)

	entries, err := repo.Range(ctx, "A1", domain.PeriodRange{From: "11-2025", To: "02-2026"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[1].Period != "12-2025" || !entries[0].Cost.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("unexpected entries %+v", entries)
	}

	last, err := repo.LastOfYear(ctx, "A1", 2031)
	if err != nil || last != nil {
		t.Fatalf("expected nil entry without error, got %+v (%v)", last, err)
	}

	assertExpectations(t, pool)
}

func TestDepreciationRepositoryInsertAndSum(t *testing.T) {
	pool := newMockPool(t)
	repo := newDepreciationRepository(pool)
	ctx := context.Background()

	tx := beginMockTx(t, pool)

	pool.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0)::numeric FROM asset_depreciation")).
		WithArgs("A1", int32(2025), int32(7)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(num("1000.0002")))
	pool.ExpectCopyFrom(pgx.Identifier{"asset_depreciation"}, []string{"asset_code", "period_key", "period_num", "year", "rate", "amount", "book_value"}).
		WillReturnResult(1)
	pool.ExpectCommit()

	sum, err := repo.SumBefore(ctx, tx, "A1", "07-2025")
	if err != nil || !sum.Equal(decimal.RequireFromString("1000.0002")) {
		t.Fatalf("expected 1000.0002, got %s (%v)", sum, err)
	}

	err = repo.Insert(ctx, tx, []domain.DepreciationEntry{domain.TerminalDepreciationEntry("A1", "07-2025")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, pool)
}

func TestDepreciationRepositoryTotal(t *testing.T) {
	pool := newMockPool(t)
	repo := newDepreciationRepository(pool)
	ctx := context.Background()

	pool.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(d.amount), 0)::numeric FROM asset_depreciation d")).
		WithArgs(pgtype.Text{}, pgtype.Int4{}, pgtype.Int4{}, pgtype.Int4{}, pgtype.Int4{}).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(num("5000")))
	pool.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(d.amount), 0)::numeric FROM asset_depreciation d")).
		WithArgs(
			pgtype.Text{String: "COMP", Valid: true},
			pgtype.Int4{Int32: 2025, Valid: true},
			pgtype.Int4{Int32: 1, Valid: true},
			pgtype.Int4{Int32: 2025, Valid: true},
			pgtype.Int4{Int32: 12, Valid: true},
		).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(num("2000.0004")))

	total, err := repo.Total(ctx, domain.DepreciationTotalFilter{})
	if err != nil || !total.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected 5000, got %s (%v)", total, err)
	}

	total, err = repo.Total(ctx, domain.DepreciationTotalFilter{
		CategoryCode: "COMP",
		Range:        &domain.PeriodRange{From: "01-2025", To: "12-2025"},
	})
	if err != nil || !total.Equal(decimal.RequireFromString("2000.0004")) {
		t.Fatalf("expected 2000.0004, got %s (%v)", total, err)
	}

	assertExpectations(t, pool)
}

func TestDepreciationRepositoryHistory(t *testing.T) {
	pool := newMockPool(t)
	repo := newDepreciationRepository(pool)
	columns := []string{"id", "asset_code", "period_key", "period_num", "year", "rate", "amount", "book_value"}

	pool.ExpectQuery(regexp.QuoteMeta("FROM asset_depreciation\nWHERE asset_code = $1 ORDER BY year, period_num")).
		WithArgs("A1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "A1", "01-2025", int32(1), int32(2025), num("20"), num("166.6667"), num("9833.3333")).
			AddRow(int64(2), "A1", "02-2025", int32(2), int32(2025), num("20"), num("166.6667"), num("9666.6666")))

	entries, err := repo.History(context.Background(), "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || !entries[1].BookValue.Equal(decimal.RequireFromString("9666.6666")) {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if entries[0].IsTerminal() {
		t.Fatalf("expected regular entry")
	}

	assertExpectations(t, pool)
}
