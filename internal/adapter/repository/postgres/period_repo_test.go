package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

var periodColumns = []string{"id", "period_num", "month", "year", "start_date", "end_date", "is_current"}

func pgDate(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestPeriodRepositoryGetCurrent(t *testing.T) {
	pool := newMockPool(t)
	repo := newPeriodRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE is_current")).
		WillReturnRows(pgxmock.NewRows(periodColumns).
			AddRow(int64(7), int32(7), int32(1), int32(2025), pgDate(2025, 1, 1), pgDate(2025, 1, 31), true))

	p, err := repo.GetCurrent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Key() != "07-2025" || p.Month != 1 || !p.IsCurrent {
		t.Fatalf("unexpected period %+v", p)
	}
	if !p.Contains(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected period to contain mid-January")
	}

	assertExpectations(t, pool)
}

func TestPeriodRepositoryGetCurrentMissing(t *testing.T) {
	pool := newMockPool(t)
	repo := newPeriodRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE is_current")).WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetCurrent(context.Background()); !errors.Is(err, domain.ErrPeriodNotFound) {
		t.Fatalf("expected ErrPeriodNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestPeriodRepositoryGetByYear(t *testing.T) {
	pool := newMockPool(t)
	repo := newPeriodRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE year = $1 ORDER BY period_num")).
		WithArgs(int32(2025)).
		WillReturnRows(pgxmock.NewRows(periodColumns).
			AddRow(int64(1), int32(1), int32(1), int32(2025), pgDate(2025, 1, 1), pgDate(2025, 1, 31), false).
			AddRow(int64(2), int32(2), int32(2), int32(2025), pgDate(2025, 2, 1), pgDate(2025, 2, 28), false))

	periods, err := repo.GetByYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 2 || periods[1].Key() != "02-2025" {
		t.Fatalf("unexpected periods %+v", periods)
	}

	assertExpectations(t, pool)
}

func TestPeriodRepositoryGetByKeyMissing(t *testing.T) {
	pool := newMockPool(t)
	repo := newPeriodRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta("WHERE period_num = $1 AND year = $2")).
		WithArgs(int32(13), int32(2025)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetByKey(context.Background(), 13, 2025); !errors.Is(err, domain.ErrPeriodNotFound) {
		t.Fatalf("expected ErrPeriodNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}
