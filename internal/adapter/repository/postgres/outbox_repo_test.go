package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

func TestOutboxRepositoryCreate(t *testing.T) {
	pool := newMockPool(t)
	repo := newOutboxRepository(pool)
	ctx := context.Background()

	tx := beginMockTx(t, pool)

	pool.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs("E1", "A1", "asset", "asset.created", []byte(`{"cost":"100"}`), pgxmock.AnyArg(), false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectCommit()

	event := domain.NewOutboxEvent("E1", domain.AggregateTypeAsset, "A1", domain.EventTypeAssetCreated, map[string]any{"cost": "100"}, time.Now())
	if err := repo.Create(ctx, tx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, pool)
}

func TestOutboxRepositoryGetUnpublished(t *testing.T) {
	pool := newMockPool(t)
	repo := newOutboxRepository(pool)
	at := timeToPgTimestamptz(time.Now())

	pool.ExpectQuery(regexp.QuoteMeta("FROM outbox_events WHERE NOT published")).
		WithArgs(int32(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "aggregate_id", "aggregate_type", "event_type", "payload", "created_at", "published_at", "published"}).
			AddRow("E1", "D1", "policy", "policy.rate_changed", []byte(`{"rate":"20"}`), at, pgtype.Timestamptz{}, false))

	events, err := repo.GetUnpublished(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Payload["rate"] != "20" || events[0].PublishedAt != nil {
		t.Fatalf("unexpected events %+v", events)
	}

	assertExpectations(t, pool)
}

func TestOutboxRepositoryMarkAndDelete(t *testing.T) {
	pool := newMockPool(t)
	repo := newOutboxRepository(pool)
	ctx := context.Background()

	pool.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events SET published = TRUE")).
		WithArgs("E1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events WHERE published")).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	if err := repo.MarkPublished(ctx, "E1", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeletePublished(ctx, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

func TestOutboxRepositoryCreateRejectsUnknownAggregate(t *testing.T) {
	pool := newMockPool(t)
	repo := newOutboxRepository(pool)

	event := domain.NewOutboxEvent("E1", "account", "A1", domain.EventTypeAssetCreated, nil, time.Now())
	if err := repo.Create(context.Background(), nil, event); err == nil {
		t.Fatalf("expected error for unknown aggregate type")
	}

	assertExpectations(t, pool)
}

func TestOutboxRepositoryGetUnpublishedClampsLimitAndRejectsBadPayload(t *testing.T) {
	pool := newMockPool(t)
	repo := newOutboxRepository(pool)

	pool.ExpectQuery(regexp.QuoteMeta("FROM outbox_events WHERE NOT published")).
		WithArgs(int32(maxOutboxBatch)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "aggregate_id", "aggregate_type", "event_type", "payload", "created_at", "published_at", "published"}).
			AddRow("E1", "A1", "asset", "asset.scrapped", []byte(`{not json`), timeToPgTimestamptz(time.Now()), pgtype.Timestamptz{}, false))

	if _, err := repo.GetUnpublished(context.Background(), 0); err == nil {
		t.Fatalf("expected decode error")
	}

	assertExpectations(t, pool)
}

func TestNullOutboxRepositoryCountsDiscarded(t *testing.T) {
	repo := NewNullOutboxRepository()
	event := domain.NewOutboxEvent("E1", domain.AggregateTypeAsset, "A1", domain.EventTypeAssetCreated, nil, time.Now())

	for i := 0; i < 3; i++ {
		if err := repo.Create(context.Background(), nil, event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.Discarded() != 3 {
		t.Fatalf("expected 3 discarded events, got %d", repo.Discarded())
	}

	events, err := repo.GetUnpublished(context.Background(), 10)
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events, got %d (%v)", len(events), err)
	}
}
