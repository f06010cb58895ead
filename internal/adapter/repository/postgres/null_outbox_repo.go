package postgres

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// NullOutboxRepository drops lifecycle events. The server uses it when
// EVENTS_ENABLED is false so schedule operations skip the outbox table.
type NullOutboxRepository struct {
	discarded atomic.Int64
}

// NewNullOutboxRepository creates a new NullOutboxRepository.
func NewNullOutboxRepository() *NullOutboxRepository {
	return &NullOutboxRepository{}
}

// Create counts and drops the event.
func (r *NullOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	r.discarded.Add(1)
	return nil
}

// Discarded returns how many events were dropped.
func (r *NullOutboxRepository) Discarded() int64 {
	return r.discarded.Load()
}

func (r *NullOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	return nil, nil
}

func (r *NullOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	return nil
}

func (r *NullOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	return nil
}
