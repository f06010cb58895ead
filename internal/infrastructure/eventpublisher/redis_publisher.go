package eventpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

// Message is the wire form of an outbox event on the Redis channel.
type Message struct {
	ID            string         `json:"id"`
	EventType     string         `json:"event_type"`
	AggregateType string         `json:"aggregate_type"`
	AggregateID   string         `json:"aggregate_id"`
	Payload       map[string]any `json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RedisPublisher publishes events with PUBLISH behind a circuit breaker.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	breaker *gobreaker.CircuitBreaker
}

// BreakerConfig tunes the publisher's circuit breaker.
type BreakerConfig struct {
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before a probe.
	OpenTimeout time.Duration
}

// NewRedisPublisher creates a RedisPublisher on channel.
func NewRedisPublisher(client *redis.Client, channel string, cfg BreakerConfig, logger zerolog.Logger) *RedisPublisher {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 3
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "redis-publisher",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &RedisPublisher{
		client:  client,
		channel: channel,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Publish sends the event. While the breaker is open it fails fast with
// gobreaker.ErrOpenState and the event stays in the outbox.
func (p *RedisPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	body, err := json.Marshal(Message{
		ID:            event.ID,
		EventType:     event.EventType,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		Payload:       event.Payload,
		CreatedAt:     event.CreatedAt,
	})
	if err != nil {
		return err
	}

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.client.Publish(ctx, p.channel, body).Err()
	})

	return err
}

// State reports the breaker state.
func (p *RedisPublisher) State() gobreaker.State {
	return p.breaker.State()
}
