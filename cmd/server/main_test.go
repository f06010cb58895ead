package main

import (
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	postgresRepo "github.com/lmukoya96/FixedAssetsModule/internal/adapter/repository/postgres"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/config"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/eventpublisher"
)

func TestServerAddr(t *testing.T) {
	if got := serverAddr("8080"); got != ":8080" {
		t.Fatalf("expected :8080, got %s", got)
	}
}

func TestNewOutboxRepository_DisabledDiscards(t *testing.T) {
	repo := newOutboxRepository(false, nil)
	if _, ok := repo.(*postgresRepo.NullOutboxRepository); !ok {
		t.Fatalf("expected null outbox when events are disabled, got %T", repo)
	}

	// Without a pool the outbox cannot be persistent either.
	if _, ok := newOutboxRepository(true, nil).(*postgresRepo.NullOutboxRepository); !ok {
		t.Fatalf("expected null outbox without a pool")
	}
}

func TestEventSink(t *testing.T) {
	a := &app{cfg: &config.Config{}, logger: zerolog.Nop()}
	if _, ok := a.eventSink().(*eventpublisher.LogPublisher); !ok {
		t.Fatalf("expected log publisher without a channel")
	}

	a.cfg.EventsChannel = "fixedassets.events"
	a.redisClient = goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	defer a.redisClient.Close()
	if _, ok := a.eventSink().(*eventpublisher.RedisPublisher); !ok {
		t.Fatalf("expected redis publisher for a configured channel")
	}
}
