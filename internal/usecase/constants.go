package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultMaxScheduleYears bounds how many years after the start year a schedule covers.
	DefaultMaxScheduleYears = 10

	// DefaultRateChangeWorkers bounds concurrent per-asset recalculations.
	DefaultRateChangeWorkers = 4

	// DefaultPeriodCacheTTL is how long a year's periods stay cached.
	DefaultPeriodCacheTTL = 10 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
