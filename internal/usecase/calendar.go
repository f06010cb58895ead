package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// PeriodCalendar resolves accounting periods and their sequencing.
// The current period is never cached.
type PeriodCalendar struct {
	periodRepo PeriodRepository
	cache      Cache
	cacheTTL   time.Duration
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewPeriodCalendar creates a new PeriodCalendar. cache may be nil.
func NewPeriodCalendar(periodRepo PeriodRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger, m *metrics.Metrics) *PeriodCalendar {
	if cacheTTL <= 0 {
		cacheTTL = DefaultPeriodCacheTTL
	}

	return &PeriodCalendar{
		periodRepo: periodRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
		metrics:    m,
	}
}

// CurrentPeriod returns the period flagged current.
func (c *PeriodCalendar) CurrentPeriod(ctx context.Context) (domain.Period, error) {
	p, err := c.periodRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPeriodNotFound) {
			return domain.Period{}, domain.ErrNoCurrentPeriod
		}
		return domain.Period{}, err
	}
	if p == nil {
		return domain.Period{}, domain.ErrNoCurrentPeriod
	}

	return *p, nil
}

// PeriodByKey loads the period identified by key.
func (c *PeriodCalendar) PeriodByKey(ctx context.Context, key domain.PeriodKey) (domain.Period, error) {
	if !key.Valid() {
		return domain.Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriodKey, key)
	}

	number, year := key.Parts()
	p, err := c.periodRepo.GetByKey(ctx, number, year)
	if err != nil {
		return domain.Period{}, err
	}
	if p == nil {
		return domain.Period{}, fmt.Errorf("%w: %s", domain.ErrPeriodNotFound, key)
	}

	return *p, nil
}

// PeriodsOfYear returns the periods of year ordered by period number.
func (c *PeriodCalendar) PeriodsOfYear(ctx context.Context, year int) ([]domain.Period, error) {
	if cached, ok := c.cachedYear(ctx, year); ok {
		return cached, nil
	}

	periods, err := c.periodRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Number < periods[j].Number
	})

	if len(periods) > 0 {
		c.storeYear(ctx, year, periods)
	}

	return periods, nil
}

// PeriodsFrom returns every period of start's year followed by up to maxYears
// further years, stopping at the first year without periods.
func (c *PeriodCalendar) PeriodsFrom(ctx context.Context, start domain.Period, maxYears int) ([]domain.Period, error) {
	if maxYears < 0 {
		maxYears = 0
	}

	periods, err := c.PeriodsOfYear(ctx, start.Year)
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: year %d", domain.ErrNoPeriodsFound, start.Year)
	}

	for year := start.Year + 1; year <= start.Year+maxYears; year++ {
		next, err := c.PeriodsOfYear(ctx, year)
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			break
		}
		periods = append(periods, next...)
	}

	return periods, nil
}

func (c *PeriodCalendar) cachedYear(ctx context.Context, year int) ([]domain.Period, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, periodsCacheKey(year))
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warn().Err(err).Int("year", year).Msg("period cache read failed")
		}
		c.observeCache("miss")
		return nil, false
	}

	var periods []domain.Period
	if err := json.Unmarshal(raw, &periods); err != nil {
		c.logger.Warn().Err(err).Int("year", year).Msg("discarding corrupt period cache entry")
		c.observeCache("miss")
		return nil, false
	}

	c.observeCache("hit")
	return periods, true
}

func (c *PeriodCalendar) storeYear(ctx context.Context, year int, periods []domain.Period) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(periods)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, periodsCacheKey(year), raw, c.cacheTTL); err != nil {
		c.logger.Warn().Err(err).Int("year", year).Msg("period cache write failed")
	}
}

func (c *PeriodCalendar) observeCache(result string) {
	if c.metrics != nil {
		c.metrics.PeriodCacheLookups.WithLabelValues(result).Inc()
	}
}

func periodsCacheKey(year int) string {
	return fmt.Sprintf("periods:%d", year)
}
