package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
	"github.com/shopspring/decimal"
)

// MockAssetRepository is an in-memory implementation of AssetRepository.
type MockAssetRepository struct {
	mu     sync.RWMutex
	assets map[string]*domain.Asset
	groups map[string]string

	CreateFunc             func(ctx context.Context, tx usecase.Transaction, asset *domain.Asset) error
	GetByCodeForUpdateFunc func(ctx context.Context, tx usecase.Transaction, code string) (*domain.Asset, error)
	SetCostFunc            func(ctx context.Context, tx usecase.Transaction, code string, cost decimal.Decimal, updatedAt time.Time) (int64, error)
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{
		assets: make(map[string]*domain.Asset),
		groups: make(map[string]string),
	}
}

// Put stores a copy of asset.
func (m *MockAssetRepository) Put(asset *domain.Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *asset
	m.assets[asset.Code] = &cp
}

// MapGroup links an asset group to a depreciation code for ListByDepreciationCode.
func (m *MockAssetRepository) MapGroup(groupCode, depreciationCode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[groupCode] = depreciationCode
}

func (m *MockAssetRepository) Create(ctx context.Context, tx usecase.Transaction, asset *domain.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, asset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[asset.Code]; ok {
		return domain.ErrAssetExists
	}
	cp := *asset
	m.assets[asset.Code] = &cp
	return nil
}

func (m *MockAssetRepository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[code]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MockAssetRepository) GetByCodeForUpdate(ctx context.Context, tx usecase.Transaction, code string) (*domain.Asset, error) {
	if m.GetByCodeForUpdateFunc != nil {
		return m.GetByCodeForUpdateFunc(ctx, tx, code)
	}
	return m.GetByCode(ctx, code)
}

func (m *MockAssetRepository) List(ctx context.Context, limit, offset int) ([]*domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Asset
	for _, a := range m.assets {
		cp := *a
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	if offset >= len(result) {
		return []*domain.Asset{}, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

func (m *MockAssetRepository) ListByDepreciationCode(ctx context.Context, depreciationCode string) ([]*domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Asset
	for _, a := range m.assets {
		if m.groups[a.GroupCode] == depreciationCode {
			cp := *a
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (m *MockAssetRepository) SetCost(ctx context.Context, tx usecase.Transaction, code string, cost decimal.Decimal, updatedAt time.Time) (int64, error) {
	if m.SetCostFunc != nil {
		return m.SetCostFunc(ctx, tx, code, cost, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[code]
	if !ok {
		return 0, nil
	}
	a.Cost = cost
	a.UpdatedAt = updatedAt
	return 1, nil
}

func (m *MockAssetRepository) SetStatus(ctx context.Context, tx usecase.Transaction, code string, status domain.AssetStatus, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[code]
	if !ok {
		return domain.ErrAssetNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	return nil
}

// MockCostRepository is an in-memory cost ledger. Row ids grow in insert order.
type MockCostRepository struct {
	mu     sync.RWMutex
	rows   []domain.CostEntry
	nextID int64

	InsertFunc func(ctx context.Context, tx usecase.Transaction, entries []domain.CostEntry) error
}

func NewMockCostRepository() *MockCostRepository {
	return &MockCostRepository{}
}

func (m *MockCostRepository) Insert(ctx context.Context, tx usecase.Transaction, entries []domain.CostEntry) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.nextID++
		e.ID = m.nextID
		m.rows = append(m.rows, e)
	}
	return nil
}

func (m *MockCostRepository) LastOrdinalBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ordinal int64
	for _, r := range m.rows {
		if r.AssetCode == assetCode && r.Period.Compare(period) < 0 && r.ID > ordinal {
			ordinal = r.ID
		}
	}
	return ordinal, nil
}

func (m *MockCostRepository) DeleteAfterOrdinal(ctx context.Context, tx usecase.Transaction, assetCode string, ordinal int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var deleted int64
	for _, r := range m.rows {
		if r.AssetCode == assetCode && r.ID > ordinal {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return deleted, nil
}

func (m *MockCostRepository) ZeroFrom(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i := range m.rows {
		if m.rows[i].AssetCode == assetCode && m.rows[i].Period.Compare(period) >= 0 {
			m.rows[i].Cost = decimal.Zero
			n++
		}
	}
	return n, nil
}

func (m *MockCostRepository) UpdateYear(ctx context.Context, tx usecase.Transaction, assetCode string, year int, cost decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].AssetCode == assetCode && m.rows[i].Period.Year() == year {
			m.rows[i].Cost = cost
		}
	}
	return nil
}

func (m *MockCostRepository) History(ctx context.Context, assetCode string) ([]domain.CostEntry, error) {
	return m.Range(ctx, assetCode, domain.PeriodRange{From: "01-0001", To: "12-9999"})
}

func (m *MockCostRepository) Range(ctx context.Context, assetCode string, r domain.PeriodRange) ([]domain.CostEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.CostEntry
	for _, row := range m.rows {
		if row.AssetCode == assetCode && r.Contains(row.Period) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period.Compare(out[j].Period) < 0 })
	return out, nil
}

func (m *MockCostRepository) LastOfYear(ctx context.Context, assetCode string, year int) (*domain.CostEntry, error) {
	rows, _ := m.Range(ctx, assetCode, domain.PeriodRange{From: domain.NewPeriodKey(1, year), To: domain.NewPeriodKey(12, year)})
	if len(rows) == 0 {
		return nil, nil
	}
	last := rows[len(rows)-1]
	return &last, nil
}

// Rows returns a snapshot of every row in id order.
func (m *MockCostRepository) Rows() []domain.CostEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.CostEntry(nil), m.rows...)
}

// MockDepreciationRepository is an in-memory depreciation ledger.
type MockDepreciationRepository struct {
	mu     sync.RWMutex
	rows   []domain.DepreciationEntry
	nextID int64

	InsertFunc func(ctx context.Context, tx usecase.Transaction, entries []domain.DepreciationEntry) error
}

func NewMockDepreciationRepository() *MockDepreciationRepository {
	return &MockDepreciationRepository{}
}

func (m *MockDepreciationRepository) Insert(ctx context.Context, tx usecase.Transaction, entries []domain.DepreciationEntry) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.nextID++
		e.ID = m.nextID
		m.rows = append(m.rows, e)
	}
	return nil
}

func (m *MockDepreciationRepository) LastOrdinalBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ordinal int64
	for _, r := range m.rows {
		if r.AssetCode == assetCode && r.Period.Compare(period) < 0 && r.ID > ordinal {
			ordinal = r.ID
		}
	}
	return ordinal, nil
}

func (m *MockDepreciationRepository) DeleteAfterOrdinal(ctx context.Context, tx usecase.Transaction, assetCode string, ordinal int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var deleted int64
	for _, r := range m.rows {
		if r.AssetCode == assetCode && r.ID > ordinal {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return deleted, nil
}

func (m *MockDepreciationRepository) SumBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.rows {
		if r.AssetCode == assetCode && r.Period.Compare(period) < 0 {
			sum = sum.Add(r.Amount)
		}
	}
	return sum, nil
}

func (m *MockDepreciationRepository) History(ctx context.Context, assetCode string) ([]domain.DepreciationEntry, error) {
	return m.Range(ctx, assetCode, domain.PeriodRange{From: "01-0001", To: "12-9999"})
}

func (m *MockDepreciationRepository) Range(ctx context.Context, assetCode string, r domain.PeriodRange) ([]domain.DepreciationEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.DepreciationEntry
	for _, row := range m.rows {
		if row.AssetCode == assetCode && r.Contains(row.Period) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period.Compare(out[j].Period) < 0 })
	return out, nil
}

func (m *MockDepreciationRepository) LastOfYear(ctx context.Context, assetCode string, year int) (*domain.DepreciationEntry, error) {
	rows, _ := m.Range(ctx, assetCode, domain.PeriodRange{From: domain.NewPeriodKey(1, year), To: domain.NewPeriodKey(12, year)})
	if len(rows) == 0 {
		return nil, nil
	}
	last := rows[len(rows)-1]
	return &last, nil
}

func (m *MockDepreciationRepository) Total(ctx context.Context, filter domain.DepreciationTotalFilter) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.rows {
		if filter.Range != nil && !filter.Range.Contains(r.Period) {
			continue
		}
		sum = sum.Add(r.Amount)
	}
	return sum, nil
}

// Rows returns a snapshot of every row in id order.
func (m *MockDepreciationRepository) Rows() []domain.DepreciationEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.DepreciationEntry(nil), m.rows...)
}

// MockTransactionLogRepository is an in-memory lifecycle log.
type MockTransactionLogRepository struct {
	mu      sync.RWMutex
	records []*domain.Transaction
}

func NewMockTransactionLogRepository() *MockTransactionLogRepository {
	return &MockTransactionLogRepository{}
}

func (m *MockTransactionLogRepository) Append(ctx context.Context, tx usecase.Transaction, record *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockTransactionLogRepository) ExistsByType(ctx context.Context, tx usecase.Transaction, assetCode string, txType domain.TransactionType) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.AssetCode == assetCode && r.Type == txType {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTransactionLogRepository) ListByAsset(ctx context.Context, assetCode string) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, r := range m.records {
		if r.AssetCode == assetCode {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockOutboxRepository collects outbox events in memory.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			at := publishedAt
			e.PublishedAt = &at
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.events[:0]
	for _, e := range m.events {
		if e.Published && e.PublishedAt != nil && e.PublishedAt.Before(before) {
			continue
		}
		kept = append(kept, e)
	}
	m.events = kept
	return nil
}

// EventTypes returns the recorded event types in order.
func (m *MockOutboxRepository) EventTypes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.EventType)
	}
	return out
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu        sync.Mutex
	commits   int
	rollbacks int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{manager: m}, nil
}

// Commits returns how many transactions were committed.
func (m *MockTransactionManager) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	manager *MockTransactionManager
	done    bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	if m.manager != nil && !m.done {
		m.manager.mu.Lock()
		m.manager.commits++
		m.manager.mu.Unlock()
	}
	m.done = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if m.manager != nil && !m.done {
		m.manager.mu.Lock()
		m.manager.rollbacks++
		m.manager.mu.Unlock()
	}
	m.done = true
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Value returns the stored value for key.
func (m *MockIdempotencyStore) Value(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}
