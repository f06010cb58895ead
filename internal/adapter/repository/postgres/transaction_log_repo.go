package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// TransactionLogRepository implements usecase.TransactionLogRepository.
// The log is append-only.
type TransactionLogRepository struct {
	queries *generated.Queries
}

// NewTransactionLogRepository creates a new TransactionLogRepository.
func NewTransactionLogRepository(pool *pgxpool.Pool) *TransactionLogRepository {
	return newTransactionLogRepository(pool)
}

func newTransactionLogRepository(db generated.DBTX) *TransactionLogRepository {
	return &TransactionLogRepository{queries: generated.New(db)}
}

// Append writes a lifecycle record within a transaction.
func (r *TransactionLogRepository) Append(ctx context.Context, tx usecase.Transaction, record *domain.Transaction) error {
	return txQueries(tx).CreateAssetTransaction(ctx, generated.CreateAssetTransactionParams{
		ID:        record.ID,
		AssetCode: record.AssetCode,
		PeriodKey: record.Period.String(),
		Type:      string(record.Type),
		TxDate:    timeToPgTimestamptz(record.Date),
		Amount:    decimalToNumeric(record.Amount.Round(domain.LedgerPlaces)),
		Cost:      decimalToNumeric(record.Cost.Round(domain.LedgerPlaces)),
		CreatedAt: timeToPgTimestamptz(record.CreatedAt),
	})
}

// ExistsByType reports whether the asset already has a record of txType.
func (r *TransactionLogRepository) ExistsByType(ctx context.Context, tx usecase.Transaction, assetCode string, txType domain.TransactionType) (bool, error) {
	return txQueries(tx).AssetTransactionExists(ctx, generated.AssetTransactionExistsParams{
		AssetCode: assetCode,
		Type:      string(txType),
	})
}

// ListByAsset returns the asset's records oldest first.
func (r *TransactionLogRepository) ListByAsset(ctx context.Context, assetCode string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListAssetTransactions(ctx, assetCode)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.Transaction{
			ID:        row.ID,
			AssetCode: row.AssetCode,
			Period:    domain.PeriodKey(row.PeriodKey),
			Type:      domain.TransactionType(row.Type),
			Date:      row.TxDate.Time,
			Amount:    numericToDecimal(row.Amount),
			Cost:      numericToDecimal(row.Cost),
			CreatedAt: row.CreatedAt.Time,
		})
	}

	return records, nil
}
