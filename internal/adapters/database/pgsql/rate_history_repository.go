package pgsql

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// pgxExecer abstracts over *pgxpool.Pool and pgx.Tx so the history append
// runs both standalone and inside the currency repository's transactions.
type pgxExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgxRateHistoryRepository implements the append-only rate audit trail using
// pgxpool. The table has no UPDATE or DELETE path anywhere in the codebase.
type PgxRateHistoryRepository struct {
	BaseRepository
}

// NewPgxRateHistoryRepository creates a new repository for rate history data.
func NewPgxRateHistoryRepository(pool *pgxpool.Pool) *PgxRateHistoryRepository {
	return &PgxRateHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateHistoryRepository = (*PgxRateHistoryRepository)(nil)

// AppendRateHistory persists a new entry outside any larger transaction, for
// callers appending to the log directly (backfills, operational tooling).
// The engine's create/update paths are superseded by the currency
// repository, which runs the same append inside the transaction that mutates
// the currency row.
func (r *PgxRateHistoryRepository) AppendRateHistory(ctx context.Context, entry domain.RateHistoryEntry) error {
	return appendRateHistory(ctx, r.Pool, entry)
}

// appendRateHistory writes one history row through db, which may be a pool
// or an open transaction.
func appendRateHistory(ctx context.Context, db pgxExecer, entry domain.RateHistoryEntry) error {
	previous := decimal.NullDecimal{}
	if entry.PreviousRate != nil {
		previous = decimal.NullDecimal{Decimal: *entry.PreviousRate, Valid: true}
	}
	_, err := db.Exec(ctx, `
		INSERT INTO rate_history (entry_id, currency_code, previous_rate, new_rate, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.EntryID, entry.CurrencyCode, previous, entry.NewRate, entry.ChangedBy, entry.ChangedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append rate history for "+entry.CurrencyCode, mapStorageError(err))
	}
	return nil
}

// ListRateHistoryForCurrency returns all entries for a code, oldest first.
func (r *PgxRateHistoryRepository) ListRateHistoryForCurrency(ctx context.Context, code string) ([]domain.RateHistoryEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, currency_code, previous_rate, new_rate, changed_by, changed_at
		FROM rate_history
		WHERE currency_code = $1
		ORDER BY changed_at, entry_id`, code,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rate history for "+code, mapStorageError(err))
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RateHistoryEntry, error) {
		var entry domain.RateHistoryEntry
		var previous decimal.NullDecimal
		err := row.Scan(&entry.EntryID, &entry.CurrencyCode, &previous, &entry.NewRate, &entry.ChangedBy, &entry.ChangedAt)
		if previous.Valid {
			entry.PreviousRate = &previous.Decimal
		}
		return entry, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan rate history for "+code, mapStorageError(err))
	}

	if entries == nil {
		entries = []domain.RateHistoryEntry{}
	}
	return entries, nil
}
