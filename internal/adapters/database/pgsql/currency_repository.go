package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, code, name, symbol, rate_to_usd, is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxCurrencyRepository implements the currency store using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// InsertCurrency persists a new currency together with its initial history
// entry in one transaction. A code collision rolls everything back and
// surfaces as apperrors.ErrDuplicate.
func (r *PgxCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency, initialEntry domain.RateHistoryEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO currencies (currency_id, code, name, symbol, rate_to_usd, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		currency.CurrencyID, currency.Code, currency.Name, currency.Symbol,
		currency.RateToUSD, currency.IsActive,
		currency.CreatedAt, currency.CreatedBy, currency.LastUpdatedAt, currency.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("currency %s: %w", currency.Code, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert currency "+currency.Code, mapStorageError(err))
	}

	if err := appendRateHistory(ctx, tx, initialEntry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateCurrency applies the patch under a row lock and appends a history
// entry iff the rate actually changed, all in one transaction. The lock keeps
// the recorded previous rate consistent with the persisted prior state under
// concurrent updates to the same code.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, code string, patch domain.CurrencyPatch, actorID string) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var current domain.Currency
	err = tx.QueryRow(ctx, `
		SELECT `+currencyColumns+`
		FROM currencies
		WHERE code = $1
		FOR UPDATE`, code,
	).Scan(
		&current.CurrencyID, &current.Code, &current.Name, &current.Symbol,
		&current.RateToUSD, &current.IsActive,
		&current.CreatedAt, &current.CreatedBy, &current.LastUpdatedAt, &current.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to lock currency "+code, mapStorageError(err))
	}

	updated, rateChanged := patch.Apply(current, actorID, time.Now())

	_, err = tx.Exec(ctx, `
		UPDATE currencies
		SET name = $1, symbol = $2, rate_to_usd = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE code = $7`,
		updated.Name, updated.Symbol, updated.RateToUSD, updated.IsActive,
		updated.LastUpdatedAt, updated.LastUpdatedBy, code,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update currency "+code, mapStorageError(err))
	}

	if rateChanged {
		entry := domain.NewRateChangeEntry(code, current.RateToUSD, updated.RateToUSD, actorID, updated.LastUpdatedAt)
		if err := appendRateHistory(ctx, tx, entry); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindCurrencyByCode retrieves a currency by its normalized code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	var currency domain.Currency
	err := r.Pool.QueryRow(ctx, `
		SELECT `+currencyColumns+`
		FROM currencies
		WHERE code = $1`, code,
	).Scan(
		&currency.CurrencyID, &currency.Code, &currency.Name, &currency.Symbol,
		&currency.RateToUSD, &currency.IsActive,
		&currency.CreatedAt, &currency.CreatedBy, &currency.LastUpdatedAt, &currency.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by code "+code, mapStorageError(err))
	}
	return &currency, nil
}

// ListCurrencies retrieves currencies ordered by code; inactive rows only
// when includeInactive is set.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, includeInactive bool) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", mapStorageError(err))
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(
			&currency.CurrencyID, &currency.Code, &currency.Name, &currency.Symbol,
			&currency.RateToUSD, &currency.IsActive,
			&currency.CreatedAt, &currency.CreatedBy, &currency.LastUpdatedAt, &currency.LastUpdatedBy,
		)
		return currency, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan currencies", mapStorageError(err))
	}

	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

