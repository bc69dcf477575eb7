package repositories

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its normalized
	// (uppercase) code. Returns apperrors.ErrNotFound when absent.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by code. When
	// includeInactive is false only active currencies are returned.
	ListCurrencies(ctx context.Context, includeInactive bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data. Both operations
// pair the currency mutation with its rate-history append inside one storage
// transaction: the two succeed or fail together.
type CurrencyWriter interface {
	// InsertCurrency persists a new currency together with its initial
	// history entry (PreviousRate nil). Returns apperrors.ErrDuplicate when
	// the code already exists; in that case nothing is written.
	InsertCurrency(ctx context.Context, currency domain.Currency, initialEntry domain.RateHistoryEntry) error

	// UpdateCurrency applies the supplied patch fields to the currency row
	// under a row lock and, iff RateToUSD actually changed, appends exactly
	// one history entry whose PreviousRate is the locked row's value.
	// Returns the updated currency, or apperrors.ErrNotFound.
	UpdateCurrency(ctx context.Context, code string, patch domain.CurrencyPatch, actorID string) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
