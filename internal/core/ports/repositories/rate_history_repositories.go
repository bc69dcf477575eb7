package repositories

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
)

// RateHistoryRepository is the append-only audit trail of rate changes.
// There is deliberately no update or delete operation: once a rate change is
// recorded it cannot be altered or hidden.
type RateHistoryRepository interface {
	// AppendRateHistory persists a new entry. Fails only on malformed input
	// or storage unavailability (apperrors.ErrUnavailable). The engine's
	// create/update paths append through the currency store's transactions
	// instead; this standalone append serves direct log writers such as
	// backfills.
	AppendRateHistory(ctx context.Context, entry domain.RateHistoryEntry) error

	// ListRateHistoryForCurrency returns all entries for a currency code,
	// ordered oldest to newest.
	ListRateHistoryForCurrency(ctx context.Context, code string) ([]domain.RateHistoryEntry, error)
}
