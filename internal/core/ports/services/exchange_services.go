package services

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeReaderSvc defines the public (unauthenticated) read operations of
// the exchange rate engine.
type ExchangeReaderSvc interface {
	// GetCurrency retrieves a currency by code.
	GetCurrency(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by code; inactive rows are
	// included only when includeInactive is set.
	ListCurrencies(ctx context.Context, includeInactive bool) ([]domain.Currency, error)

	// ListRateHistory retrieves the rate audit trail for a currency, oldest first.
	ListRateHistory(ctx context.Context, code string) ([]domain.RateHistoryEntry, error)

	// Convert converts amount from one active currency to another, pivoting
	// through the base currency.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeWriterSvc defines the admin-gated mutating operations of the engine.
type ExchangeWriterSvc interface {
	// CreateCurrency creates a currency and its initial history entry.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error)

	// UpdateCurrency applies a partial update; a changed rate produces
	// exactly one new history entry.
	UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest, actor domain.Actor) (*domain.Currency, error)
}

// ExchangeSvcFacade combines all exchange-related service interfaces.
type ExchangeSvcFacade interface {
	ExchangeReaderSvc
	ExchangeWriterSvc
}
