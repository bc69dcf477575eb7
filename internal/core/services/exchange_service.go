package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// conversionScale is the number of fractional digits conversion results are
// rounded to (half to even). 6 matches the smallest practical exchange-rate
// resolution; display rounding is left to callers.
const conversionScale = 6

// ExchangeService is the only component allowed to mutate currency state. It
// enforces authorization and validation, pairs every rate mutation with its
// history entry, and performs conversions.
type ExchangeService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	historyRepo  portsrepo.RateHistoryRepository
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(currencyRepo portsrepo.CurrencyRepositoryFacade, historyRepo portsrepo.RateHistoryRepository) *ExchangeService {
	return &ExchangeService{
		currencyRepo: currencyRepo,
		historyRepo:  historyRepo,
	}
}

var _ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)

// NormalizeCurrencyCode uppercases and trims a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateCurrency creates a new currency and its initial rate-history entry.
// Only admins may create currencies.
func (s *ExchangeService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may create currencies", apperrors.ErrForbidden)
	}

	code := NormalizeCurrencyCode(req.Code)
	if code == "" {
		return nil, apperrors.NewValidationError("currency code must not be empty")
	}
	if req.RateToUSD.IsNegative() {
		return nil, fmt.Errorf("%w: rateToUSD must not be negative", apperrors.ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       code,
		Name:       req.Name,
		Symbol:     req.Symbol,
		RateToUSD:  req.RateToUSD,
		IsActive:   isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	initialEntry := domain.RateHistoryEntry{
		EntryID:      uuid.NewString(),
		CurrencyCode: code,
		PreviousRate: nil,
		NewRate:      req.RateToUSD,
		ChangedBy:    actor.UserID,
		ChangedAt:    now,
	}

	// Insert and initial history entry go into one storage transaction; on a
	// duplicate code nothing is written.
	if err := s.currencyRepo.InsertCurrency(ctx, currency, initialEntry); err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", code, err)
	}

	return &currency, nil
}

// UpdateCurrency applies a partial update to an existing currency. A changed
// RateToUSD produces exactly one new history entry capturing the prior rate;
// non-rate edits and rate-equal no-ops write no history. Only admins may
// update currencies.
func (s *ExchangeService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may update currencies", apperrors.ErrForbidden)
	}

	code = NormalizeCurrencyCode(code)
	if code == "" {
		return nil, apperrors.NewValidationError("currency code must not be empty")
	}
	if req.RateToUSD != nil && req.RateToUSD.IsNegative() {
		return nil, fmt.Errorf("%w: rateToUSD must not be negative", apperrors.ErrValidation)
	}

	// The repository performs the read-modify-write and the conditional
	// history append under a row lock in a single transaction, so the
	// recorded PreviousRate always matches the persisted prior state even
	// under concurrent updates to the same code.
	updated, err := s.currencyRepo.UpdateCurrency(ctx, code, req.ToPatch(), actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", code, err)
	}

	return updated, nil
}

// GetCurrency retrieves a currency by code. No authorization required.
func (s *ExchangeService) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	code = NormalizeCurrencyCode(code)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

// ListCurrencies retrieves currencies ordered by code. Inactive currencies
// remain visible for historical lookups when includeInactive is set.
func (s *ExchangeService) ListCurrencies(ctx context.Context, includeInactive bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ListRateHistory retrieves the rate audit trail for a currency, oldest first.
func (s *ExchangeService) ListRateHistory(ctx context.Context, code string) ([]domain.RateHistoryEntry, error) {
	code = NormalizeCurrencyCode(code)
	// Resolve the currency first so an unknown code surfaces as not-found
	// rather than an empty trail.
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", code, err)
	}
	entries, err := s.historyRepo.ListRateHistoryForCurrency(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history for %s: %w", code, err)
	}
	if entries == nil {
		return []domain.RateHistoryEntry{}, nil
	}
	return entries, nil
}

// Convert converts amount from one active currency to another by pivoting
// through the base currency: amountInUSD = amount * rate(from), result =
// amountInUSD / rate(to). The result is rounded half to even at 6 fractional
// digits. No authorization required.
func (s *ExchangeService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	fromCode = NormalizeCurrencyCode(fromCode)
	toCode = NormalizeCurrencyCode(toCode)

	// Identity short-circuit: no lookup, no division.
	if fromCode == toCode {
		return amount, nil
	}

	from, err := s.lookupActiveCurrency(ctx, fromCode)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := s.lookupActiveCurrency(ctx, toCode)
	if err != nil {
		return decimal.Zero, err
	}

	if to.RateToUSD.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: currency %s has a zero rate and cannot be a conversion target", apperrors.ErrValidation, toCode)
	}

	amountInUSD := amount.Mul(from.RateToUSD)
	return amountInUSD.Div(to.RateToUSD).RoundBank(conversionScale), nil
}

func (s *ExchangeService) lookupActiveCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", code, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInactiveCurrency, code)
	}
	return currency, nil
}
