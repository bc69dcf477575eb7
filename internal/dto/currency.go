package dto

import (
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// RateToUSD means: 1 unit of this currency = RateToUSD USD.
type CreateCurrencyRequest struct {
	Code      string          `json:"code" binding:"required,uppercase,min=2,max=5" example:"USD"`
	Name      string          `json:"name" binding:"required" example:"US Dollar"`
	Symbol    string          `json:"symbol" binding:"required" example:"$"`
	RateToUSD decimal.Decimal `json:"rateToUSD" binding:"required,nonnegdecimal" example:"1.0"`
	IsActive  *bool           `json:"isActive,omitempty"` // defaults to true when omitted
}

// UpdateCurrencyRequest defines the optional fields of a partial currency
// update. The code itself is immutable and absent here.
type UpdateCurrencyRequest struct {
	Name      *string          `json:"name,omitempty" example:"US Dollar"`
	Symbol    *string          `json:"symbol,omitempty" example:"$"`
	RateToUSD *decimal.Decimal `json:"rateToUSD,omitempty" example:"1.0"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCurrencyRequest) ToPatch() domain.CurrencyPatch {
	return domain.CurrencyPatch{
		Name:      r.Name,
		Symbol:    r.Symbol,
		RateToUSD: r.RateToUSD,
		IsActive:  r.IsActive,
	}
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	RateToUSD     decimal.Decimal `json:"rateToUSD"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:          curr.Code,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		RateToUSD:     curr.RateToUSD,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// RateHistoryEntryResponse defines the data returned for one rate change.
type RateHistoryEntryResponse struct {
	CurrencyCode string           `json:"currencyCode"`
	PreviousRate *decimal.Decimal `json:"previousRate"` // null for the creation entry
	NewRate      decimal.Decimal  `json:"newRate"`
	ChangedBy    string           `json:"changedBy"`
	ChangedAt    time.Time        `json:"changedAt"`
}

// ToRateHistoryResponse converts a slice of domain entries to DTOs.
func ToRateHistoryResponse(entries []domain.RateHistoryEntry) []RateHistoryEntryResponse {
	res := make([]RateHistoryEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = RateHistoryEntryResponse{
			CurrencyCode: e.CurrencyCode,
			PreviousRate: e.PreviousRate,
			NewRate:      e.NewRate,
			ChangedBy:    e.ChangedBy,
			ChangedAt:    e.ChangedAt,
		}
	}
	return res
}
