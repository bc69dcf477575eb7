package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency and its price relative to the base
// currency (USD). The base currency is stored as a normal row with
// RateToUSD = 1.0.
type Currency struct {
	CurrencyID string          `json:"currencyID"` // Internal primary key (UUID)
	Code       string          `json:"code"`       // Business key, unique, uppercase (e.g. "USD"); immutable after creation
	Name       string          `json:"name"`       // e.g. "US Dollar"
	Symbol     string          `json:"symbol"`     // e.g. "$"
	RateToUSD  decimal.Decimal `json:"rateToUSD"`  // 1 unit of this currency = RateToUSD USD; always >= 0
	IsActive   bool            `json:"isActive"`   // Inactive currencies are excluded from conversion
	AuditFields
}

// CurrencyPatch carries the optional fields of a partial currency update.
// Nil means "leave unchanged". Code is deliberately absent: it is immutable.
type CurrencyPatch struct {
	Name      *string
	Symbol    *string
	RateToUSD *decimal.Decimal
	IsActive  *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p CurrencyPatch) IsEmpty() bool {
	return p.Name == nil && p.Symbol == nil && p.RateToUSD == nil && p.IsActive == nil
}

// Apply returns a copy of current with the patch's non-nil fields applied and
// the audit fields stamped with actorID and now. The second return value
// reports whether RateToUSD actually changed: a patch that carries a rate
// numerically equal to the current one counts as unchanged, so no history
// entry is owed for it.
func (p CurrencyPatch) Apply(current Currency, actorID string, now time.Time) (Currency, bool) {
	updated := current
	if p.Name != nil {
		updated.Name = *p.Name
	}
	if p.Symbol != nil {
		updated.Symbol = *p.Symbol
	}
	if p.IsActive != nil {
		updated.IsActive = *p.IsActive
	}
	rateChanged := false
	if p.RateToUSD != nil && !p.RateToUSD.Equal(current.RateToUSD) {
		updated.RateToUSD = *p.RateToUSD
		rateChanged = true
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID
	return updated, rateChanged
}
