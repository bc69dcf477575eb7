package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateHistoryEntry is one immutable audit record of a rate change, attributing
// the change to an actor. Entries are append-only: no update or delete
// operation exists anywhere in the codebase.
type RateHistoryEntry struct {
	EntryID      string           `json:"entryID"`      // Internal primary key (UUID)
	CurrencyCode string           `json:"currencyCode"` // FK -> Currency.code
	PreviousRate *decimal.Decimal `json:"previousRate"` // nil for the entry written at currency creation
	NewRate      decimal.Decimal  `json:"newRate"`
	ChangedBy    string           `json:"changedBy"` // Actor user ID
	ChangedAt    time.Time        `json:"changedAt"`
}

// NewRateChangeEntry builds the audit record for a rate change on an existing
// currency. PreviousRate points at a copy of previous, so the entry stays
// stable if the caller's value is reused.
func NewRateChangeEntry(code string, previous, next decimal.Decimal, actorID string, now time.Time) RateHistoryEntry {
	prior := previous
	return RateHistoryEntry{
		EntryID:      uuid.NewString(),
		CurrencyCode: code,
		PreviousRate: &prior,
		NewRate:      next,
		ChangedBy:    actorID,
		ChangedAt:    now,
	}
}
