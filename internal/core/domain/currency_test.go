package domain_test

import (
	"testing"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CurrencyPatchTestSuite struct {
	suite.Suite
	current domain.Currency
	actorID string
	now     time.Time
}

func (suite *CurrencyPatchTestSuite) SetupTest() {
	suite.actorID = "actor-1"
	suite.now = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	suite.current = domain.Currency{
		CurrencyID: "id-1",
		Code:       "EUR",
		Name:       "Euro",
		Symbol:     "€",
		RateToUSD:  decimal.RequireFromString("0.92"),
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     suite.now.Add(-24 * time.Hour),
			CreatedBy:     "creator-1",
			LastUpdatedAt: suite.now.Add(-24 * time.Hour),
			LastUpdatedBy: "creator-1",
		},
	}
}

func (suite *CurrencyPatchTestSuite) TestApply_NameOnlyDoesNotChangeRate() {
	name := "Common Euro"
	patch := domain.CurrencyPatch{Name: &name}

	updated, rateChanged := patch.Apply(suite.current, suite.actorID, suite.now)

	suite.False(rateChanged)
	suite.Equal("Common Euro", updated.Name)
	suite.True(updated.RateToUSD.Equal(suite.current.RateToUSD))
	suite.Equal(suite.actorID, updated.LastUpdatedBy)
	suite.Equal(suite.now, updated.LastUpdatedAt)
	// Creation audit fields and the code stay untouched.
	suite.Equal(suite.current.CreatedBy, updated.CreatedBy)
	suite.Equal(suite.current.Code, updated.Code)
}

func (suite *CurrencyPatchTestSuite) TestApply_RateChange() {
	newRate := decimal.RequireFromString("0.95")
	patch := domain.CurrencyPatch{RateToUSD: &newRate}

	updated, rateChanged := patch.Apply(suite.current, suite.actorID, suite.now)

	suite.True(rateChanged)
	suite.True(updated.RateToUSD.Equal(newRate))
	suite.Equal("Euro", updated.Name)
}

func (suite *CurrencyPatchTestSuite) TestApply_EqualRateIsNoOp() {
	// Same value at a different exponent still compares equal.
	sameRate := decimal.RequireFromString("0.9200")
	patch := domain.CurrencyPatch{RateToUSD: &sameRate}

	updated, rateChanged := patch.Apply(suite.current, suite.actorID, suite.now)

	suite.False(rateChanged)
	suite.True(updated.RateToUSD.Equal(suite.current.RateToUSD))
}

func (suite *CurrencyPatchTestSuite) TestApply_DeactivateWithoutRate() {
	inactive := false
	patch := domain.CurrencyPatch{IsActive: &inactive}

	updated, rateChanged := patch.Apply(suite.current, suite.actorID, suite.now)

	suite.False(rateChanged)
	suite.False(updated.IsActive)
}

func (suite *CurrencyPatchTestSuite) TestApply_CombinedPatch() {
	name := "Renamed"
	symbol := "E"
	newRate := decimal.RequireFromString("1.01")
	inactive := false
	patch := domain.CurrencyPatch{Name: &name, Symbol: &symbol, RateToUSD: &newRate, IsActive: &inactive}

	updated, rateChanged := patch.Apply(suite.current, suite.actorID, suite.now)

	suite.True(rateChanged)
	suite.Equal("Renamed", updated.Name)
	suite.Equal("E", updated.Symbol)
	suite.False(updated.IsActive)
	suite.True(updated.RateToUSD.Equal(newRate))
}

func (suite *CurrencyPatchTestSuite) TestNewRateChangeEntry_CapturesPreviousRate() {
	previous := suite.current.RateToUSD
	next := decimal.RequireFromString("0.95")

	entry := domain.NewRateChangeEntry(suite.current.Code, previous, next, suite.actorID, suite.now)

	suite.NotEmpty(entry.EntryID)
	suite.Equal("EUR", entry.CurrencyCode)
	suite.Require().NotNil(entry.PreviousRate)
	suite.True(entry.PreviousRate.Equal(decimal.RequireFromString("0.92")))
	suite.True(entry.NewRate.Equal(next))
	suite.Equal(suite.actorID, entry.ChangedBy)
	suite.Equal(suite.now, entry.ChangedAt)
}

func (suite *CurrencyPatchTestSuite) TestIsEmpty() {
	suite.True(domain.CurrencyPatch{}.IsEmpty())
	name := "x"
	suite.False(domain.CurrencyPatch{Name: &name}.IsEmpty())
}

func TestCurrencyPatchTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyPatchTestSuite))
}
