package pgsql

import (
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles all pgsql-backed repositories.
type RepositoryContainer struct {
	Currency    portsrepo.CurrencyRepositoryFacade
	RateHistory portsrepo.RateHistoryRepository
	User        portsrepo.UserRepositoryFacade
	Contact     portsrepo.ContactRepository
}

// NewRepositoryContainer creates all repositories over one shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Currency:    NewPgxCurrencyRepository(pool),
		RateHistory: NewPgxRateHistoryRepository(pool),
		User:        NewPgxUserRepository(pool),
		Contact:     NewPgxContactRepository(pool),
	}
}
