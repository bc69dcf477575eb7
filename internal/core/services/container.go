package services

import (
	"github.com/fxdesk/currency_exchange_app/internal/adapters/database/pgsql"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewServiceContainer wires the pgsql repositories into the service layer.
func NewServiceContainer(pool *pgxpool.Pool) *portssvc.ServiceContainer {
	repos := pgsql.NewRepositoryContainer(pool)

	return &portssvc.ServiceContainer{
		Exchange: NewExchangeService(repos.Currency, repos.RateHistory),
		User:     NewUserService(repos.User),
		Contact:  NewContactService(repos.Contact),
	}
}
