package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/adapters/database/pgsql"
	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/fxdesk/currency_exchange_app/internal/core/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/platform/config"
	"github.com/fxdesk/currency_exchange_app/internal/utils"
	"github.com/fxdesk/currency_exchange_app/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Admin123!"
)

// seedCurrency is one row of the default catalog. RateToUSD means: 1 unit of
// the currency = RateToUSD USD; USD is the base row with rate 1.0.
type seedCurrency struct {
	code   string
	name   string
	symbol string
	rate   string
}

var seedCurrencies = []seedCurrency{
	{"USD", "US Dollar", "$", "1.0"},
	{"SYP", "Syrian Pound", "£", "0.000077"},
	{"EUR", "Euro", "€", "0.92"},
	{"TRY", "Turkish Lira", "₺", "0.031"},
}

// Idempotent database seeder: creates the admin user and the default
// currency catalog through the exchange service so every currency gets its
// initial rate-history entry.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryContainer(dbPool)
	exchangeService := services.NewExchangeService(repos.Currency, repos.RateHistory)

	logger.Info("Seeding admin user", slog.String("email", adminEmail))
	admin, err := repos.User.FindUserByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		logger.Info("Admin user already exists, skipping")
	case errors.Is(err, apperrors.ErrNotFound):
		admin, err = createAdminUser(ctx, repos)
		if err != nil {
			logger.Error("Failed to create admin user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Admin user created", slog.String("user_id", admin.UserID))
	default:
		logger.Error("Failed to look up admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	actor := domain.Actor{UserID: admin.UserID, Role: domain.RoleAdmin}

	for _, sc := range seedCurrencies {
		rate, err := decimal.NewFromString(sc.rate)
		if err != nil {
			logger.Error("Invalid seed rate", slog.String("code", sc.code), slog.String("error", err.Error()))
			os.Exit(1)
		}

		created, err := exchangeService.CreateCurrency(ctx, dto.CreateCurrencyRequest{
			Code:      sc.code,
			Name:      sc.name,
			Symbol:    sc.symbol,
			RateToUSD: rate,
		}, actor)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Info("Currency already exists, skipping", slog.String("code", sc.code))
				continue
			}
			logger.Error("Failed to create currency", slog.String("code", sc.code), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Currency created",
			slog.String("code", created.Code),
			slog.String("rate_to_usd", created.RateToUSD.String()),
		)
	}

	logger.Info("Seeder completed successfully")
}

func createAdminUser(ctx context.Context, repos *pgsql.RepositoryContainer) (*domain.User, error) {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userID := uuid.NewString()
	admin := domain.User{
		UserID:       userID,
		FirstName:    "Admin",
		LastName:     "User",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := repos.User.SaveUser(ctx, admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
