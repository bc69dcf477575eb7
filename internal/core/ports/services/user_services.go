package services

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
)

// UserSvcFacade defines user registration and credential verification.
type UserSvcFacade interface {
	// RegisterUser creates a new user with the USER role.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies email+password and returns the user.
	// Returns apperrors.ErrUnauthorized on bad credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by primary key.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
