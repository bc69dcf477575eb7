package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, first_name, last_name, email, password_hash, role, created_at, created_by, last_updated_at, last_updated_by`

// PgxUserRepository implements the user store using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new repository for user data.
func NewPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser persists a new user. A duplicate email surfaces as apperrors.ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.UserID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Role,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save user", mapStorageError(err))
	}
	return nil
}

// FindUserByID retrieves a user by primary key.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

// FindUserByEmail retrieves a user by lowercase email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PgxUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&user.UserID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.CreatedBy, &user.LastUpdatedAt, &user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user", mapStorageError(err))
	}
	return &user, nil
}
