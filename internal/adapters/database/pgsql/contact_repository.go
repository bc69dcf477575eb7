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

// PgxContactRepository implements the contact mailbox store using pgxpool.
type PgxContactRepository struct {
	BaseRepository
}

// NewPgxContactRepository creates a new repository for contact messages.
func NewPgxContactRepository(pool *pgxpool.Pool) *PgxContactRepository {
	return &PgxContactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

// SaveContactMessage persists a new contact message.
func (r *PgxContactRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO contact_messages (message_id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.MessageID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save contact message", mapStorageError(err))
	}
	return nil
}

// FindContactMessageByID retrieves a message by primary key.
func (r *PgxContactRepository) FindContactMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := r.Pool.QueryRow(ctx, `
		SELECT message_id, name, email, subject, message, created_at
		FROM contact_messages
		WHERE message_id = $1`, messageID,
	).Scan(&msg.MessageID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("contact message not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find contact message", mapStorageError(err))
	}
	return &msg, nil
}

// ListContactMessages returns all messages, newest first.
func (r *PgxContactRepository) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT message_id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contact messages", mapStorageError(err))
	}
	defer rows.Close()

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContactMessage, error) {
		var msg domain.ContactMessage
		err := row.Scan(&msg.MessageID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt)
		return msg, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan contact messages", mapStorageError(err))
	}

	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return msgs, nil
}

// DeleteContactMessage removes a message by primary key.
func (r *PgxContactRepository) DeleteContactMessage(ctx context.Context, messageID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contact_messages WHERE message_id = $1`, messageID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete contact message", mapStorageError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s: %w", messageID, apperrors.ErrNotFound)
	}
	return nil
}
