package repositories

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
)

// ContactRepository stores contact-form messages.
type ContactRepository interface {
	// SaveContactMessage persists a new message.
	SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error

	// FindContactMessageByID retrieves a message by primary key. Returns
	// apperrors.ErrNotFound when absent.
	FindContactMessageByID(ctx context.Context, messageID string) (*domain.ContactMessage, error)

	// ListContactMessages returns all messages, newest first.
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)

	// DeleteContactMessage removes a message. Returns apperrors.ErrNotFound
	// when absent.
	DeleteContactMessage(ctx context.Context, messageID string) error
}
