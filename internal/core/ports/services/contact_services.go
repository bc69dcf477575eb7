package services

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
)

// ContactSvcFacade defines the contact mailbox operations. Submission is
// public; listing and deletion are admin operations.
type ContactSvcFacade interface {
	SubmitContactMessage(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, error)
	ListContactMessages(ctx context.Context, actor domain.Actor) ([]domain.ContactMessage, error)
	GetContactMessage(ctx context.Context, messageID string, actor domain.Actor) (*domain.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, messageID string, actor domain.Actor) error
}
