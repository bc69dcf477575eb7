package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
)

// ContactService handles the contact-form mailbox. Submission is public;
// reading and deleting messages are admin operations.
type ContactService struct {
	contactRepo portsrepo.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*ContactService)(nil)

// SubmitContactMessage stores a contact-form submission.
func (s *ContactService) SubmitContactMessage(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	return &msg, nil
}

// ListContactMessages returns all messages, newest first.
func (s *ContactService) ListContactMessages(ctx context.Context, actor domain.Actor) ([]domain.ContactMessage, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may list contact messages", apperrors.ErrForbidden)
	}
	msgs, err := s.contactRepo.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if msgs == nil {
		return []domain.ContactMessage{}, nil
	}
	return msgs, nil
}

// GetContactMessage retrieves one message by ID.
func (s *ContactService) GetContactMessage(ctx context.Context, messageID string, actor domain.Actor) (*domain.ContactMessage, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may read contact messages", apperrors.ErrForbidden)
	}
	msg, err := s.contactRepo.FindContactMessageByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return msg, nil
}

// DeleteContactMessage removes one message by ID.
func (s *ContactService) DeleteContactMessage(ctx context.Context, messageID string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may delete contact messages", apperrors.ErrForbidden)
	}
	if err := s.contactRepo.DeleteContactMessage(ctx, messageID); err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
