package dto

import (
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
)

// CreateContactRequest defines the data of a contact-form submission.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"John Doe"`
	Email   string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Subject string `json:"subject" binding:"required,min=3,max=200" example:"Inquiry about exchange rates"`
	Message string `json:"message" binding:"required,min=10,max=2000" example:"I would like to know more about your exchange rates."`
}

// ContactMessageResponse defines the data returned for a contact message.
type ContactMessageResponse struct {
	MessageID string    `json:"messageID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToContactMessageResponse converts a domain.ContactMessage to a DTO.
func ToContactMessageResponse(msg *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: msg.MessageID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}

// ToListContactMessageResponse converts a slice of domain messages to DTOs.
func ToListContactMessageResponse(msgs []domain.ContactMessage) []ContactMessageResponse {
	res := make([]ContactMessageResponse, len(msgs))
	for i, m := range msgs {
		res[i] = ToContactMessageResponse(&m)
	}
	return res
}
