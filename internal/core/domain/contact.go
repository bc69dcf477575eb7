package domain

import "time"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	MessageID string    `json:"messageID"` // Primary key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Stored lowercase
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
