package domain

import "time"

// ContactMessage is an enquiry submitted through the public contact form.
type ContactMessage struct {
	MessageID string    `json:"messageID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
}
