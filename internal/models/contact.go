package models

import "time"

// ContactMessage is the database representation of a contact form row.
type ContactMessage struct {
	MessageID string    `db:"message_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	Resolved  bool      `db:"resolved"`
	CreatedAt time.Time `db:"created_at"`
}
