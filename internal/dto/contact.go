package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
)

// CreateContactMessageRequest is the payload for the public contact form.
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ListContactMessagesParams defines query parameters for the admin listing.
type ListContactMessagesParams struct {
	IncludeResolved bool `form:"includeResolved"`
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
}

// ListContactMessagesResponse wraps the list of messages.
type ListContactMessagesResponse struct {
	Messages []domain.ContactMessage `json:"messages"`
}
