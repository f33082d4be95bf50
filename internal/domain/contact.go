package domain

import "time"

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse acknowledges an accepted submission with the stored
// record.
type ContactResponse struct {
	Success bool           `json:"success"`
	Message ContactMessage `json:"message"`
}
