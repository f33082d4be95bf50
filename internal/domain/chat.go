package domain

import "time"

// ChatMessage is a persisted chat exchange: the visitor's message together
// with the canned response it resolved to. Records are created once per
// accepted chat call and never mutated.
type ChatMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}
