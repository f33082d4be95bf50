package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mahanteshk/foliochat/internal/domain"
)

// MemoryStore holds every record for the lifetime of the process. Projects
// and blog posts are seeded once and read-only; contact and chat messages
// are append-only. The store is constructed explicitly and injected into
// services so tests get isolated instances.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []domain.Project
	posts    []domain.BlogPost
	contacts []domain.ContactMessage
	chats    []domain.ChatMessage
}

// NewMemoryStore creates a store seeded with the portfolio fixtures.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: seedProjects(),
		posts:    seedBlogPosts(),
	}
}

// RecordContact stores a contact form submission with a fresh id and a
// server-assigned timestamp and returns the stored record.
func (s *MemoryStore) RecordContact(name, email, message string) domain.ContactMessage {
	record := domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, record)
	s.mu.Unlock()

	return record
}

// RecordChat stores a chat exchange with a fresh id and a server-assigned
// timestamp and returns the stored record.
func (s *MemoryStore) RecordChat(message, response string) domain.ChatMessage {
	record := domain.ChatMessage{
		ID:        uuid.NewString(),
		Message:   message,
		Response:  response,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.chats = append(s.chats, record)
	s.mu.Unlock()

	return record
}

// Projects returns the seeded projects in insertion order.
func (s *MemoryStore) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// BlogPosts returns the seeded blog posts in insertion order.
func (s *MemoryStore) BlogPosts() []domain.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// ContactMessages returns all stored contact messages in insertion order.
func (s *MemoryStore) ContactMessages() []domain.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ContactMessage, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// ChatMessages returns all stored chat messages in insertion order.
func (s *MemoryStore) ChatMessages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatMessage, len(s.chats))
	copy(out, s.chats)
	return out
}
