package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mahanteshk/foliochat/internal/domain"
	"github.com/mahanteshk/foliochat/internal/repository"
)

// ContactService records contact form submissions.
type ContactService struct {
	store *repository.MemoryStore
	log   *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(store *repository.MemoryStore, log *zap.Logger) *ContactService {
	return &ContactService{store: store, log: log}
}

// Submit persists a validated contact form submission and returns the
// stored record.
func (s *ContactService) Submit(ctx context.Context, req domain.ContactRequest) (domain.ContactMessage, error) {
	record := s.store.RecordContact(req.Name, req.Email, req.Message)

	s.log.Info("contact message received",
		zap.String("id", record.ID),
		zap.String("email", record.Email),
	)

	return record, nil
}
