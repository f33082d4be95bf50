package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mahanteshk/foliochat/internal/domain"
	"github.com/mahanteshk/foliochat/internal/repository"
)

// ChatService resolves visitor messages to canned responses and records the
// exchange.
type ChatService struct {
	store    *repository.MemoryStore
	resolver *Resolver
	log      *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(store *repository.MemoryStore, resolver *Resolver, log *zap.Logger) *ChatService {
	return &ChatService{
		store:    store,
		resolver: resolver,
		log:      log,
	}
}

// Chat resolves message and persists the exchange, returning the stored
// record.
func (s *ChatService) Chat(ctx context.Context, message string) (domain.ChatMessage, error) {
	response := s.resolver.Resolve(message)
	record := s.store.RecordChat(message, response)

	s.log.Debug("chat recorded",
		zap.String("id", record.ID),
		zap.Int("message_len", len(message)),
	)

	return record, nil
}
