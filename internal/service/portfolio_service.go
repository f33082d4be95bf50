package service

import (
	"context"

	"github.com/mahanteshk/foliochat/internal/domain"
	"github.com/mahanteshk/foliochat/internal/repository"
)

// PortfolioService exposes the read-only portfolio fixtures.
type PortfolioService struct {
	store *repository.MemoryStore
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(store *repository.MemoryStore) *PortfolioService {
	return &PortfolioService{store: store}
}

// Projects returns all projects in seed order.
func (s *PortfolioService) Projects(ctx context.Context) ([]domain.Project, error) {
	return s.store.Projects(), nil
}

// BlogPosts returns all blog posts in seed order.
func (s *PortfolioService) BlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.store.BlogPosts(), nil
}
