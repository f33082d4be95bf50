package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mahanteshk/foliochat/internal/domain"
	"github.com/mahanteshk/foliochat/internal/repository"
)

func TestChatPersistsExchange(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewChatService(store, NewResolver(), zap.NewNop())

	record, err := svc.Chat(context.Background(), "Tell me about VrindaAI")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Contains(t, record.Response, "VrindaAI")

	stored := store.ChatMessages()
	require.Len(t, stored, 1)
	assert.Equal(t, "Tell me about VrindaAI", stored[0].Message)
	assert.Equal(t, record.Response, stored[0].Response)
}

func TestContactSubmitPersists(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewContactService(store, zap.NewNop())

	record, err := svc.Submit(context.Background(), domain.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hi there",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	stored := store.ContactMessages()
	require.Len(t, stored, 1)
	assert.Equal(t, "ada@example.com", stored[0].Email)
}
