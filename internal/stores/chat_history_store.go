package stores

import (
	"context"
	"errors"
	"slices"
	"sync"

	"telemetry-dashboard/internal/models"
)

var (
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrChatSessionExists   = errors.New("chat session already exists")
)

// maxStoredMessages bounds one session's history. Older turns are dropped first.
const maxStoredMessages = 200

//go:generate mockgen -source=chat_history_store.go -destination=./mocks/chat_history_store_mock.go -package=mocks
type ChatHistoryStore interface {
	Create(ctx context.Context, session *models.ChatSession) error
	Append(ctx context.Context, sessionID string, messages ...models.ChatMessage) error
	// Get returns a copy of the session; mutating it does not affect the store.
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
}

type chatHistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.ChatMessage
}

func NewChatHistoryStore() ChatHistoryStore {
	return &chatHistoryStore{sessions: make(map[string][]models.ChatMessage)}
}

func (s *chatHistoryStore) Create(ctx context.Context, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.SessionID]; ok {
		return ErrChatSessionExists
	}
	s.sessions[session.SessionID] = trimHistory(slices.Clone(session.Messages))
	return nil
}

func (s *chatHistoryStore) Append(ctx context.Context, sessionID string, messages ...models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history, ok := s.sessions[sessionID]
	if !ok {
		return ErrChatSessionNotFound
	}
	s.sessions[sessionID] = trimHistory(append(history, messages...))
	return nil
}

func (s *chatHistoryStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrChatSessionNotFound
	}
	return &models.ChatSession{SessionID: sessionID, Messages: slices.Clone(history)}, nil
}

func trimHistory(messages []models.ChatMessage) []models.ChatMessage {
	if len(messages) <= maxStoredMessages {
		return messages
	}
	return slices.Clone(messages[len(messages)-maxStoredMessages:])
}
