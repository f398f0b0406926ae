package assistants

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/shared/ulid"
	"telemetry-dashboard/internal/stores"
)

const (
	// MaxMessageLength is the longest user message accepted, in characters.
	MaxMessageLength = 2000
	// HistoryWindow is how many prior turns accompany each outbound request.
	HistoryWindow = 10
)

//go:generate mockgen -source=assistant_service.go -destination=./mocks/assistant_service_mock.go -package=mocks
type AssistantService interface {
	// Reply answers one user message. An empty or unknown sessionID starts a new session.
	// Completion failures are answered with FallbackReply, never returned as errors.
	Reply(ctx context.Context, sessionID string, message string) (*models.ChatReply, error)
	History(ctx context.Context, sessionID string) (*models.ChatSession, error)
}

type assistantService struct {
	client       ChatCompletionClient
	datasetStore stores.DatasetStore
	historyStore stores.ChatHistoryStore
}

func NewAssistantService(client ChatCompletionClient, datasetStore stores.DatasetStore, historyStore stores.ChatHistoryStore) AssistantService {
	return &assistantService{client: client, datasetStore: datasetStore, historyStore: historyStore}
}

func (s *assistantService) Reply(ctx context.Context, sessionID string, message string) (*models.ChatReply, error) {
	logger := loggers.Ctx(ctx)

	text, err := validateMessage(message)
	if err != nil {
		return nil, err
	}

	dataset, err := s.datasetStore.Get(ctx)
	if err != nil {
		return nil, errDatasetUnavailable(err)
	}

	session, err := s.session(ctx, sessionID, dataset)
	if err != nil {
		return nil, err
	}

	userTurn := models.ChatMessage{Role: models.ChatRoleUser, Content: text, CreatedAt: time.Now().UTC()}
	request := buildCompletionMessages(dataset, session.Messages, userTurn)
	if err := s.historyStore.Append(ctx, session.SessionID, userTurn); err != nil {
		return nil, errInternalChatHistoryStoreFailed(err)
	}

	started := time.Now()
	content, err := s.client.Complete(ctx, request)
	source := models.ReplySourceAPI
	if err != nil {
		logger.Warn().Err(err).Str(loggers.FieldSessionID, session.SessionID).Msg("chat completion failed, answering with fallback")
		content = FallbackReply(dataset.Statistics)
		source = models.ReplySourceFallback
	} else {
		metricChatCompletionDuration.Observe(time.Since(started).Seconds())
	}
	metricChatRepliesTotal.WithLabelValues(string(source)).Inc()

	assistantTurn := models.ChatMessage{Role: models.ChatRoleAssistant, Content: content, Source: source, CreatedAt: time.Now().UTC()}
	if err := s.historyStore.Append(ctx, session.SessionID, assistantTurn); err != nil {
		return nil, errInternalChatHistoryStoreFailed(err)
	}

	return &models.ChatReply{SessionID: session.SessionID, Reply: content, Source: source}, nil
}

func (s *assistantService) History(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, err := s.historyStore.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stores.ErrChatSessionNotFound) {
			return nil, errUnknownChatSession(err)
		}
		return nil, errInternalChatHistoryStoreFailed(err)
	}
	return session, nil
}

// session loads the caller's session or opens a fresh one seeded with the
// greeting and the dataset notice.
func (s *assistantService) session(ctx context.Context, sessionID string, dataset *models.Dataset) (*models.ChatSession, error) {
	if sessionID != "" {
		session, err := s.historyStore.Get(ctx, sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, stores.ErrChatSessionNotFound) {
			return nil, errInternalChatHistoryStoreFailed(err)
		}
	}

	now := time.Now().UTC()
	session := &models.ChatSession{
		SessionID: ulid.NewULID(),
		Messages: []models.ChatMessage{
			{Role: models.ChatRoleAssistant, Content: Greeting, Source: models.ReplySourceSystem, CreatedAt: now},
		},
	}
	if dataset.Notice != "" {
		session.Messages = append(session.Messages, models.ChatMessage{
			Role: models.ChatRoleAssistant, Content: dataset.Notice, Source: models.ReplySourceSystem, CreatedAt: now,
		})
	}
	if err := s.historyStore.Create(ctx, session); err != nil {
		return nil, errInternalChatHistoryStoreFailed(err)
	}
	return session, nil
}

func validateMessage(message string) (string, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return "", errInvalidChatRequest("message is required")
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", errInvalidChatRequest(fmt.Sprintf("message too long: max %d characters", MaxMessageLength))
	}
	return text, nil
}

// buildCompletionMessages assembles system prompt, the last HistoryWindow turns and the new turn.
func buildCompletionMessages(dataset *models.Dataset, history []models.ChatMessage, userTurn models.ChatMessage) []CompletionMessage {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]CompletionMessage, 0, len(history)+2)
	messages = append(messages, CompletionMessage{Role: string(models.ChatRoleSystem), Content: SystemPrompt(dataset)})
	for _, m := range history {
		messages = append(messages, CompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, CompletionMessage{Role: string(userTurn.Role), Content: userTurn.Content})
	return messages
}
