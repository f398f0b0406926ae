package assistants_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/assistants"
	assistantmocks "telemetry-dashboard/internal/assistants/mocks"
	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/svcerrors"
	"telemetry-dashboard/internal/shared/ulid"
	"telemetry-dashboard/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service      assistants.AssistantService
	client       *assistantmocks.MockChatCompletionClient
	historyStore stores.ChatHistoryStore
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()
	datasetStore := stores.NewDatasetStore()
	require.NoError(t, datasetStore.Set(context.Background(), aggregators.NewDemoDataset(time.Now())))
	historyStore := stores.NewChatHistoryStore()
	client := assistantmocks.NewMockChatCompletionClient(ctrl)
	return &fixture{
		service:      assistants.NewAssistantService(client, datasetStore, historyStore),
		client:       client,
		historyStore: historyStore,
	}
}

func TestAssistantService_Reply_NewSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	f.client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs []assistants.CompletionMessage) (string, error) {
			require.Len(t, msgs, 4)
			assert.Equal(t, "system", msgs[0].Role)
			assert.Contains(t, msgs[0].Content, "demo data (80,000+ simulated points)")
			assert.Equal(t, assistants.Greeting, msgs[1].Content)
			assert.Equal(t, aggregators.DemoNotice, msgs[2].Content)
			assert.Equal(t, assistants.CompletionMessage{Role: "user", Content: "How is my battery?"}, msgs[3])
			return "Your battery is healthy.", nil
		}).Times(1)

	reply, err := f.service.Reply(context.Background(), "", "  How is my battery?  ")
	require.NoError(t, err)
	assert.True(t, ulid.IsValid(reply.SessionID))
	assert.Equal(t, "Your battery is healthy.", reply.Reply)
	assert.Equal(t, models.ReplySourceAPI, reply.Source)

	session, err := f.service.History(context.Background(), reply.SessionID)
	require.NoError(t, err)
	require.Len(t, session.Messages, 4)
	assert.Equal(t, models.ReplySourceSystem, session.Messages[0].Source)
	assert.Equal(t, models.ChatRoleUser, session.Messages[2].Role)
	assert.Equal(t, models.ReplySourceAPI, session.Messages[3].Source)
}

func TestAssistantService_Reply_FallbackOnClientError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	f.client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: 503", assistants.ErrUnexpectedStatus)).Times(1)

	reply, err := f.service.Reply(context.Background(), "", "Any eco tips?")
	require.NoError(t, err)
	assert.Equal(t, models.ReplySourceFallback, reply.Source)
	assert.Equal(t, assistants.FallbackReply(aggregators.DemoStatistics()), reply.Reply)
	assert.Contains(t, reply.Reply, "83,469 records in total")
}

func TestAssistantService_Reply_HistoryWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	ctx := context.Background()
	sessionID := ulid.NewULID()
	require.NoError(t, f.historyStore.Create(ctx, &models.ChatSession{SessionID: sessionID}))
	for i := 0; i < 14; i++ {
		require.NoError(t, f.historyStore.Append(ctx, sessionID, models.ChatMessage{Role: models.ChatRoleUser, Content: fmt.Sprintf("turn %d", i)}))
	}

	f.client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs []assistants.CompletionMessage) (string, error) {
			require.Len(t, msgs, 1+assistants.HistoryWindow+1)
			assert.Equal(t, "turn 4", msgs[1].Content)
			assert.Equal(t, "turn 13", msgs[assistants.HistoryWindow].Content)
			assert.Equal(t, "latest", msgs[len(msgs)-1].Content)
			return "ok", nil
		}).Times(1)

	reply, err := f.service.Reply(ctx, sessionID, "latest")
	require.NoError(t, err)
	assert.Equal(t, sessionID, reply.SessionID)

	session, err := f.historyStore.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, session.Messages, 16)
}

func TestAssistantService_Reply_UnknownSessionStartsNew(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	f.client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("ok", nil).Times(1)

	reply, err := f.service.Reply(context.Background(), "01HZX3V9Q6K7M8N9P0R1S2T3V4", "hello")
	require.NoError(t, err)
	assert.NotEqual(t, "01HZX3V9Q6K7M8N9P0R1S2T3V4", reply.SessionID)
}

func TestAssistantService_Reply_InvalidMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
	}{
		{name: "empty", message: ""},
		{name: "whitespace", message: " \n\t "},
		{name: "too long", message: strings.Repeat("é", assistants.MaxMessageLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl)

			reply, err := f.service.Reply(context.Background(), "", tt.message)
			assert.Nil(t, reply)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "AST_1000", svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
		})
	}
}

func TestAssistantService_Reply_DatasetNotLoaded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := assistants.NewAssistantService(assistantmocks.NewMockChatCompletionClient(ctrl), stores.NewDatasetStore(), stores.NewChatHistoryStore())

	_, err := service.Reply(context.Background(), "", "hello")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "AST_9000", svcErr.Code)
	assert.True(t, errors.Is(err, stores.ErrDatasetNotLoaded))
}

func TestAssistantService_History_Unknown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	session, err := f.service.History(context.Background(), "missing")
	assert.Nil(t, session)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "AST_1001", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
}
