package stores

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"telemetry-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetStore_GetBeforeSet(t *testing.T) {
	t.Parallel()

	store := NewDatasetStore()
	ds, err := store.Get(context.Background())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
}

func TestDatasetStore_SetSwapsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewDatasetStore()

	first := &models.Dataset{Source: models.DatasetSourceDemo}
	second := &models.Dataset{Source: models.DatasetSourceCSV}
	require.NoError(t, store.Set(ctx, first))
	require.NoError(t, store.Set(ctx, second))
	assert.Error(t, store.Set(ctx, nil))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestChatHistoryStore_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewChatHistoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	greeting := models.ChatMessage{Role: models.ChatRoleAssistant, Content: "hello", Source: models.ReplySourceSystem, CreatedAt: now}
	require.NoError(t, store.Create(ctx, &models.ChatSession{SessionID: "s1", Messages: []models.ChatMessage{greeting}}))
	assert.ErrorIs(t, store.Create(ctx, &models.ChatSession{SessionID: "s1"}), ErrChatSessionExists)

	require.NoError(t, store.Append(ctx, "s1",
		models.ChatMessage{Role: models.ChatRoleUser, Content: "how is my battery?", CreatedAt: now},
		models.ChatMessage{Role: models.ChatRoleAssistant, Content: "fine", Source: models.ReplySourceAPI, CreatedAt: now},
	))
	assert.ErrorIs(t, store.Append(ctx, "missing", greeting), ErrChatSessionNotFound)

	session, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, session.Messages, 3)
	assert.Equal(t, "how is my battery?", session.Messages[1].Content)

	session.Messages[0].Content = "mutated"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Messages[0].Content)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrChatSessionNotFound)
}

func TestChatHistoryStore_TrimsOldestMessages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewChatHistoryStore()
	require.NoError(t, store.Create(ctx, &models.ChatSession{SessionID: "s1"}))

	for i := 0; i < maxStoredMessages+5; i++ {
		require.NoError(t, store.Append(ctx, "s1", models.ChatMessage{Role: models.ChatRoleUser, Content: fmt.Sprintf("m%d", i)}))
	}

	session, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, session.Messages, maxStoredMessages)
	assert.Equal(t, "m5", session.Messages[0].Content)
	assert.Equal(t, fmt.Sprintf("m%d", maxStoredMessages+4), session.Messages[maxStoredMessages-1].Content)
}

func TestPredictionStore_LastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewPredictionStore()

	_, err := store.Latest(ctx)
	assert.ErrorIs(t, err, ErrPredictionNotFound)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(ctx, &models.PredictionRun{RunID: fmt.Sprintf("run-%d", i)})
		}(i)
	}
	wg.Wait()

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, latest.RunID)

	require.NoError(t, store.Put(ctx, &models.PredictionRun{RunID: "final"}))
	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "final", latest.RunID)
	assert.Error(t, store.Put(ctx, nil))
}
