package assistants

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint, apiKey string) ChatCompletionClient {
	return NewChatCompletionClient(ChatCompletionClientConfig{
		Endpoint: endpoint,
		Model:    "test-model",
		APIKey:   apiKey,
		Timeout:  2 * time.Second,
	})
}

func TestChatCompletionClient_Complete_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Shift earlier."}}]}`))
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL, "sk-test").Complete(context.Background(), []CompletionMessage{
		{Role: "system", Content: "context"},
		{Role: "user", Content: "how do I save fuel?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Shift earlier.", reply)
}

func TestChatCompletionClient_Complete_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"slow down"}`, wantErr: ErrUnexpectedStatus},
		{name: "server error", status: http.StatusBadGateway, body: "upstream", wantErr: ErrUnexpectedStatus},
		{name: "malformed json", status: http.StatusOK, body: `{"choices":[`},
		{name: "empty choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrEmptyCompletion},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, wantErr: ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			reply, err := newTestClient(server.URL, "sk-test").Complete(context.Background(), []CompletionMessage{{Role: "user", Content: "hi"}})
			assert.Empty(t, reply)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestChatCompletionClient_Complete_NoAPIKey(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, " ").Complete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.Zero(t, hits.Load())
}

func TestChatCompletionClient_Complete_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url, "sk-test").Complete(context.Background(), []CompletionMessage{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
