package http

import (
	"net/http"

	"telemetry-dashboard/internal/assistants"

	"github.com/go-chi/chi/v5"
)

const pathParamSessionID = "sessionId"

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatHandler struct {
	assistantService assistants.AssistantService
}

func NewChatHandler(assistantService assistants.AssistantService) AppHttpHandler {
	return &chatHandler{assistantService: assistantService}
}

// Handle serves POST /api/chat. Assistant outages still answer 200 with a fallback reply.
func (h *chatHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	reply, err := h.assistantService.Reply(r.Context(), req.SessionID, req.Message)
	if err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusOK, reply)
}

type chatHistoryHandler struct {
	assistantService assistants.AssistantService
}

func NewChatHistoryHandler(assistantService assistants.AssistantService) AppHttpHandler {
	return &chatHistoryHandler{assistantService: assistantService}
}

// Handle serves GET /api/chat/{sessionId}.
func (h *chatHistoryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	session, err := h.assistantService.History(r.Context(), chi.URLParam(r, pathParamSessionID))
	if err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusOK, session)
}
