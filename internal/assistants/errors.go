package assistants

import (
	"fmt"

	"telemetry-dashboard/internal/shared/svcerrors"
)

// AssistantService errors
const (
	codeInvalidChatRequest = "AST_1000"
	codeUnknownChatSession = "AST_1001"

	codeDatasetUnavailable             = "AST_9000"
	codeInternalChatHistoryStoreFailed = "AST_9001"
)

// errInvalidChatRequest returns an error for a message the assistant will not forward.
func errInvalidChatRequest(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidChatRequest, msg, nil)
}

// errUnknownChatSession returns an error when a session id has no stored history.
func errUnknownChatSession(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeUnknownChatSession, "chat session not found", cause)
}

// errDatasetUnavailable returns an error when no dataset snapshot can back the digest.
func errDatasetUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeDatasetUnavailable, "dataset is still loading", cause)
}

// errInternalChatHistoryStoreFailed returns an error when reading or writing chat history fails.
func errInternalChatHistoryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalChatHistoryStoreFailed, fmt.Errorf("chatHistoryStoreFailed: %w", cause))
}
