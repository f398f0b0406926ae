package models

import "time"

type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ReplySource string

const (
	ReplySourceAPI      ReplySource = "api"
	ReplySourceFallback ReplySource = "fallback"
	ReplySourceSystem   ReplySource = "system"
)

type ChatMessage struct {
	Role      ChatRole    `json:"role"`
	Content   string      `json:"content"`
	Source    ReplySource `json:"source,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ChatSession is one conversation. Messages are ordered oldest first.
type ChatSession struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}

// ChatReply is the outcome of one user turn.
type ChatReply struct {
	SessionID string      `json:"sessionId"`
	Reply     string      `json:"reply"`
	Source    ReplySource `json:"source"`
}
