package domain

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage 会话消息（按 session 持久化）
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user | assistant
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
