package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

// assistantOfflineReply is returned for every user message while no live
// assistant backend is wired in.
const assistantOfflineReply = "Our support team is currently offline. Your message has been recorded and someone will get back to you soon."

const chatKeyPrefix = "portal:chat:"

// ChatService 会话历史存 KV，助手侧目前只有固定离线回复
type ChatService struct {
	kv     store.KV
	logger *zap.Logger
}

func NewChatService(kv store.KV, logger *zap.Logger) *ChatService {
	return &ChatService{kv: kv, logger: logger}
}

func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	raw, err := s.kv.Get(ctx, chatKeyPrefix+sessionID)
	if err == store.ErrMiss {
		return []domain.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var msgs []domain.ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, &domain.DecodeError{Reason: "chat history payload is not valid JSON"}
	}
	return msgs, nil
}

// Send appends the user message and the assistant reply to the session
// history and returns the reply. History writes share the todo store's
// whole-value policy: read, append, rewrite.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	msgs, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reply := domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.ChatRoleAssistant,
		Text:      assistantOfflineReply,
		CreatedAt: now,
	}
	msgs = append(msgs,
		domain.ChatMessage{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Role:      domain.ChatRoleUser,
			Text:      text,
			CreatedAt: now,
		},
		reply,
	)
	payload, err := json.Marshal(msgs)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, chatKeyPrefix+sessionID, string(payload), 0); err != nil {
		s.logger.Warn("Failed to persist chat history",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
	return &reply, nil
}

// Clear drops a session's stored history.
func (s *ChatService) Clear(ctx context.Context, sessionID string) error {
	return s.kv.Set(ctx, chatKeyPrefix+sessionID, "[]", 0)
}
