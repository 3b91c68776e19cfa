package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

func TestChatServiceSendAppendsPairAndReturnsReply(t *testing.T) {
	svc := NewChatService(store.NewMemoryKV(), zap.NewNop())
	ctx := context.Background()

	reply, err := svc.Send(ctx, "s1", "hello?")
	require.NoError(t, err)
	assert.Equal(t, domain.ChatRoleAssistant, reply.Role)
	assert.Equal(t, assistantOfflineReply, reply.Text)

	history, err := svc.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.ChatRoleUser, history[0].Role)
	assert.Equal(t, "hello?", history[0].Text)
	assert.Equal(t, domain.ChatRoleAssistant, history[1].Role)
}

func TestChatServiceHistoryEmptyForNewSession(t *testing.T) {
	svc := NewChatService(store.NewMemoryKV(), zap.NewNop())

	history, err := svc.History(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatServiceSessionsIsolated(t *testing.T) {
	svc := NewChatService(store.NewMemoryKV(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Send(ctx, "s1", "first session")
	require.NoError(t, err)

	other, err := svc.History(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestChatServiceClear(t *testing.T) {
	svc := NewChatService(store.NewMemoryKV(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Send(ctx, "s1", "wipe me")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	history, err := svc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
