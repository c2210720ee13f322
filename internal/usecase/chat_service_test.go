package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	chatmock "github.com/riskibarqy/scout-market/internal/mocks/domain/chat"
	usermock "github.com/riskibarqy/scout-market/internal/mocks/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_Open_OrdersPair(t *testing.T) {
	t.Parallel()

	chats := chatmock.NewRepository(t)
	users := usermock.NewRepository(t)
	service := NewChatService(chats, chatmock.NewMessageRepository(t), users, &sequenceIDs{prefix: "chat"}, logging.NewNop())

	users.On("GetByID", mock.Anything, "alice").Return(user.User{ID: "alice"}, true, nil).Once()
	chats.On("GetOrCreate", mock.Anything, chat.Chat{ID: "chat-1", User1ID: "alice", User2ID: "bob"}).
		Return(chat.Chat{ID: "chat-1", User1ID: "alice", User2ID: "bob"}, true, nil).
		Once()

	got, err := service.Open(t.Context(), user.Principal{UserID: "bob"}, "alice")
	if err != nil {
		t.Fatalf("open chat: %v", err)
	}
	if got.User1ID != "alice" || got.User2ID != "bob" {
		t.Fatalf("unexpected participants: %+v", got)
	}
}

func TestChatService_Open_Validation(t *testing.T) {
	t.Parallel()

	t.Run("self chat", func(t *testing.T) {
		service := NewChatService(chatmock.NewRepository(t), chatmock.NewMessageRepository(t), usermock.NewRepository(t), &sequenceIDs{}, nil)
		_, err := service.Open(t.Context(), user.Principal{UserID: "bob"}, "bob")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown participant", func(t *testing.T) {
		users := usermock.NewRepository(t)
		service := NewChatService(chatmock.NewRepository(t), chatmock.NewMessageRepository(t), users, &sequenceIDs{}, nil)
		users.On("GetByID", mock.Anything, "ghost").Return(user.User{}, false, nil).Once()

		_, err := service.Open(t.Context(), user.Principal{UserID: "bob"}, "ghost")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestChatService_Conversation(t *testing.T) {
	t.Parallel()

	m := newMarketplace(t)
	alice := m.signUp(t, "alice", user.RoleUser)
	bob := m.signUp(t, "bob", user.RoleUser)
	eve := m.signUp(t, "eve", user.RoleUser)
	admin := m.signUp(t, "admin", user.RoleAdmin)

	first, err := m.chats.Open(t.Context(), alice, bob.UserID)
	require.NoError(t, err)
	second, err := m.chats.Open(t.Context(), bob, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "one chat per pair")

	clock := testNow
	m.chats.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	hello, err := m.chats.SendMessage(t.Context(), alice, first.ID, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", hello.Content)
	assert.Equal(t, bob.UserID, hello.ReceiverID)

	_, err = m.chats.SendMessage(t.Context(), bob, first.ID, "hi there")
	require.NoError(t, err)

	_, err = m.chats.SendMessage(t.Context(), eve, first.ID, "let me in")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = m.chats.SendMessage(t.Context(), alice, first.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.chats.SendMessage(t.Context(), alice, first.ID, strings.Repeat("x", chat.MaxContentLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	history, err := m.chats.ListMessages(t.Context(), bob, first.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, hello.ID, history[0].ID)

	_, err = m.chats.ListMessages(t.Context(), eve, first.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = m.chats.Get(t.Context(), admin, first.ID)
	require.NoError(t, err)

	_, err = m.chats.GetMessage(t.Context(), eve, hello.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, m.chats.DeleteMessage(t.Context(), bob, hello.ID), ErrForbidden, "only the sender deletes")
	require.NoError(t, m.chats.DeleteMessage(t.Context(), alice, hello.ID))

	mine, err := m.chats.ListByUser(t.Context(), eve.UserID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	require.NoError(t, m.chats.Delete(t.Context(), bob, first.ID))
	n, err := m.chats.CountMessages(t.Context())
	require.NoError(t, err)
	assert.Zero(t, n, "messages are removed with the chat")
}
