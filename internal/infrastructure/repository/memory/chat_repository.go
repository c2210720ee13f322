package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

type ChatRepository struct {
	db *Database
}

func NewChatRepository(db *Database) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) GetOrCreate(_ context.Context, candidate chat.Chat) (chat.Chat, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user1, user2 := chat.OrderedPair(candidate.User1ID, candidate.User2ID)
	existing := r.db.chats.list(func(c chat.Chat) bool {
		a, b := chat.OrderedPair(c.User1ID, c.User2ID)
		return a == user1 && b == user2
	})
	if len(existing) > 0 {
		return existing[0], false, nil
	}

	if err := r.db.requireUser("chats_user1_id_fkey", candidate.User1ID); err != nil {
		return chat.Chat{}, false, err
	}
	if err := r.db.requireUser("chats_user2_id_fkey", candidate.User2ID); err != nil {
		return chat.Chat{}, false, err
	}

	r.db.chats.insert(candidate.ID, candidate)
	return candidate, true, nil
}

func (r *ChatRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.chats.remove(id) {
		return false, nil
	}
	r.db.cascadeChat(id)
	return true, nil
}

func (r *ChatRepository) GetByID(_ context.Context, id string) (chat.Chat, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.chats.get(id)
	return item, ok, nil
}

func (r *ChatRepository) ListByUser(_ context.Context, userID string) ([]chat.Chat, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if userID == "" {
		return r.db.chats.list(nil), nil
	}
	return r.db.chats.list(func(c chat.Chat) bool { return c.HasParticipant(userID) }), nil
}

func (r *ChatRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.chats.count(nil), nil
}

type MessageRepository struct {
	db *Database
}

func NewMessageRepository(db *Database) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(_ context.Context, item chat.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.chats.get(item.ChatID); !ok {
		return dberr.ForeignKey("messages_chat_id_fkey", fmt.Errorf("chat %s does not exist", item.ChatID))
	}
	if err := r.db.requireUser("messages_sender_id_fkey", item.SenderID); err != nil {
		return err
	}
	if err := r.db.requireUser("messages_receiver_id_fkey", item.ReceiverID); err != nil {
		return err
	}

	r.db.messages.insert(item.ID, item)
	return nil
}

func (r *MessageRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.messages.remove(id), nil
}

func (r *MessageRepository) GetByID(_ context.Context, id string) (chat.Message, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.messages.get(id)
	return item, ok, nil
}

func (r *MessageRepository) ListByChat(_ context.Context, chatID string) ([]chat.Message, error) {
	r.db.mu.RLock()
	out := r.db.messages.list(func(m chat.Message) bool { return m.ChatID == chatID })
	r.db.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MessageRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.messages.count(nil), nil
}
