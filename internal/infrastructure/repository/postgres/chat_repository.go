package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetOrCreate inserts candidate unless the pair already has a chat. Rows are
// stored with user1_id < user2_id so the unique index covers both orders.
func (r *ChatRepository) GetOrCreate(ctx context.Context, candidate chat.Chat) (chat.Chat, bool, error) {
	user1, user2 := chat.OrderedPair(candidate.User1ID, candidate.User2ID)
	row := chatTableModel{ID: candidate.ID, User1ID: user1, User2ID: user2}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return chat.Chat{}, false, errors.Wrap(err, "begin tx get or create chat")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertQuery, insertArgs, err := qb.InsertModel("chats", row, "ON CONFLICT (user1_id, user2_id) DO NOTHING")
	if err != nil {
		return chat.Chat{}, false, errors.Wrap(err, "build insert chat query")
	}
	affected, err := execAffected(ctx, tx, insertQuery, insertArgs)
	if err != nil {
		return chat.Chat{}, false, errors.Wrap(err, "insert chat")
	}

	created := affected > 0
	if !created {
		selectQuery, selectArgs, err := qb.Select("*").From("chats").
			Where(qb.Eq("user1_id", user1), qb.Eq("user2_id", user2)).
			ToSQL()
		if err != nil {
			return chat.Chat{}, false, errors.Wrap(err, "build get chat by pair query")
		}
		if err := tx.GetContext(ctx, &row, selectQuery, selectArgs...); err != nil {
			return chat.Chat{}, false, errors.Wrap(err, "get chat by pair")
		}
	}

	if err := tx.Commit(); err != nil {
		return chat.Chat{}, false, errors.Wrap(err, "commit get or create chat")
	}
	return chatFromRow(row), created, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "chats", id)
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (chat.Chat, bool, error) {
	query, args, err := qb.Select("*").From("chats").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return chat.Chat{}, false, errors.Wrap(err, "build get chat query")
	}

	var row chatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Chat{}, false, nil
		}
		return chat.Chat{}, false, errors.Wrap(err, "get chat")
	}
	return chatFromRow(row), true, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	var conds []qb.Condition
	if userID != "" {
		conds = append(conds, qb.Or(qb.Eq("user1_id", userID), qb.Eq("user2_id", userID)))
	}
	query, args, err := qb.Select("*").From("chats").Where(conds...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list chats query")
	}

	var rows []chatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select chats")
	}

	out := make([]chat.Chat, 0, len(rows))
	for _, row := range rows {
		out = append(out, chatFromRow(row))
	}
	return out, nil
}

func (r *ChatRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "chats")
}

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, item chat.Message) error {
	row := messageTableModel{
		ID:         item.ID,
		ChatID:     item.ChatID,
		SenderID:   item.SenderID,
		ReceiverID: item.ReceiverID,
		Content:    item.Content,
		Timestamp:  item.Timestamp,
	}
	query, args, err := qb.InsertModel("messages", row, "")
	if err != nil {
		return errors.Wrap(err, "build insert message query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert message")
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "messages", id)
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (chat.Message, bool, error) {
	query, args, err := qb.Select("*").From("messages").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return chat.Message{}, false, errors.Wrap(err, "build get message query")
	}

	var row messageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Message{}, false, nil
		}
		return chat.Message{}, false, errors.Wrap(err, "get message")
	}
	return messageFromRow(row), true, nil
}

func (r *MessageRepository) ListByChat(ctx context.Context, chatID string) ([]chat.Message, error) {
	query, args, err := qb.Select("*").From("messages").
		Where(qb.Eq("chat_id", chatID)).
		OrderBy("sent_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list messages query")
	}

	var rows []messageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select messages")
	}

	out := make([]chat.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, messageFromRow(row))
	}
	return out, nil
}

func (r *MessageRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "messages")
}
