package chat

import "context"

type Repository interface {
	// GetOrCreate returns the chat between the two users, inserting candidate
	// when none exists. created reports whether candidate was stored.
	GetOrCreate(ctx context.Context, candidate Chat) (item Chat, created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (Chat, bool, error)
	// ListByUser returns every chat when userID is empty.
	ListByUser(ctx context.Context, userID string) ([]Chat, error)
	Count(ctx context.Context) (int, error)
}

type MessageRepository interface {
	Create(ctx context.Context, item Message) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (Message, bool, error)
	// ListByChat orders messages by timestamp ascending.
	ListByChat(ctx context.Context, chatID string) ([]Message, error)
	Count(ctx context.Context) (int, error)
}
