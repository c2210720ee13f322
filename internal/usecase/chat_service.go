package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

type ChatService struct {
	chatRepo    chat.Repository
	messageRepo chat.MessageRepository
	userRepo    user.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewChatService(
	chatRepo chat.Repository,
	messageRepo chat.MessageRepository,
	userRepo user.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ChatService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// Open returns the chat between actor and otherUserID, creating it once.
func (s *ChatService) Open(ctx context.Context, actor user.Principal, otherUserID string) (chat.Chat, error) {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.Open", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return chat.Chat{}, err
	}
	otherUserID = strings.TrimSpace(otherUserID)
	if otherUserID == "" {
		return chat.Chat{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}
	if otherUserID == actor.UserID {
		return chat.Chat{}, fmt.Errorf("%w: cannot open a chat with yourself", ErrInvalidInput)
	}

	_, exists, err := s.userRepo.GetByID(ctx, otherUserID)
	if err != nil {
		return chat.Chat{}, fmt.Errorf("get participant: %w", err)
	}
	if !exists {
		return chat.Chat{}, fmt.Errorf("%w: user=%s", ErrNotFound, otherUserID)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return chat.Chat{}, fmt.Errorf("generate chat id: %w", err)
	}

	user1, user2 := chat.OrderedPair(actor.UserID, otherUserID)
	candidate := chat.Chat{ID: id, User1ID: user1, User2ID: user2}
	if err := candidate.Validate(); err != nil {
		return chat.Chat{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, created, err := s.chatRepo.GetOrCreate(ctx, candidate)
	if err != nil {
		return chat.Chat{}, wrapStoreError("get or create chat", err)
	}
	if created {
		s.logger.InfoContext(ctx, "chat opened", "chat_id", item.ID, "user1_id", item.User1ID, "user2_id", item.User2ID)
	}

	return item, nil
}

// Get is limited to participants and admins.
func (s *ChatService) Get(ctx context.Context, actor user.Principal, id string) (chat.Chat, error) {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.Get", actor)
	defer span.End()

	item, err := s.get(ctx, id)
	if err != nil {
		return chat.Chat{}, err
	}
	if err := requireParticipant(actor, item); err != nil {
		return chat.Chat{}, err
	}
	return item, nil
}

// ListByUser returns every chat when userID is empty.
func (s *ChatService) ListByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.ListByUser")
	defer span.End()

	items, err := s.chatRepo.ListByUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return items, nil
}

// Delete removes the chat and its messages.
func (s *ChatService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.Delete", actor)
	defer span.End()

	item, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireParticipant(actor, item); err != nil {
		return err
	}

	deleted, err := s.chatRepo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: chat=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *ChatService) Count(ctx context.Context) (int, error) {
	n, err := s.chatRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count chats: %w", err)
	}
	return n, nil
}

// SendMessage posts content from actor to the other chat participant.
func (s *ChatService) SendMessage(ctx context.Context, actor user.Principal, chatID, content string) (chat.Message, error) {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.SendMessage", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return chat.Message{}, err
	}
	item, err := s.get(ctx, chatID)
	if err != nil {
		return chat.Message{}, err
	}
	if !item.HasParticipant(actor.UserID) {
		return chat.Message{}, fmt.Errorf("%w: user=%s is not in chat=%s", ErrForbidden, actor.UserID, item.ID)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return chat.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	msg := chat.Message{
		ID:         id,
		ChatID:     item.ID,
		SenderID:   actor.UserID,
		ReceiverID: item.Other(actor.UserID),
		Content:    strings.TrimSpace(content),
		Timestamp:  s.now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return chat.Message{}, wrapStoreError("create message", err)
	}

	return msg, nil
}

func (s *ChatService) GetMessage(ctx context.Context, actor user.Principal, id string) (chat.Message, error) {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.GetMessage", actor)
	defer span.End()

	msg, err := s.getMessage(ctx, id)
	if err != nil {
		return chat.Message{}, err
	}
	if err := requireActor(actor); err != nil {
		return chat.Message{}, err
	}
	if !actor.IsAdmin() && msg.SenderID != actor.UserID && msg.ReceiverID != actor.UserID {
		return chat.Message{}, fmt.Errorf("%w: message belongs to another chat", ErrForbidden)
	}
	return msg, nil
}

// ListMessages returns the chat history oldest first.
func (s *ChatService) ListMessages(ctx context.Context, actor user.Principal, chatID string) ([]chat.Message, error) {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.ListMessages", actor)
	defer span.End()

	item, err := s.get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := requireParticipant(actor, item); err != nil {
		return nil, err
	}

	items, err := s.messageRepo.ListByChat(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return items, nil
}

// DeleteMessage is allowed for the sender and admins.
func (s *ChatService) DeleteMessage(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ChatService.DeleteMessage", actor)
	defer span.End()

	msg, err := s.getMessage(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, msg.SenderID, "message"); err != nil {
		return err
	}

	deleted, err := s.messageRepo.Delete(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: message=%s", ErrNotFound, msg.ID)
	}
	return nil
}

func (s *ChatService) CountMessages(ctx context.Context) (int, error) {
	n, err := s.messageRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

func (s *ChatService) get(ctx context.Context, id string) (chat.Chat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return chat.Chat{}, fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	item, exists, err := s.chatRepo.GetByID(ctx, id)
	if err != nil {
		return chat.Chat{}, fmt.Errorf("get chat: %w", err)
	}
	if !exists {
		return chat.Chat{}, fmt.Errorf("%w: chat=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ChatService) getMessage(ctx context.Context, id string) (chat.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return chat.Message{}, fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}
	msg, exists, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return chat.Message{}, fmt.Errorf("get message: %w", err)
	}
	if !exists {
		return chat.Message{}, fmt.Errorf("%w: message=%s", ErrNotFound, id)
	}
	return msg, nil
}

func requireParticipant(actor user.Principal, item chat.Chat) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.IsAdmin() || item.HasParticipant(actor.UserID) {
		return nil
	}
	return fmt.Errorf("%w: user=%s is not in chat=%s", ErrForbidden, actor.UserID, item.ID)
}
