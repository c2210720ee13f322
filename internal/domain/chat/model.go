package chat

import (
	"fmt"
	"strings"
	"time"
)

type Chat struct {
	ID      string
	User1ID string
	User2ID string
}

func (c Chat) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("chat id is required")
	}
	if c.User1ID == "" || c.User2ID == "" {
		return fmt.Errorf("chat participants are required")
	}
	if c.User1ID == c.User2ID {
		return fmt.Errorf("chat participants must differ")
	}
	return nil
}

func (c Chat) HasParticipant(userID string) bool {
	return userID != "" && (c.User1ID == userID || c.User2ID == userID)
}

// Other returns the participant that is not userID.
func (c Chat) Other(userID string) string {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// OrderedPair returns the participants sorted so that a pair maps to one key
// regardless of who opened the chat.
func OrderedPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

type Message struct {
	ID         string
	ChatID     string
	SenderID   string
	ReceiverID string
	Content    string
	Timestamp  time.Time
}

const MaxContentLength = 4000

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	if m.ChatID == "" {
		return fmt.Errorf("message chat id is required")
	}
	if m.SenderID == "" || m.ReceiverID == "" {
		return fmt.Errorf("message sender and receiver are required")
	}
	if m.SenderID == m.ReceiverID {
		return fmt.Errorf("message sender and receiver must differ")
	}
	content := strings.TrimSpace(m.Content)
	if content == "" {
		return fmt.Errorf("message content is required")
	}
	if len(m.Content) > MaxContentLength {
		return fmt.Errorf("message content exceeds %d bytes", MaxContentLength)
	}
	return nil
}
