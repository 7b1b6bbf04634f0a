package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/helpboard/backend/internal/chat"
	"github.com/helpboard/backend/internal/domain"
)

const (
	maxChatTextLength   = 500
	maxChatAuthorLength = 40
)

var roomPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// ChatRelay is the transport ChatService publishes through.
// *chat.Relay satisfies it.
type ChatRelay interface {
	Publish(ctx context.Context, msg domain.ChatMessage) error
	History(ctx context.Context, room string, limit int64) ([]domain.ChatMessage, error)
	Subscribe(ctx context.Context, room string) (*chat.Subscription, error)
}

// ChatService validates chat input and stamps messages before they are
// relayed. The relay is injected; the service owns no connection of its own.
type ChatService struct {
	relay ChatRelay
	now   func() time.Time
}

// NewChatService constructs a ChatService over relay.
func NewChatService(relay ChatRelay) *ChatService {
	return &ChatService{
		relay: relay,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Post validates and publishes a message to room. A blank author becomes
// domain.AnonymousAuthor. Returns domain.ErrValidation for bad input.
func (s *ChatService) Post(ctx context.Context, room, author, text string) (domain.ChatMessage, error) {
	if err := validateRoom(room); err != nil {
		return domain.ChatMessage{}, err
	}

	msg := domain.ChatMessage{
		ID:     uuid.New(),
		Room:   room,
		Author: strings.TrimSpace(author),
		Text:   strings.TrimSpace(text),
		SentAt: s.now(),
	}
	if msg.Author == "" {
		msg.Author = domain.AnonymousAuthor
	}
	if msg.Text == "" {
		return domain.ChatMessage{}, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(msg.Text) > maxChatTextLength {
		return domain.ChatMessage{}, fmt.Errorf("%w: text must be at most %d characters", domain.ErrValidation, maxChatTextLength)
	}
	if utf8.RuneCountInString(msg.Author) > maxChatAuthorLength {
		return domain.ChatMessage{}, fmt.Errorf("%w: author must be at most %d characters", domain.ErrValidation, maxChatAuthorLength)
	}

	if err := s.relay.Publish(ctx, msg); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("service.ChatService.Post: %w", err)
	}
	return msg, nil
}

// History returns up to limit recent messages of room, oldest first.
// A non-positive limit means the relay's full history.
func (s *ChatService) History(ctx context.Context, room string, limit int) ([]domain.ChatMessage, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	msgs, err := s.relay.History(ctx, room, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("service.ChatService.History: %w", err)
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs, nil
}

// Subscribe opens a live feed of room. The caller must Close it.
func (s *ChatService) Subscribe(ctx context.Context, room string) (*chat.Subscription, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	sub, err := s.relay.Subscribe(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("service.ChatService.Subscribe: %w", err)
	}
	return sub, nil
}

func validateRoom(room string) error {
	if !roomPattern.MatchString(room) {
		return fmt.Errorf("%w: room must be 1-64 lowercase letters, digits or dashes", domain.ErrValidation)
	}
	return nil
}
