// Package chat relays chat room messages through Redis.
//
// A Relay is an explicit client: main constructs one per process and hands
// it to whatever needs it. Each room has a pub/sub channel for live delivery
// and a capped list holding its recent history, so a client joining late can
// catch up before it starts streaming.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/helpboard/backend/internal/domain"
)

const (
	channelPrefix = "chat:room:"    // pub/sub channel: chat:room:{room}
	historyPrefix = "chat:history:" // list, newest first: chat:history:{room}

	// DefaultHistoryLimit is used when NewRelay is given a non-positive cap.
	DefaultHistoryLimit = 100
	// HistoryTTL is how long an idle room's history is kept.
	HistoryTTL = 7 * 24 * time.Hour
)

// Relay publishes and subscribes to chat rooms.
type Relay struct {
	client       *redis.Client
	historyLimit int64
}

// NewRelay constructs a Relay over client keeping at most historyLimit
// messages per room.
func NewRelay(client *redis.Client, historyLimit int64) *Relay {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Relay{client: client, historyLimit: historyLimit}
}

// Publish stores msg in its room's history and delivers it to current
// subscribers. Both happen in one pipeline round trip.
func (r *Relay) Publish(ctx context.Context, msg domain.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("chat.Relay.Publish: marshal: %w", err)
	}

	key := historyKey(msg.Room)
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, r.historyLimit-1)
	pipe.Expire(ctx, key, HistoryTTL)
	pipe.Publish(ctx, channelKey(msg.Room), data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("chat.Relay.Publish: %w", err)
	}
	return nil
}

// History returns up to limit of the most recent messages in room, oldest
// first. A limit outside [1, historyLimit] is clamped.
func (r *Relay) History(ctx context.Context, room string, limit int64) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > r.historyLimit {
		limit = r.historyLimit
	}

	raw, err := r.client.LRange(ctx, historyKey(room), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("chat.Relay.History: %w", err)
	}

	// The list is newest first; walk it backwards.
	msgs := make([]domain.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var m domain.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &m); err != nil {
			return nil, fmt.Errorf("chat.Relay.History: unmarshal: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Subscription is a live feed of one room.
type Subscription struct {
	ps       *redis.PubSub
	messages chan domain.ChatMessage
}

// Messages returns the channel of incoming messages. It is closed when the
// subscription ends, either through Close or the Subscribe context.
func (s *Subscription) Messages() <-chan domain.ChatMessage {
	return s.messages
}

// Close ends the subscription and releases its Redis connection.
func (s *Subscription) Close() error {
	return s.ps.Close()
}

// Subscribe starts listening on room. It returns once Redis has confirmed
// the subscription, so a message published after Subscribe returns is
// guaranteed to be delivered.
func (r *Relay) Subscribe(ctx context.Context, room string) (*Subscription, error) {
	ps := r.client.Subscribe(ctx, channelKey(room))
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("chat.Relay.Subscribe: %w", err)
	}

	sub := &Subscription{ps: ps, messages: make(chan domain.ChatMessage)}
	go sub.forward(ctx)
	return sub, nil
}

// forward decodes pub/sub payloads onto the messages channel until the
// Redis channel closes or ctx is done.
func (s *Subscription) forward(ctx context.Context) {
	defer close(s.messages)
	defer s.ps.Close()

	in := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-in:
			if !ok {
				return
			}
			var m domain.ChatMessage
			if err := json.Unmarshal([]byte(raw.Payload), &m); err != nil {
				slog.WarnContext(ctx, "chat: dropping malformed message", "channel", raw.Channel, "error", err)
				continue
			}
			select {
			case s.messages <- m:
			case <-ctx.Done():
				return
			}
		}
	}
}

func channelKey(room string) string { return channelPrefix + room }
func historyKey(room string) string { return historyPrefix + room }
