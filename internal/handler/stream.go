package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/helpboard/backend/internal/domain"
)

// StreamChat handles GET /chat/rooms/{room}/stream using Server-Sent Events.
//
// The room's recent history is replayed first, then every new message is
// sent as it arrives. Each message is one `event: message` frame whose data
// is the message JSON. Idle streams get a `: keep-alive` comment so proxies
// do not drop them.
func (s *Server) StreamChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	room := chi.URLParam(r, "room")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, codeInternal, "streaming unsupported")
		return
	}

	// Subscribe before reading history so nothing published in between is lost.
	sub, err := s.chat.Subscribe(ctx, room)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, codeValidation, domain.ValidationMessage(err))
			return
		}
		slog.ErrorContext(ctx, "chat stream: subscribe failed", "room", room, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
		return
	}
	defer sub.Close()

	history, err := s.chat.History(ctx, room, 0)
	if err != nil {
		slog.ErrorContext(ctx, "chat stream: history failed", "room", room, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
		return
	}

	// The server's WriteTimeout would otherwise cut the stream off.
	//nolint:errcheck // not every writer supports deadlines
	http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // nginx: disable buffering
	w.WriteHeader(http.StatusOK)

	seen := make(map[uuid.UUID]struct{}, len(history))
	for _, m := range history {
		seen[m.ID] = struct{}{}
		if err := writeEvent(w, m); err != nil {
			return
		}
	}
	flusher.Flush()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case m, ok := <-sub.Messages():
			if !ok {
				return
			}
			if _, dup := seen[m.ID]; dup {
				// Already replayed from history; only the first few
				// messages after subscribing can overlap.
				delete(seen, m.ID)
				continue
			}
			if err := writeEvent(w, m); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent writes one SSE message frame.
func writeEvent(w http.ResponseWriter, m domain.ChatMessage) error {
	data, err := json.Marshal(chatMessageToResponse(m))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: message\ndata: %s\n\n", data)
	return err
}
