package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousAuthor is used when a chat message is posted without a name.
const AnonymousAuthor = "anonymous"

// ChatMessage is a single message posted to a chat room.
// Messages travel through the relay as JSON, so the field tags are part of
// the wire format.
type ChatMessage struct {
	ID     uuid.UUID `json:"id"`
	Room   string    `json:"room"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}
