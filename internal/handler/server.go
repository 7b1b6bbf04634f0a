// Package handler implements the HTTP handlers for the Help Board API.
// All JSON handlers are methods on Server, which implements
// gen.StrictServerInterface. Methods are split into domain-specific files
// (health.go, request.go, chat.go, etc.) but all share the same Server struct
// so they can access its dependencies. The chat stream and the OpenAPI
// document are plain http.HandlerFuncs mounted next to the generated router.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/helpboard/backend/internal/chat"
	"github.com/helpboard/backend/internal/domain"
)

// RequestServicer defines the business operations the request handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching a store.
type RequestServicer interface {
	Create(ctx context.Context, in domain.NewRequest) (domain.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error)
	ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error)
	Score(text string) int
}

// TagServicer defines the operations the tag handler depends on.
type TagServicer interface {
	List(ctx context.Context, prefix string) ([]domain.TagCount, error)
}

// ChatServicer defines the operations the chat handlers depend on.
type ChatServicer interface {
	Post(ctx context.Context, room, author, text string) (domain.ChatMessage, error)
	History(ctx context.Context, room string, limit int) ([]domain.ChatMessage, error)
	Subscribe(ctx context.Context, room string) (*chat.Subscription, error)
}

// ExportServicer defines the operations the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, tag string) ([]domain.ExportRow, error)
}

// defaultKeepAlive is how often an idle chat stream sends a comment line.
const defaultKeepAlive = 15 * time.Second

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions()).
type Server struct {
	requests  RequestServicer
	tags      TagServicer
	chat      ChatServicer
	export    ExportServicer
	keepAlive time.Duration
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for services a test does not exercise.
func NewServer(requests RequestServicer, tags TagServicer, chat ChatServicer, export ExportServicer) *Server {
	return &Server{
		requests:  requests,
		tags:      tags,
		chat:      chat,
		export:    export,
		keepAlive: defaultKeepAlive,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// WithKeepAlive overrides the chat stream keep-alive interval.
func (s *Server) WithKeepAlive(d time.Duration) *Server {
	if d > 0 {
		s.keepAlive = d
	}
	return s
}
