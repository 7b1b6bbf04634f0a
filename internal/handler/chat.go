package handler

import (
	"context"
	"errors"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/handler/gen"
)

// ListChatMessages handles GET /chat/rooms/{room}/messages.
// ?limit= caps how many recent messages come back; the relay's history cap
// applies when it is absent.
func (s *Server) ListChatMessages(ctx context.Context, req gen.ListChatMessagesRequestObject) (gen.ListChatMessagesResponseObject, error) {
	limit := 0
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}

	msgs, err := s.chat.History(ctx, req.Room, limit)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListChatMessages422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	resp := make(gen.ListChatMessages200JSONResponse, len(msgs))
	for i, m := range msgs {
		resp[i] = chatMessageToResponse(m)
	}
	return resp, nil
}

// PostChatMessage handles POST /chat/rooms/{room}/messages.
func (s *Server) PostChatMessage(ctx context.Context, req gen.PostChatMessageRequestObject) (gen.PostChatMessageResponseObject, error) {
	if req.Body == nil {
		return gen.PostChatMessage422JSONResponse(requestBody("request body is required")), nil
	}

	msg, err := s.chat.Post(ctx, req.Room, derefString(req.Body.Author), req.Body.Text)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.PostChatMessage422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.PostChatMessage201JSONResponse(chatMessageToResponse(msg)), nil
}

// chatMessageToResponse converts a domain.ChatMessage to the generated API type.
func chatMessageToResponse(m domain.ChatMessage) gen.ChatMessage {
	return gen.ChatMessage{
		Id:     m.ID,
		Room:   m.Room,
		Author: m.Author,
		Text:   m.Text,
		SentAt: m.SentAt,
	}
}
