package handler

import (
	"context"

	"github.com/helpboard/backend/internal/handler/gen"
)

// ListTags handles GET /tags.
// The optional ?q= query parameter filters tags by name prefix.
func (s *Server) ListTags(ctx context.Context, req gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	tags, err := s.tags.List(ctx, derefString(req.Params.Q))
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListTags200JSONResponse, len(tags))
	for i, t := range tags {
		resp[i] = gen.TagCount{Name: t.Name, Count: int(t.Count)}
	}
	return resp, nil
}
