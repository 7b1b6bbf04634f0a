package handler

import (
	"context"
	"errors"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/format"
	"github.com/helpboard/backend/internal/handler/gen"
)

// CreateRequest handles POST /requests.
func (s *Server) CreateRequest(ctx context.Context, req gen.CreateRequestRequestObject) (gen.CreateRequestResponseObject, error) {
	if req.Body == nil {
		return gen.CreateRequest422JSONResponse(requestBody("request body is required")), nil
	}

	in := domain.NewRequest{Text: req.Body.Text}
	if req.Body.Tags != nil {
		in.Tags = *req.Body.Tags
	}

	created, err := s.requests.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateRequest422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateRequest201JSONResponse(requestToResponse(created)), nil
}

// ListRequests handles GET /requests.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and an
// exact ?tag= filter.
func (s *Server) ListRequests(ctx context.Context, req gen.ListRequestsRequestObject) (gen.ListRequestsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	requests, total, err := s.requests.ListPaged(ctx, derefString(req.Params.Tag), params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Request, len(requests))
	for i, r := range requests {
		data[i] = requestToResponse(r)
	}
	return gen.ListRequests200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      int(total),
			TotalPages: params.TotalPages(total),
		},
	}, nil
}

// GetRequest handles GET /requests/{id}.
func (s *Server) GetRequest(ctx context.Context, req gen.GetRequestRequestObject) (gen.GetRequestResponseObject, error) {
	r, err := s.requests.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetRequest404JSONResponse(notFoundBody("request not found")), nil
		}
		return nil, err
	}

	return gen.GetRequest200JSONResponse(requestToResponse(r)), nil
}

// ScoreClarity handles POST /clarity. Nothing is stored.
func (s *Server) ScoreClarity(_ context.Context, req gen.ScoreClarityRequestObject) (gen.ScoreClarityResponseObject, error) {
	if req.Body == nil {
		return gen.ScoreClarity422JSONResponse(requestBody("request body is required")), nil
	}
	return gen.ScoreClarity200JSONResponse{Score: s.requests.Score(req.Body.Text)}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToResponse converts a domain.Request into the generated gen.Request
// type, adding the labels the board renders.
func requestToResponse(r domain.Request) gen.Request {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.Request{
		Id:           r.ID,
		Text:         r.Text,
		Tags:         tags,
		ClarityScore: r.ClarityScore,
		CreatedAt:    r.CreatedAt,
		CreatedLabel: format.Date(r.CreatedAt.UTC()),
		TagLabel:     format.Pluralize(len(tags), "tag", ""),
	}
}

// derefString returns the value of p, or "" if p is nil.
func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
