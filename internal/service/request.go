// Package service contains the business logic for the Help Board backend.
// Services validate inputs, apply the tag and clarity rules, and orchestrate
// repo and relay calls. No queries live here; services depend on interfaces.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/helpboard/backend/internal/clarity"
	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/repo"
	"github.com/helpboard/backend/internal/tags"
)

const (
	maxTextLength = 2000
	maxTags       = 10
	maxTagLength  = 40
)

// RequestService implements business logic for help requests.
type RequestService struct {
	repo repo.RequestRepo
}

// NewRequestService constructs a RequestService backed by the provided RequestRepo.
func NewRequestService(r repo.RequestRepo) *RequestService {
	return &RequestService{repo: r}
}

// Create normalises and validates a submission, scores it and persists it.
// The submitted tags are trimmed, deduplicated and stripped of blanks in
// their original order. Returns domain.ErrValidation for bad input.
func (s *RequestService) Create(ctx context.Context, in domain.NewRequest) (domain.Request, error) {
	req := domain.Request{
		Text: strings.TrimSpace(in.Text),
		Tags: tags.FromInput(in.Tags),
	}
	if err := validateRequest(req); err != nil {
		return domain.Request{}, err
	}
	req.ClarityScore = clarity.Score(req.Text)

	result, err := s.repo.Create(ctx, req)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.RequestService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single request.
// Returns domain.ErrNotFound if it does not exist.
func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.RequestService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of the feed, newest first, and the total count.
// tag is trimmed; an empty tag lists every request.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RequestService) ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error) {
	requests, total, err := s.repo.ListPaged(ctx, strings.TrimSpace(tag), p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.RequestService.ListPaged: %w", err)
	}
	if requests == nil {
		requests = []domain.Request{}
	}
	return requests, total, nil
}

// Score previews the clarity score Create would store for text.
func (s *RequestService) Score(text string) int {
	return clarity.Score(strings.TrimSpace(text))
}

// validateRequest enforces the rules on an already-normalised request.
//   - Text must be non-empty and at most maxTextLength characters.
//   - At most maxTags tags, each at most maxTagLength characters and free of
//     domain.TagSeparator.
func validateRequest(req domain.Request) error {
	if req.Text == "" {
		return fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(req.Text) > maxTextLength {
		return fmt.Errorf("%w: text must be at most %d characters", domain.ErrValidation, maxTextLength)
	}
	if len(req.Tags) > maxTags {
		return fmt.Errorf("%w: at most %d tags are allowed", domain.ErrValidation, maxTags)
	}
	for _, t := range req.Tags {
		if utf8.RuneCountInString(t) > maxTagLength {
			return fmt.Errorf("%w: tag %q is longer than %d characters", domain.ErrValidation, t, maxTagLength)
		}
		if strings.Contains(t, domain.TagSeparator) {
			return fmt.Errorf("%w: tag %q must not contain %q", domain.ErrValidation, t, domain.TagSeparator)
		}
	}
	return nil
}
