package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/repo"
)

// TagService lists the tags in use, for filtering and autocomplete.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns tags starting with the trimmed prefix, ordered by name.
// Matching is case-sensitive, like tag identity itself.
// Always returns a non-nil slice.
func (s *TagService) List(ctx context.Context, prefix string) ([]domain.TagCount, error) {
	result, err := s.tags.List(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if result == nil {
		return []domain.TagCount{}, nil
	}
	return result, nil
}
