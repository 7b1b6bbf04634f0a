package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/format"
	"github.com/helpboard/backend/internal/repo"
)

// exportPageSize is how many requests ExportService reads per repo call.
const exportPageSize = 100

// ExportService assembles a flat export of every request on the board.
type ExportService struct {
	requests repo.RequestRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(requests repo.RequestRepo) *ExportService {
	return &ExportService{requests: requests}
}

// Export returns one ExportRow per request, newest first, optionally limited
// to requests carrying tag. It walks the feed page by page until the total
// reported by the repo has been read or a short page comes back.
func (s *ExportService) Export(ctx context.Context, tag string) ([]domain.ExportRow, error) {
	rows := []domain.ExportRow{}
	for page := 1; ; page++ {
		p := domain.PaginationParams{Page: page, Limit: exportPageSize}
		batch, total, err := s.requests.ListPaged(ctx, strings.TrimSpace(tag), p)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		for _, r := range batch {
			rows = append(rows, toExportRow(r))
		}
		if len(batch) < exportPageSize || int64(len(rows)) >= total {
			return rows, nil
		}
	}
}

func toExportRow(r domain.Request) domain.ExportRow {
	return domain.ExportRow{
		ID:           r.ID.String(),
		Text:         r.Text,
		Tags:         r.Tags,
		ClarityScore: r.ClarityScore,
		CreatedAt:    r.CreatedAt,
		CreatedLabel: format.Date(r.CreatedAt.UTC()),
	}
}
