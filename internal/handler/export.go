// export.go implements GET /export.
// Returns every request as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).

package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "text", "tags", "clarity_score", "created_at", "created_label",
}

// GetExport implements GET /export.
// Use ?format=csv to receive CSV; default is JSON. ?tag= limits the export
// to requests carrying that tag.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	rows, err := s.export.Export(ctx, derefString(req.Params.Tag))
	if err != nil {
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.Csv
	if wantCSV {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.GetExport200JSONResponse {
	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes domain rows as CSV and wraps in the streaming response type.
// Tags within a row are joined with domain.TagSeparator to keep each request on a single CSV line.
func buildCSVResponse(rows []domain.ExportRow) gen.GetExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	id, _ := uuid.Parse(r.ID)
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.ExportRow{
		Id:           id,
		Text:         r.Text,
		Tags:         tags,
		ClarityScore: r.ClarityScore,
		CreatedAt:    r.CreatedAt,
		CreatedLabel: r.CreatedLabel,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.ID,
		r.Text,
		strings.Join(r.Tags, domain.TagSeparator),
		strconv.Itoa(r.ClarityScore),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.CreatedLabel,
	}
}
