package domain

import "time"

// ExportRow is a single row in the full-data export: one per request,
// flattened so it can be written as CSV as well as JSON.
//
// Tags keep their stored order. Callers that need a joined string (e.g. CSV)
// should join with "|".
type ExportRow struct {
	ID           string
	Text         string
	Tags         []string
	ClarityScore int
	CreatedAt    time.Time
	CreatedLabel string // CreatedAt as rendered on the board, e.g. "Mar 5, 2024"
}
