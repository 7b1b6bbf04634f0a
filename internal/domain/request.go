// Package domain contains the core data types for the Help Board backend.
// This package has no internal dependencies and is imported by every other
// internal package (repo, service, handler, chat, web).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagSeparator joins a request's tags into one column of a flat export.
// Tags may not contain it.
const TagSeparator = "|"

// Request is a user-submitted request for help.
// Tags are unique within a request and keep the order they were added in.
// ID and CreatedAt are assigned by the store when the request is persisted;
// a persisted Request is never modified.
type Request struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	Tags         []string  `json:"tags"`
	ClarityScore int       `json:"clarity_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewRequest is the input for creating a Request: the raw form values
// before tag normalisation and scoring.
type NewRequest struct {
	Text string
	Tags []string
}
