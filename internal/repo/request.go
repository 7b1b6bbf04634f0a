// Package repo contains all storage access for the Help Board backend.
// Each resource has an interface plus a Postgres and a Firestore
// implementation. No business logic lives here, only queries and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/helpboard/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RequestRepo defines the persistence operations for help requests.
// Requests are immutable once stored, so there is no Update or Delete.
type RequestRepo interface {
	// Create stores a new request and returns the persisted record with the
	// store-generated ID and CreatedAt populated. ID and CreatedAt on the
	// input are ignored.
	Create(ctx context.Context, req domain.Request) (domain.Request, error)

	// GetByID returns a single request.
	// Returns domain.ErrNotFound if no request with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error)

	// ListPaged returns one page of requests, newest first, and the total
	// number of matching requests. An empty tag matches every request;
	// otherwise only requests carrying exactly that tag are returned.
	ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error)
}

// pgRequestRepo is the Postgres implementation of RequestRepo.
type pgRequestRepo struct {
	db db
}

// NewRequestRepo constructs a Postgres RequestRepo.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRequestRepo(db db) RequestRepo {
	return &pgRequestRepo{db: db}
}

// Create inserts a request row. id and created_at come from column defaults.
func (r *pgRequestRepo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	const q = `
		INSERT INTO requests (text, tags, clarity_score)
		VALUES (@text, @tags, @clarity_score)
		RETURNING id, text, tags, clarity_score, created_at`

	args := pgx.NamedArgs{
		"text":          req.Text,
		"tags":          nonNil(req.Tags),
		"clarity_score": req.ClarityScore,
	}

	result, err := scanRequest(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a request by primary key.
func (r *pgRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	const q = `
		SELECT id, text, tags, clarity_score, created_at
		FROM requests
		WHERE id = @id`

	result, err := scanRequest(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of requests ordered by created_at descending.
// The tag filter uses array containment so it can be served by the GIN index.
func (r *pgRequestRepo) ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error) {
	const countQ = `
		SELECT count(*)
		FROM requests
		WHERE @tag::text = '' OR tags @> ARRAY[@tag]::text[]`

	const pageQ = `
		SELECT id, text, tags, clarity_score, created_at
		FROM requests
		WHERE @tag::text = '' OR tags @> ARRAY[@tag]::text[]
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"tag": tag}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, pageQ, pgx.NamedArgs{
		"tag":    tag,
		"limit":  p.Limit,
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	requests := []domain.Request{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: scan: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: rows: %w", err)
	}
	return requests, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRequest maps a single row into a domain.Request.
func scanRequest(s scanner) (domain.Request, error) {
	var (
		req domain.Request
		id  pgtype.UUID
	)
	err := s.Scan(&id, &req.Text, &req.Tags, &req.ClarityScore, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Request{}, domain.ErrNotFound
		}
		return domain.Request{}, err
	}
	req.ID = uuid.UUID(id.Bytes)
	req.Tags = nonNil(req.Tags)
	return req, nil
}

// nonNil turns a nil slice into an empty one. Postgres stores '{}' rather
// than NULL and JSON renders [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
