package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/helpboard/backend/internal/domain"
)

// TagRepo lists the tags currently in use across stored requests.
type TagRepo interface {
	// List returns every tag whose name starts with prefix, ordered by name,
	// with the number of requests carrying it. An empty prefix lists all tags.
	List(ctx context.Context, prefix string) ([]domain.TagCount, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a Postgres TagRepo.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// List unnests the tags arrays and groups them. starts_with avoids having
// to escape LIKE wildcards in user input.
func (r *pgTagRepo) List(ctx context.Context, prefix string) ([]domain.TagCount, error) {
	const q = `
		SELECT tag, count(*)
		FROM requests, unnest(tags) AS tag
		WHERE starts_with(tag, @prefix)
		GROUP BY tag
		ORDER BY tag`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"prefix": prefix})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}
	return tags, nil
}
