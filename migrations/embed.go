// Package migrations embeds the goose SQL migrations so the API binary and
// the integration tests apply exactly the same schema.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
