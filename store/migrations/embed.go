package migrations

import "embed"

// FS contains the SQLite migrations for snapshot storage.
//
//go:embed *.sql
var FS embed.FS
