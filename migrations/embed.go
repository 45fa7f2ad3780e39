// Package migrations embeds the versioned SQL schema files for each storage
// backend. Subdirectories are named after the backend (sqlite, postgres).
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
