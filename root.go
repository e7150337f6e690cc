package tutorbot

import "embed"

// MigrationsFS embeds the SQL migrations applied on startup when the
// postgres-backed credential store is configured.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
