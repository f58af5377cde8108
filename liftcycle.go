// Package liftcycle holds assets embedded into the liftcycle binaries.
package liftcycle

import "embed"

// MigrationsFS contains the Postgres schema migrations.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
