// Package podium holds assets shared across binaries, such as the SQL migrations.
package podium

import "embed"

// Migrations contains goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
