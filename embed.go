// Package realtors exposes repository-level assets shared by the binaries,
// such as the embedded SQL migrations.
package realtors

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
