// Package migrations embeds the SQL migrations for the local dashboard
// database. They are applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
