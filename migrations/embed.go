// Package migrations embeds the SQL migration files so the migrate command
// can run without the source tree present.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
