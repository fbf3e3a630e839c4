// Package migrations embeds the SQL schema migrations so the compiled server
// can bootstrap its own database without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
