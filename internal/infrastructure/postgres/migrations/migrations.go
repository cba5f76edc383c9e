// Package migrations embebe los scripts SQL de goose para que el binario
// pueda migrar el esquema al arrancar, sin archivos externos.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
