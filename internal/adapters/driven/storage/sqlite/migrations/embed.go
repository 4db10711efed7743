// Package migrations holds the library schema as numbered SQL scripts.
//
// Each NNN_description.up.sql runs once, inside a transaction, when a
// library older than NNN is opened. The matching .down.sql reverses it by
// hand; nothing runs it automatically.
package migrations

import "embed"

// FS is read by the sqlite store at open time.
//
//go:embed *.sql
var FS embed.FS
