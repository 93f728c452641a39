// Package schemas хранит JSON-схемы ответов backend, встроенные в бинарник.
package schemas

import "embed"

//go:embed responses
var SchemasFS embed.FS
