// Package migrations хранит SQL-миграции схемы и встраивает их в бинарник.
//
// Для каждого диалекта свой каталог: postgres/ и sqlite3/.
// Формат файлов golang-migrate: NNNNNN_name.up.sql / NNNNNN_name.down.sql.
package migrations

import "embed"

// FS: встроенные файлы миграций.
//
//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
