// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
// SQL одинаков для PostgreSQL и SQLite (плейсхолдеры $N, RETURNING).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/mattn/go-sqlite3"
)

// SQLSTATE коды PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// querier: общее между *sql.DB и *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// isUniqueViolation: нарушение UNIQUE (email уже занят).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// isForeignKeyViolation: нарушение внешнего ключа (на запись ссылаются другие строки).
//
// SQLite отдаёт SQLITE_CONSTRAINT_FOREIGNKEY при вставке с несуществующим родителем,
// а нарушение ON DELETE RESTRICT приходит как SQLITE_CONSTRAINT_TRIGGER.
// Своих триггеров в схеме нет, поэтому TRIGGER здесь всегда означает внешний ключ.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintTrigger
	}
	return false
}
