package repository

import (
	"context"
	"database/sql"

	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
)

// HealthRepository проверяет доступность БД.
type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping проверяет соединение с БД.
func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return serr.ErrInternal
	}
	return nil
}
