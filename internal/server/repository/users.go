package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
)

const userColumns = `id, name, email, public_id, is_admin`

// UsersRepository реализует доступ к таблице users.
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// List возвращает всех пользователей в порядке создания.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+`
		   FROM users
		  ORDER BY id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PublicID, &u.IsAdmin); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// GetByPublicID ищет пользователя по public_id.
//
// Ошибки:
//   - ErrNotFound: пользователя нет;
//   - ErrInternal: ошибка БД.
func (r *UsersRepository) GetByPublicID(ctx context.Context, publicID string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+`
		   FROM users
		  WHERE public_id = $1`,
		publicID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PublicID, &u.IsAdmin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Create сохраняет нового пользователя.
//
// Ошибки:
//   - ErrAlreadyExists: email (или public_id) уже занят;
//   - ErrInternal: ошибка БД.
func (r *UsersRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, public_id, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		user.Name, user.Email, user.PublicID, user.IsAdmin,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, serr.ErrInternal
	}

	return user, nil
}

// Update перезаписывает имя и, если isAdmin != nil, флаг администратора.
//
// Ошибки:
//   - ErrNotFound: пользователя нет;
//   - ErrInternal: ошибка БД.
func (r *UsersRepository) Update(ctx context.Context, publicID, name string, isAdmin *bool) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users
		    SET name = $1,
		        is_admin = COALESCE($2, is_admin)
		  WHERE public_id = $3
		 RETURNING `+userColumns,
		name, isAdmin, publicID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PublicID, &u.IsAdmin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Delete удаляет пользователя по public_id.
//
// Ошибки:
//   - ErrNotFound: пользователя нет;
//   - ErrHasDependents: у пользователя есть задачи (ON DELETE RESTRICT);
//   - ErrInternal: ошибка БД.
func (r *UsersRepository) Delete(ctx context.Context, publicID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE public_id = $1`,
		publicID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return serr.ErrHasDependents
		}
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
