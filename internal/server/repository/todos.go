package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
)

// задача вместе с владельцем
const todoSelect = `
	SELECT t.id, t.name, t.is_completed, t.public_id, t.user_id,
	       u.id, u.name, u.email, u.public_id, u.is_admin
	  FROM todos t
	  JOIN users u ON u.id = t.user_id`

// TodosRepository реализует доступ к таблице todos.
// Все выборки возвращают задачу вместе с владельцем.
type TodosRepository struct {
	db *sql.DB
}

func NewTodosRepository(db *sql.DB) *TodosRepository {
	return &TodosRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(
		&t.ID, &t.Name, &t.IsCompleted, &t.PublicID, &t.UserID,
		&t.Owner.ID, &t.Owner.Name, &t.Owner.Email, &t.Owner.PublicID, &t.Owner.IsAdmin,
	)
	return t, err
}

// List возвращает все задачи в порядке создания.
func (r *TodosRepository) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, todoSelect+`
	 ORDER BY t.id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return todos, nil
}

// GetByPublicID ищет задачу по public_id.
//
// Ошибки:
//   - ErrNotFound: задачи нет;
//   - ErrInternal: ошибка БД.
func (r *TodosRepository) GetByPublicID(ctx context.Context, publicID string) (models.Todo, error) {
	return getTodo(ctx, r.db, publicID)
}

func getTodo(ctx context.Context, q querier, publicID string) (models.Todo, error) {
	t, err := scanTodo(q.QueryRowContext(ctx, todoSelect+`
	 WHERE t.public_id = $1`,
		publicID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, serr.ErrNotFound
		}
		return models.Todo{}, serr.ErrInternal
	}
	return t, nil
}

// Create находит владельца по email и создаёт задачу.
//
// Поиск и вставка выполняются в одной транзакции: если владельца нет,
// транзакция откатывается и строка не создаётся.
//
// Ошибки:
//   - ErrOwnerNotFound: нет пользователя с таким email;
//   - ErrInternal: ошибка БД.
func (r *TodosRepository) Create(ctx context.Context, ownerEmail string, todo models.Todo) (models.Todo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}
	// после Commit откат ничего не делает
	defer tx.Rollback()

	var owner models.User
	err = tx.QueryRowContext(ctx,
		`SELECT `+userColumns+`
		   FROM users
		  WHERE email = $1`,
		ownerEmail,
	).Scan(&owner.ID, &owner.Name, &owner.Email, &owner.PublicID, &owner.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, serr.ErrOwnerNotFound
		}
		return models.Todo{}, serr.ErrInternal
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO todos (name, is_completed, public_id, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		todo.Name, todo.IsCompleted, todo.PublicID, owner.ID,
	).Scan(&todo.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// владельца удалили между SELECT и INSERT
			return models.Todo{}, serr.ErrOwnerNotFound
		}
		return models.Todo{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.Todo{}, serr.ErrInternal
	}

	todo.UserID = owner.ID
	todo.Owner = owner
	return todo, nil
}

// Update перезаписывает имя и признак выполнения задачи и возвращает её с владельцем.
//
// Ошибки:
//   - ErrNotFound: задачи нет;
//   - ErrInternal: ошибка БД.
func (r *TodosRepository) Update(ctx context.Context, publicID, name string, completed bool) (models.Todo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE todos
		    SET name = $1,
		        is_completed = $2
		  WHERE public_id = $3`,
		name, completed, publicID,
	)
	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}
	if n == 0 {
		return models.Todo{}, serr.ErrNotFound
	}

	todo, err := getTodo(ctx, tx, publicID)
	if err != nil {
		return models.Todo{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Todo{}, serr.ErrInternal
	}
	return todo, nil
}

// Delete удаляет задачу по public_id.
//
// Ошибки:
//   - ErrNotFound: задачи нет;
//   - ErrInternal: ошибка БД.
func (r *TodosRepository) Delete(ctx context.Context, publicID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE public_id = $1`,
		publicID,
	)
	if err != nil {
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
