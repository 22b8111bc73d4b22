package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
)

var todoCols = []string{
	"id", "name", "is_completed", "public_id", "user_id",
	"id", "name", "email", "public_id", "is_admin",
}

func TestTodosRepository_List_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectQuery(`(?s)FROM todos t.*JOIN users u ON u.id = t.user_id.*ORDER BY t.id`).
		WillReturnRows(sqlmock.NewRows(todoCols).
			AddRow(1, "buy milk", false, "todo-1", 7, 7, "alice", "alice@mail.com", "user-7", true))

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)

	got := todos[0]
	require.Equal(t, "buy milk", got.Name)
	require.Equal(t, "todo-1", got.PublicID)
	require.Equal(t, int64(7), got.UserID)
	require.Equal(t, models.User{ID: 7, Name: "alice", Email: "alice@mail.com", PublicID: "user-7", IsAdmin: true}, got.Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodosRepository_List_DBError(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectQuery(`FROM todos`).WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestTodosRepository_GetByPublicID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectQuery(`WHERE t.public_id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(todoCols))

	_, err := repo.GetByPublicID(context.Background(), "missing")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// поиск владельца и вставка в одной транзакции
func TestTodosRepository_Create_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT id, name, email, public_id, is_admin.*FROM users.*WHERE email = \$1`).
		WithArgs("alice@mail.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(7, "alice", "alice@mail.com", "user-7", false))
	mock.ExpectQuery(`INSERT INTO todos \(name, is_completed, public_id, user_id\)`).
		WithArgs("buy milk", true, "todo-1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	todo, err := repo.Create(context.Background(), "alice@mail.com", models.Todo{
		Name: "buy milk", IsCompleted: true, PublicID: "todo-1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), todo.ID)
	require.Equal(t, int64(7), todo.UserID)
	require.Equal(t, "alice", todo.Owner.Name)
	require.True(t, todo.IsCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

// владельца нет: INSERT не выполняется, транзакция откатывается
func TestTodosRepository_Create_OwnerNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE email = \$1`).
		WithArgs("ghost@mail.com").
		WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), "ghost@mail.com", models.Todo{Name: "buy milk", PublicID: "todo-1"})
	require.ErrorIs(t, err, serr.ErrOwnerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodosRepository_Create_InsertFails(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(7, "alice", "alice@mail.com", "user-7", false))
	mock.ExpectQuery(`INSERT INTO todos`).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), "alice@mail.com", models.Todo{Name: "buy milk", PublicID: "todo-1"})
	require.ErrorIs(t, err, serr.ErrInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodosRepository_Create_BeginFails(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "alice@mail.com", models.Todo{Name: "buy milk"})
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestTodosRepository_Update_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE todos`).
		WithArgs("buy milk", true, "todo-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WHERE t.public_id = \$1`).
		WithArgs("todo-1").
		WillReturnRows(sqlmock.NewRows(todoCols).
			AddRow(3, "buy milk", true, "todo-1", 7, 7, "alice", "alice@mail.com", "user-7", false))
	mock.ExpectCommit()

	todo, err := repo.Update(context.Background(), "todo-1", "buy milk", true)
	require.NoError(t, err)
	require.True(t, todo.IsCompleted)
	require.Equal(t, "alice@mail.com", todo.Owner.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodosRepository_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE todos`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), "missing", "buy milk", true)
	require.ErrorIs(t, err, serr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodosRepository_Delete_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectExec(`DELETE FROM todos WHERE public_id = \$1`).
		WithArgs("todo-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "todo-1"))
}

func TestTodosRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTodosRepository(db)

	mock.ExpectExec(`DELETE FROM todos`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), "missing"), serr.ErrNotFound)
}

func TestHealthRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewHealthRepository(db)

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)
	require.ErrorIs(t, repo.Ping(context.Background()), serr.ErrInternal)
}
