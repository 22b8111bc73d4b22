package http_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/config"
	router "github.com/IvanChernomyrdin/go-todo-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// newTestServer поднимает роутер поверх настоящей sqlite-базы с применёнными миграциями.
func newTestServer(t *testing.T, maxBody int64) (http.Handler, *sql.DB) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		DB:         config.DBConfig{DSN: "sqlite:///" + filepath.Join(dir, "todo.db")},
		Migrations: config.MigrationsConfig{Enabled: true},
	}
	log := logger.New(logger.Options{File: filepath.Join(dir, "http.log")})

	db, err := config.Init(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.NewServices(service.Repositories{
		Users:  repository.NewUsersRepository(db),
		Todos:  repository.NewTodosRepository(db),
		Health: repository.NewHealthRepository(db),
	})
	return router.NewRouter(api.NewHandler(svc, log), maxBody), db
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(api.ContentType, api.JsonContentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func createUser(t *testing.T, h http.Handler, name, email string) models.User {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/users/", `{"name":"`+name+`","email":"`+email+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.User](t, rr)
}

func createTodo(t *testing.T, h http.Handler, name, email string) models.Todo {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/todos/", `{"name":"`+name+`","email":"`+email+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.Todo](t, rr)
}

func TestRouter_HomeAndHealth(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, api.WelcomeMessage, decode[models.WelcomeResponse](t, rr).Message)
	require.Equal(t, api.JsonContentType, rr.Header().Get(api.ContentType))

	rr = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", decode[models.HealthResponse](t, rr).Status)
}

// create -> get возвращает те же поля, завершающий слэш необязателен
func TestRouter_User_RoundTrip(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodPost, "/users", `{"name":"alice","email":"a@x.io","is admin":true}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[models.User](t, rr)
	require.Len(t, created.ID, 36)
	require.Equal(t, "alice", created.Name)
	require.Equal(t, "a@x.io", created.Email)
	require.True(t, created.IsAdmin)

	for _, path := range []string{"/users/" + created.ID, "/users/" + created.ID + "/"} {
		rr = do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rr.Code, path)
		require.Equal(t, created, decode[models.User](t, rr))
	}

	rr = do(t, h, http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, []models.User{created}, decode[[]models.User](t, rr))
}

func TestRouter_User_ListEmpty(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/todos/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestRouter_User_DuplicateEmail(t *testing.T) {
	h, db := newTestServer(t, 1<<20)

	createUser(t, h, "alice", "a@x.io")

	rr := do(t, h, http.MethodPost, "/users/", `{"name":"alice2","email":"a@x.io"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	e := decode[models.ErrorResponse](t, rr)
	require.Equal(t, http.StatusText(http.StatusConflict), e.Error)
	require.NotEmpty(t, e.Message)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestRouter_User_Validation(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"alice"}`},
		{"short name", `{"name":"bob","email":"b@x.io"}`},
		{"long email", `{"name":"alice","email":"` + strings.Repeat("e", 29) + `"}`},
		{"bad json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/users/", tc.body)
			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			require.Equal(t, http.StatusText(http.StatusBadRequest), decode[models.ErrorResponse](t, rr).Error)
		})
	}
}

func TestRouter_UnknownIDs(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/users/nope", ""},
		{http.MethodPut, "/users/nope", `{"name":"alice"}`},
		{http.MethodDelete, "/users/nope", ""},
		{http.MethodGet, "/todos/nope", ""},
		{http.MethodPut, "/todos/nope", `{"name":"task","completed":true}`},
		{http.MethodDelete, "/todos/nope", ""},
	}
	for _, req := range requests {
		rr := do(t, h, req.method, req.path, req.body)
		require.Equal(t, http.StatusNotFound, rr.Code, req.method+" "+req.path)
		require.Equal(t, http.StatusText(http.StatusNotFound), decode[models.ErrorResponse](t, rr).Error)
	}
}

// Обновление пользователя без "is admin" флаг не меняет
func TestRouter_User_Update(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodPost, "/users/", `{"name":"alice","email":"a@x.io","is admin":true}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	u := decode[models.User](t, rr)

	rr = do(t, h, http.MethodPut, "/users/"+u.ID+"/", `{"name":"alicia"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[models.User](t, rr)
	require.Equal(t, "alicia", updated.Name)
	require.True(t, updated.IsAdmin)
	require.Equal(t, u.Email, updated.Email)

	rr = do(t, h, http.MethodPut, "/users/"+u.ID, `{"name":"alicia","is admin":false}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, decode[models.User](t, rr).IsAdmin)

	rr = do(t, h, http.MethodGet, "/users/"+u.ID, "")
	require.Equal(t, models.User{ID: u.ID, Name: "alicia", Email: "a@x.io"}, decode[models.User](t, rr))
}

func TestRouter_Todo_RoundTripAndUpdate(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	owner := createUser(t, h, "alice", "a@x.io")
	todo := createTodo(t, h, "buy milk", "a@x.io")
	require.Len(t, todo.ID, 36)
	require.Equal(t, "buy milk", todo.Name)
	require.False(t, todo.Completed)
	require.Equal(t, models.Owner{PublicID: owner.ID, Name: owner.Name, Email: owner.Email}, todo.Owner)

	rr := do(t, h, http.MethodGet, "/todos/"+todo.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, todo, decode[models.Todo](t, rr))

	rr = do(t, h, http.MethodPut, "/todos/"+todo.ID+"/", `{"name":"buy milk","completed":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.True(t, decode[models.Todo](t, rr).Completed)

	rr = do(t, h, http.MethodGet, "/todos/"+todo.ID+"/", "")
	got := decode[models.Todo](t, rr)
	require.True(t, got.Completed)
	require.Equal(t, "buy milk", got.Name)
	require.Equal(t, todo.Owner, got.Owner)

	rr = do(t, h, http.MethodGet, "/todos", "")
	require.Equal(t, []models.Todo{got}, decode[[]models.Todo](t, rr))
}

func TestRouter_Todo_UnknownOwner(t *testing.T) {
	h, db := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodPost, "/todos/", `{"name":"buy milk","email":"ghost@x.io"}`)
	require.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM todos`).Scan(&n))
	require.Zero(t, n)
}

func TestRouter_Todo_UpdateRequiresBothFields(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	createUser(t, h, "alice", "a@x.io")
	todo := createTodo(t, h, "buy milk", "a@x.io")

	rr := do(t, h, http.MethodPut, "/todos/"+todo.ID, `{"completed":true}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	rr = do(t, h, http.MethodPut, "/todos/"+todo.ID, `{"name":"buy milk"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// Пользователя с задачами удалить нельзя, после удаления задач можно
func TestRouter_DeleteUserWithTodos(t *testing.T) {
	h, db := newTestServer(t, 1<<20)

	u := createUser(t, h, "alice", "a@x.io")
	todo := createTodo(t, h, "buy milk", "a@x.io")

	rr := do(t, h, http.MethodDelete, "/users/"+u.ID, "")
	require.Equal(t, http.StatusConflict, rr.Code, rr.Body.String())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	require.Equal(t, 1, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM todos`).Scan(&n))
	require.Equal(t, 1, n)

	rr = do(t, h, http.MethodDelete, "/todos/"+todo.ID+"/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, api.DeletedMessage, decode[models.MessageResponse](t, rr).Success)

	rr = do(t, h, http.MethodDelete, "/users/"+u.ID+"/", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/users/"+u.ID, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	h, _ := newTestServer(t, 64)

	body := `{"name":"alice","email":"` + strings.Repeat("e", 100) + `"}`
	rr := do(t, h, http.MethodPost, "/users/", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	h, _ := newTestServer(t, 1<<20)

	rr := do(t, h, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "route not found", decode[models.ErrorResponse](t, rr).Message)

	rr = do(t, h, http.MethodPatch, "/users/", "")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, "method not allowed", decode[models.ErrorResponse](t, rr).Message)
}
