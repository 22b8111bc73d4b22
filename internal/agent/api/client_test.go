package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-todo-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/utils"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, float64(1), got["a"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	// завершающий слэш в адресе сервера обрезается
	c := api.NewClient(srv.URL + "/")

	var resp map[string]any
	require.NoError(t, c.PostJSON("/x", map[string]any{"a": 1}, &resp))
	require.Equal(t, true, resp["ok"])
}

func TestClient_GetJSON_NoBody_NoContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		require.Empty(t, raw)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	var resp map[string]any
	require.NoError(t, api.NewClient(srv.URL).GetJSON("/x", &resp))
	require.Nil(t, resp)
}

func TestClient_ErrorResponse_Decoded(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/abc/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Not Found", Message: "not found"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := api.NewClient(srv.URL).GetUser("abc")
	require.Error(t, err)
	require.True(t, api.IsStatus(err, http.StatusNotFound))
	require.Equal(t, "404 Not Found: not found", err.Error())
}

func TestClient_ErrorResponse_PlainText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := api.NewClient(srv.URL).ListTodos()
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_CreateUser_SendsSpacedKeys(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "alice", got["name"])
		require.Equal(t, true, got["is admin"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.User{ID: "u1", Name: "alice", Email: "a@x.io", IsAdmin: true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	u, err := api.NewClient(srv.URL).CreateUser(models.CreateUserRequest{
		Name:    utils.StrPtr("alice"),
		Email:   utils.StrPtr("a@x.io"),
		IsAdmin: utils.Ptr(true),
	})
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.True(t, u.IsAdmin)
}

func TestClient_UpdateAndDeleteTodo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos/t1/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var req models.UpdateTodoRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.Completed)
			json.NewEncoder(w).Encode(models.Todo{ID: "t1", Name: *req.Name, Completed: *req.Completed})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(models.MessageResponse{Success: "Data deleted successfully"})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	todo, err := c.UpdateTodo("t1", models.UpdateTodoRequest{Name: utils.StrPtr("buy milk"), Completed: utils.Ptr(true)})
	require.NoError(t, err)
	require.True(t, todo.Completed)

	msg, err := c.DeleteTodo("t1")
	require.NoError(t, err)
	require.Equal(t, "Data deleted successfully", msg.Success)
}
