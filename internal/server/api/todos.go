package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// ListTodos возвращает все задачи вместе с владельцами.
//
// ListTodos godoc
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Success      200 {array}  models.Todo
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/ [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Svc.Todos.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list todos", err)
		return
	}

	resp := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodoResponse(t))
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetTodo godoc
// @Summary      Get todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo public_id"
// @Success      200 {object} models.Todo
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/{id} [get]
func (h *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.Svc.Todos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "get todo", err)
		return
	}
	WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}

// CreateTodo создаёт задачу для пользователя с указанным email.
//
// Ответы:
//   - 201 Created: задача создана;
//   - 400 Bad Request: неверный JSON, нет name/email или name слишком короткий/длинный;
//   - 404 Not Found: нет пользователя с таким email;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Create todo
// @Description  Creates a todo owned by the user with the given email.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        request body models.CreateTodoRequest true "Create todo request"
// @Success      201 {object} models.Todo
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      404 {object} models.ErrorResponse "No user with that email"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/ [post]
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.Svc.Todos.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "create todo", err)
		return
	}
	WriteJSON(w, http.StatusCreated, toTodoResponse(todo))
}

// UpdateTodo перезаписывает имя и признак выполнения задачи.
//
// @Summary      Update todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "Todo public_id"
// @Param        request body  models.UpdateTodoRequest  true  "Update todo request"
// @Success      200 {object} models.Todo
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/{id}/ [put]
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.Svc.Todos.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, r, "update todo", err)
		return
	}
	WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}

// DeleteTodo godoc
// @Summary      Delete todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo public_id"
// @Success      200 {object} models.MessageResponse
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/{id}/ [delete]
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Todos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "delete todo", err)
		return
	}
	WriteJSON(w, http.StatusOK, models.MessageResponse{Success: DeletedMessage})
}
