package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// ListUsers возвращает всех пользователей без пагинации.
//
// ListUsers godoc
// @Summary      List users
// @Description  Returns all users. The id field is the user's public_id.
// @Tags         users
// @Produce      json
// @Success      200 {array}  models.User
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/ [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list users", err)
		return
	}

	resp := make([]models.User, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetUser возвращает пользователя по public_id.
//
// GetUser godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User public_id"
// @Success      200 {object} models.User
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/{id}/ [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "get user", err)
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// CreateUser создаёт пользователя.
//
// Ответы:
//   - 201 Created: пользователь создан;
//   - 400 Bad Request: неверный JSON, нет name/email или они слишком короткие/длинные;
//   - 409 Conflict: email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Create user
// @Description  Creates a user with a freshly generated public_id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "Create user request"
// @Success      201 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} models.ErrorResponse "Email already taken"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/ [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Users.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "create user", err)
		return
	}
	WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// UpdateUser перезаписывает имя пользователя и, если передан, флаг "is admin".
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "User public_id"
// @Param        request body  models.UpdateUserRequest  true  "Update user request"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/{id}/ [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Users.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, r, "update user", err)
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser удаляет пользователя.
//
// Пользователя с задачами удалить нельзя: 409, сначала удаляются задачи.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User public_id"
// @Success      200 {object} models.MessageResponse
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      409 {object} models.ErrorResponse "User still owns todos"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/{id}/ [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "delete user", err)
		return
	}
	WriteJSON(w, http.StatusOK, models.MessageResponse{Success: DeletedMessage})
}
