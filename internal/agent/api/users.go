package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// userPath собирает путь /users/{id}/, экранируя id.
func userPath(id string) string {
	return "/users/" + url.PathEscape(id) + "/"
}

// ListUsers возвращает всех пользователей.
//
//	GET /users/
func (c *Client) ListUsers() ([]models.User, error) {
	var resp []models.User
	err := c.GetJSON("/users/", &resp)
	return resp, err
}

// GetUser возвращает пользователя по public_id.
//
//	GET /users/{id}/
func (c *Client) GetUser(id string) (models.User, error) {
	var resp models.User
	err := c.GetJSON(userPath(id), &resp)
	return resp, err
}

// CreateUser создаёт пользователя.
//
//	POST /users/
func (c *Client) CreateUser(req models.CreateUserRequest) (models.User, error) {
	var resp models.User
	err := c.PostJSON("/users/", req, &resp)
	return resp, err
}

// UpdateUser обновляет имя и (если передан) флаг администратора.
//
//	PUT /users/{id}/
func (c *Client) UpdateUser(id string, req models.UpdateUserRequest) (models.User, error) {
	var resp models.User
	err := c.PutJSON(userPath(id), req, &resp)
	return resp, err
}

// DeleteUser удаляет пользователя. У пользователя не должно быть задач.
//
//	DELETE /users/{id}/
func (c *Client) DeleteUser(id string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.DeleteJSON(userPath(id), &resp)
	return resp, err
}
