package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id) + "/"
}

// ListTodos возвращает все задачи вместе с владельцами.
//
//	GET /todos/
func (c *Client) ListTodos() ([]models.Todo, error) {
	var resp []models.Todo
	err := c.GetJSON("/todos/", &resp)
	return resp, err
}

// GetTodo возвращает задачу по public_id.
//
//	GET /todos/{id}/
func (c *Client) GetTodo(id string) (models.Todo, error) {
	var resp models.Todo
	err := c.GetJSON(todoPath(id), &resp)
	return resp, err
}

// CreateTodo создаёт задачу для пользователя с email из запроса.
//
//	POST /todos/
func (c *Client) CreateTodo(req models.CreateTodoRequest) (models.Todo, error) {
	var resp models.Todo
	err := c.PostJSON("/todos/", req, &resp)
	return resp, err
}

// UpdateTodo перезаписывает имя и признак выполнения.
//
//	PUT /todos/{id}/
func (c *Client) UpdateTodo(id string, req models.UpdateTodoRequest) (models.Todo, error) {
	var resp models.Todo
	err := c.PutJSON(todoPath(id), req, &resp)
	return resp, err
}

// DeleteTodo удаляет задачу.
//
//	DELETE /todos/{id}/
func (c *Client) DeleteTodo(id string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.DeleteJSON(todoPath(id), &resp)
	return resp, err
}

// Health проверяет готовность сервера.
//
//	GET /health
func (c *Client) Health() (models.HealthResponse, error) {
	var resp models.HealthResponse
	err := c.GetJSON("/health", &resp)
	return resp, err
}
