// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Имена JSON-ключей повторяют исторический контракт API ("is admin",
// "is completed" с пробелом), поэтому менять теги нельзя.
package models

// User: краткое представление пользователя в ответах API.
//
// Используется в:
//
//	GET /users/, GET /users/{id}/, POST /users/, PUT /users/{id}/
//
// ID это public_id пользователя, внутренний числовой id наружу не отдаётся.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is admin"`
}

// Owner: владелец задачи, вложенный в Todo.
type Owner struct {
	PublicID string `json:"public_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is admin"`
}

// Todo: представление задачи вместе с владельцем.
//
// Один и тот же формат отдают все эндпоинты /todos.
type Todo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Owner     Owner  `json:"owner"`
}

// CreateUserRequest: запрос на создание пользователя.
//
// Используется в:
//
//	POST /users/
//
// Поля-указатели позволяют отличить отсутствующий ключ от пустого значения.
type CreateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	IsAdmin *bool   `json:"is admin,omitempty"`
}

// UpdateUserRequest: запрос на обновление пользователя.
//
// Используется в:
//
//	PUT /users/{id}/
//
// Name обязателен, IsAdmin меняется только если ключ передан.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	IsAdmin *bool   `json:"is admin,omitempty"`
}

// CreateTodoRequest: запрос на создание задачи.
//
// Используется в:
//
//	POST /todos/
//
// Email это email владельца, а не поле задачи.
type CreateTodoRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	IsCompleted *bool   `json:"is completed,omitempty"`
}

// UpdateTodoRequest: запрос на обновление задачи.
//
// Используется в:
//
//	PUT /todos/{id}/
//
// Оба поля обязательны.
type UpdateTodoRequest struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}

// ErrorResponse: единый формат ошибки API.
//
// Error: текст HTTP-статуса ("Bad Request", "Not Found", ...),
// Message: причина ошибки.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse: ответ на удаление.
type MessageResponse struct {
	Success string `json:"success"`
}

// WelcomeResponse: ответ корневого эндпоинта.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// HealthResponse: ответ проверки готовности.
type HealthResponse struct {
	Status string `json:"status"`
}
