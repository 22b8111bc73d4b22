// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (нет обязательных полей, слишком короткие/длинные значения)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// На запись ссылаются другие записи (пользователь с задачами)
	ErrHasDependents = errors.New("resource has dependent records")
)

// только для задач
var (
	// Нет пользователя с указанным email
	ErrOwnerNotFound = errors.New("invalid email, no user with that email")
)
