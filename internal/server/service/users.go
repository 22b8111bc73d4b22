package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
	api "github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/utils"
)

// UsersService реализует бизнес-логику работы с пользователями.
// Сервис:
//   - валидирует входные данные до обращения к БД;
//   - генерирует public_id при создании;
//   - не знает о HTTP и SQL напрямую.
type UsersService struct {
	repo  UsersRepo
	newID IDGenerator
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(repo UsersRepo) *UsersService {
	return &UsersService{repo: repo, newID: NewPublicID}
}

// WithIDGenerator подменяет генератор public_id (для тестов).
func (s *UsersService) WithIDGenerator(gen IDGenerator) *UsersService {
	s.newID = gen
	return s
}

// List возвращает всех пользователей.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Get возвращает пользователя по public_id.
//
// Ошибки:
//   - ErrNotFound: пользователя нет;
//   - ErrInternal: ошибка хранилища.
func (s *UsersService) Get(ctx context.Context, publicID string) (models.User, error) {
	return s.repo.GetByPublicID(ctx, publicID)
}

// Create создаёт пользователя.
//
// Валидации:
//   - name и email переданы;
//   - name не короче 4 и не длиннее 20 символов;
//   - email не короче 6 и не длиннее 28 символов.
//
// Ошибки:
//   - ErrInvalidInput: невалидные данные;
//   - ErrAlreadyExists: email уже занят;
//   - ErrInternal: ошибка хранилища.
func (s *UsersService) Create(ctx context.Context, req api.CreateUserRequest) (models.User, error) {
	if req.Name == nil || req.Email == nil {
		return models.User{}, fmt.Errorf("%w: name or email not given", serr.ErrInvalidInput)
	}
	name, email := *req.Name, *req.Email

	if utf8.RuneCountInString(name) < NameMinLen || utf8.RuneCountInString(email) < EmailMinLen {
		return models.User{}, fmt.Errorf("%w: name must contain at least %d characters and email at least %d",
			serr.ErrInvalidInput, NameMinLen, EmailMinLen)
	}
	if err := checkMaxLen("name", name, NameMaxLen); err != nil {
		return models.User{}, err
	}
	if err := checkMaxLen("email", email, EmailMaxLen); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		PublicID: s.newID(),
		IsAdmin:  utils.Deref(req.IsAdmin, false),
	}

	return s.repo.Create(ctx, user)
}

// Update перезаписывает имя пользователя и, если передан, флаг администратора.
//
// Ошибки:
//   - ErrInvalidInput: нет name или он слишком длинный;
//   - ErrNotFound: пользователя нет;
//   - ErrInternal: ошибка хранилища.
func (s *UsersService) Update(ctx context.Context, publicID string, req api.UpdateUserRequest) (models.User, error) {
	if req.Name == nil {
		return models.User{}, fmt.Errorf("%w: name field needs to be present", serr.ErrInvalidInput)
	}
	if err := checkMaxLen("name", *req.Name, NameMaxLen); err != nil {
		return models.User{}, err
	}

	return s.repo.Update(ctx, publicID, *req.Name, req.IsAdmin)
}

// Delete удаляет пользователя.
//
// Пользователя, у которого есть задачи, удалить нельзя (ErrHasDependents):
// сначала нужно удалить его задачи.
func (s *UsersService) Delete(ctx context.Context, publicID string) error {
	return s.repo.Delete(ctx, publicID)
}

// checkMaxLen проверяет длину поля в символах.
func checkMaxLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s must be at most %d characters", serr.ErrInvalidInput, field, limit)
	}
	return nil
}
