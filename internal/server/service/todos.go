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

// TodosService реализует бизнес-логику работы с задачами.
type TodosService struct {
	repo  TodosRepo
	newID IDGenerator
}

// NewTodosService создаёт новый TodosService.
func NewTodosService(repo TodosRepo) *TodosService {
	return &TodosService{repo: repo, newID: NewPublicID}
}

// WithIDGenerator подменяет генератор public_id (для тестов).
func (s *TodosService) WithIDGenerator(gen IDGenerator) *TodosService {
	s.newID = gen
	return s
}

// List возвращает все задачи с владельцами.
func (s *TodosService) List(ctx context.Context) ([]models.Todo, error) {
	return s.repo.List(ctx)
}

// Get возвращает задачу по public_id.
func (s *TodosService) Get(ctx context.Context, publicID string) (models.Todo, error) {
	return s.repo.GetByPublicID(ctx, publicID)
}

// Create создаёт задачу для пользователя с указанным email.
//
// Валидации:
//   - name и email владельца переданы;
//   - name не короче 4 и не длиннее 20 символов.
//
// Ошибки:
//   - ErrInvalidInput: невалидные данные;
//   - ErrOwnerNotFound: нет пользователя с таким email (строка не создаётся);
//   - ErrInternal: ошибка хранилища.
func (s *TodosService) Create(ctx context.Context, req api.CreateTodoRequest) (models.Todo, error) {
	if req.Name == nil || req.Email == nil {
		return models.Todo{}, fmt.Errorf("%w: name of todo or email of creator not given", serr.ErrInvalidInput)
	}
	if utf8.RuneCountInString(*req.Name) < NameMinLen {
		return models.Todo{}, fmt.Errorf("%w: name of todo must contain at least %d characters",
			serr.ErrInvalidInput, NameMinLen)
	}
	if err := checkMaxLen("name", *req.Name, NameMaxLen); err != nil {
		return models.Todo{}, err
	}

	todo := models.Todo{
		Name:        *req.Name,
		PublicID:    s.newID(),
		IsCompleted: utils.Deref(req.IsCompleted, false),
	}

	return s.repo.Create(ctx, *req.Email, todo)
}

// Update перезаписывает имя и признак выполнения задачи. Оба поля обязательны.
//
// Ошибки:
//   - ErrInvalidInput: нет name или completed, либо name слишком длинный;
//   - ErrNotFound: задачи нет;
//   - ErrInternal: ошибка хранилища.
func (s *TodosService) Update(ctx context.Context, publicID string, req api.UpdateTodoRequest) (models.Todo, error) {
	if req.Name == nil || req.Completed == nil {
		return models.Todo{}, fmt.Errorf("%w: name or completed fields need to be present", serr.ErrInvalidInput)
	}
	if err := checkMaxLen("name", *req.Name, NameMaxLen); err != nil {
		return models.Todo{}, err
	}

	return s.repo.Update(ctx, publicID, *req.Name, *req.Completed)
}

// Delete удаляет задачу.
func (s *TodosService) Delete(ctx context.Context, publicID string) error {
	return s.repo.Delete(ctx, publicID)
}
