// Package service содержит бизнес-логику приложения (todo-api).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository):
// здесь валидируются запросы и генерируются public_id, до любой записи в БД.
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
)

// Ограничения на поля (совпадают с размерами колонок в миграциях).
const (
	NameMinLen  = 4
	NameMaxLen  = 20
	EmailMinLen = 6
	EmailMaxLen = 28
)

// Repositories: набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Todos  TodosRepo
	Health HealthRepo
}

// Services: агрегатор всех сервисов приложения.
type Services struct {
	Users  *UsersService
	Todos  *TodosService
	Health HealthRepo
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories) *Services {
	return &Services{
		Users:  NewUsersService(repos.Users),
		Todos:  NewTodosService(repos.Todos),
		Health: repos.Health,
	}
}

// IDGenerator выдаёт новый public_id.
type IDGenerator func() string

// NewPublicID: генератор по умолчанию (UUIDv4).
func NewPublicID() string {
	return uuid.NewString()
}

// HealthRepo: минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo: репозиторий пользователей.
type UsersRepo interface {
	List(ctx context.Context) ([]models.User, error)
	GetByPublicID(ctx context.Context, publicID string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update всегда перезаписывает name; is_admin только если isAdmin != nil.
	Update(ctx context.Context, publicID, name string, isAdmin *bool) (models.User, error)
	Delete(ctx context.Context, publicID string) error
}

// TodosRepo: репозиторий задач. Все методы возвращают задачу вместе с владельцем.
type TodosRepo interface {
	List(ctx context.Context) ([]models.Todo, error)
	GetByPublicID(ctx context.Context, publicID string) (models.Todo, error)
	// Create находит владельца по email и создаёт задачу в одной транзакции.
	Create(ctx context.Context, ownerEmail string, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, publicID, name string, completed bool) (models.Todo, error)
	Delete(ctx context.Context, publicID string) error
}
