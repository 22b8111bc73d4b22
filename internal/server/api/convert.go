package api

import (
	dbmodels "github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// toUserResponse: наружу уходит public_id, внутренний id скрыт.
func toUserResponse(u dbmodels.User) models.User {
	return models.User{
		ID:      u.PublicID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

func toTodoResponse(t dbmodels.Todo) models.Todo {
	return models.Todo{
		ID:        t.PublicID,
		Name:      t.Name,
		Completed: t.IsCompleted,
		Owner: models.Owner{
			PublicID: t.Owner.PublicID,
			Name:     t.Owner.Name,
			Email:    t.Owner.Email,
			IsAdmin:  t.Owner.IsAdmin,
		},
	}
}
