package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/service"
	repoMocks "github.com/IvanChernomyrdin/go-todo-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
	api "github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/utils"
)

func TestTodosService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo).WithIDGenerator(fixedGen)

	owner := models.User{ID: 1, Name: "alice", Email: "a@x.io", PublicID: "owner-id"}
	repo.EXPECT().
		Create(gomock.Any(), "a@x.io", models.Todo{Name: "buy milk", PublicID: fixedID}).
		Return(models.Todo{ID: 7, Name: "buy milk", PublicID: fixedID, UserID: 1, Owner: owner}, nil)

	got, err := svc.Create(context.Background(), api.CreateTodoRequest{
		Name:  utils.StrPtr("buy milk"),
		Email: utils.StrPtr("a@x.io"),
	})
	require.NoError(t, err)
	require.Equal(t, fixedID, got.PublicID)
	require.False(t, got.IsCompleted)
	require.Equal(t, "owner-id", got.Owner.PublicID)
}

func TestTodosService_Create_CompletedFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo).WithIDGenerator(fixedGen)

	repo.EXPECT().
		Create(gomock.Any(), "a@x.io", models.Todo{Name: "done one", PublicID: fixedID, IsCompleted: true}).
		Return(models.Todo{Name: "done one", PublicID: fixedID, IsCompleted: true}, nil)

	got, err := svc.Create(context.Background(), api.CreateTodoRequest{
		Name:        utils.StrPtr("done one"),
		Email:       utils.StrPtr("a@x.io"),
		IsCompleted: utils.Ptr(true),
	})
	require.NoError(t, err)
	require.True(t, got.IsCompleted)
}

func TestTodosService_Create_Invalid(t *testing.T) {
	cases := []struct {
		name string
		req  api.CreateTodoRequest
	}{
		{"no name", api.CreateTodoRequest{Email: utils.StrPtr("a@x.io")}},
		{"no email", api.CreateTodoRequest{Name: utils.StrPtr("buy milk")}},
		{"short name", api.CreateTodoRequest{Name: utils.StrPtr("abc"), Email: utils.StrPtr("a@x.io")}},
		{"long name", api.CreateTodoRequest{Name: utils.StrPtr(strings.Repeat("t", 21)), Email: utils.StrPtr("a@x.io")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repoMocks.NewMockTodosRepo(ctrl)
			svc := service.NewTodosService(repo)

			_, err := svc.Create(context.Background(), tc.req)
			require.ErrorIs(t, err, serr.ErrInvalidInput)
		})
	}
}

// Владелец не найден: ошибка репозитория прокидывается как есть
func TestTodosService_Create_OwnerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo)

	repo.EXPECT().
		Create(gomock.Any(), "ghost@x.io", gomock.Any()).
		Return(models.Todo{}, serr.ErrOwnerNotFound)

	_, err := svc.Create(context.Background(), api.CreateTodoRequest{
		Name:  utils.StrPtr("buy milk"),
		Email: utils.StrPtr("ghost@x.io"),
	})
	require.ErrorIs(t, err, serr.ErrOwnerNotFound)
}

func TestTodosService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo)

	repo.EXPECT().
		Update(gomock.Any(), fixedID, "buy milk", true).
		Return(models.Todo{Name: "buy milk", PublicID: fixedID, IsCompleted: true}, nil)

	got, err := svc.Update(context.Background(), fixedID, api.UpdateTodoRequest{
		Name:      utils.StrPtr("buy milk"),
		Completed: utils.Ptr(true),
	})
	require.NoError(t, err)
	require.True(t, got.IsCompleted)
	require.Equal(t, "buy milk", got.Name)
}

func TestTodosService_Update_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo)

	_, err := svc.Update(context.Background(), fixedID, api.UpdateTodoRequest{Name: utils.StrPtr("buy milk")})
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	_, err = svc.Update(context.Background(), fixedID, api.UpdateTodoRequest{Completed: utils.Ptr(false)})
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	_, err = svc.Update(context.Background(), fixedID, api.UpdateTodoRequest{
		Name:      utils.StrPtr(strings.Repeat("t", 21)),
		Completed: utils.Ptr(false),
	})
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestTodosService_GetListDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repoMocks.NewMockTodosRepo(ctrl)
	svc := service.NewTodosService(repo)

	repo.EXPECT().List(gomock.Any()).Return([]models.Todo{}, nil)
	repo.EXPECT().GetByPublicID(gomock.Any(), "nope").Return(models.Todo{}, serr.ErrNotFound)
	repo.EXPECT().Delete(gomock.Any(), "nope").Return(serr.ErrNotFound)

	todos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, todos)

	_, err = svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, serr.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), "nope"), serr.ErrNotFound)
}
