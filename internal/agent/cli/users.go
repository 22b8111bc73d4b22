package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// NewUsersCmd создаёт группу команд для работы с пользователями.
//
// Примеры:
//
//	todoctl users list
//	todoctl users get <id>
//	todoctl users create --name alice --email alice@example.com --admin
//	todoctl users update <id> --name alicia
//	todoctl users delete <id>
func NewUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Пользователи",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersGetCmd(app),
		newUsersCreateCmd(app),
		newUsersUpdateCmd(app),
		newUsersDeleteCmd(app),
	)
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список пользователей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := NewAPIClient(app.ServerURL).ListUsers()
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), users)
		},
	}
}

func newUsersGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Пользователь по public_id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := NewAPIClient(app.ServerURL).GetUser(args[0])
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), user)
		},
	}
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var name, email string
	var admin bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateUserRequest{Name: &name, Email: &email}
			// "is admin" отправляем только если флаг указан явно
			if cmd.Flags().Changed("admin") {
				req.IsAdmin = &admin
			}

			user, err := NewAPIClient(app.ServerURL).CreateUser(req)
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), user)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name (4-20 characters)")
	cmd.Flags().StringVar(&email, "email", "", "user email (6-28 characters, unique)")
	cmd.Flags().BoolVar(&admin, "admin", false, "mark user as admin")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func newUsersUpdateCmd(app *App) *cobra.Command {
	var name string
	var admin bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить имя и флаг администратора",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateUserRequest{Name: &name}
			if cmd.Flags().Changed("admin") {
				req.IsAdmin = &admin
			}

			user, err := NewAPIClient(app.ServerURL).UpdateUser(args[0], req)
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), user)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new user name (up to 20 characters)")
	cmd.Flags().BoolVar(&admin, "admin", false, "admin flag (unchanged if omitted)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить пользователя (задачи пользователя нужно удалить заранее)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := NewAPIClient(app.ServerURL).DeleteUser(args[0])
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), msg)
		},
	}
}
