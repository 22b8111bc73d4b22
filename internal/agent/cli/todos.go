package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// NewTodosCmd создаёт группу команд для работы с задачами.
//
// Примеры:
//
//	todoctl todos list
//	todoctl todos create --name "buy milk" --email alice@example.com
//	todoctl todos update <id> --name "buy milk" --completed
//	todoctl todos update <id> --name "buy milk" --completed=false
//	todoctl todos delete <id>
func NewTodosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Задачи",
	}

	cmd.AddCommand(
		newTodosListCmd(app),
		newTodosGetCmd(app),
		newTodosCreateCmd(app),
		newTodosUpdateCmd(app),
		newTodosDeleteCmd(app),
	)
	return cmd
}

func newTodosListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список задач",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := NewAPIClient(app.ServerURL).ListTodos()
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), todos)
		},
	}
}

func newTodosGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Задача по public_id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := NewAPIClient(app.ServerURL).GetTodo(args[0])
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), todo)
		},
	}
}

func newTodosCreateCmd(app *App) *cobra.Command {
	var name, email string
	var completed bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать задачу для пользователя с указанным email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateTodoRequest{Name: &name, Email: &email}
			if cmd.Flags().Changed("completed") {
				req.IsCompleted = &completed
			}

			todo, err := NewAPIClient(app.ServerURL).CreateTodo(req)
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), todo)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "todo name (4-20 characters)")
	cmd.Flags().StringVar(&email, "email", "", "owner email")
	cmd.Flags().BoolVar(&completed, "completed", false, "create already completed")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func newTodosUpdateCmd(app *App) *cobra.Command {
	var name string
	var completed bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Перезаписать имя и признак выполнения задачи",
		Long: `Перезаписывает имя и признак выполнения задачи.

Сервер требует оба поля, поэтому --name и --completed обязательны:
чтобы оставить имя прежним, передайте его же.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := NewAPIClient(app.ServerURL).UpdateTodo(args[0], models.UpdateTodoRequest{
				Name:      &name,
				Completed: &completed,
			})
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), todo)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "todo name (up to 20 characters)")
	cmd.Flags().BoolVar(&completed, "completed", false, "completion flag (--completed or --completed=false)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("completed")

	return cmd
}

func newTodosDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить задачу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := NewAPIClient(app.ServerURL).DeleteTodo(args[0])
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), msg)
		},
	}
}

// NewHealthCmd создаёт команду проверки готовности сервера.
//
//	todoctl health
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить, что сервер и база данных доступны",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := NewAPIClient(app.ServerURL).Health()
			if err != nil {
				return err
			}
			return app.output(cmd.OutOrStdout(), resp)
		},
	}
}
