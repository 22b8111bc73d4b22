// Package cli реализует командный интерфейс (CLI) клиента todo-api (todoctl).
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд (users, todos, health, version);
//   - разбор аргументов и флагов командной строки;
//   - выполнение запросов к серверу и вывод результата пользователю.
//
// Точка входа пакета: функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DefaultServerURL: адрес сервера по умолчанию.
const DefaultServerURL = "http://127.0.0.1:8080"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL: базовый URL сервера todo-api.
	ServerURL string
	// JSON: печатать ответы сервера как JSON вместо таблицы.
	JSON bool
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// Адрес сервера берётся из флага --server, иначе из TODO_SERVER, иначе DefaultServerURL.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	serverDefault := os.Getenv("TODO_SERVER")
	if serverDefault == "" {
		serverDefault = DefaultServerURL
	}

	cmd := &cobra.Command{
		Use:   "todoctl",
		Short: "todoctl: консольный клиент todo-api (пользователи и задачи)",
		Long: `todoctl: консольный клиент todo-api.

Команды:
  users    Пользователи (list, get, create, update, delete)
  todos    Задачи (list, get, create, update, delete)
  health   Проверка готовности сервера
  version  Версия и дата сборки

Примеры:
  todoctl users create --name alice --email alice@example.com
  todoctl todos create --name "buy milk" --email alice@example.com
  todoctl todos update <id> --name "buy milk" --completed
  todoctl --server http://10.0.0.5:8080 users list
`,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", serverDefault, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "print raw JSON")

	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewTodosCmd(app))
	cmd.AddCommand(NewHealthCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
