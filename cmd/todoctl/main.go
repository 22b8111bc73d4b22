// Package main содержит точку входа консольного клиента todoctl.
//
// Пакет отвечает за запуск CLI и передачу информации о версии и дате сборки в CLI-слой.
package main

import "github.com/IvanChernomyrdin/go-todo-api/internal/agent/cli"

var (
	// buildVersion задаётся при сборке: -ldflags "-X main.buildVersion=1.0.0".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
