//go:build ignore

// launcher поднимает сервер для локальной разработки и собирает todoctl.
//
//	go run launcher.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"
)

const healthURL = "http://127.0.0.1:8080/health"

// waitReady опрашивает /health, пока сервер не ответит 200 или не выйдет время.
func waitReady(timeout time.Duration) bool {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := client.Get(healthURL)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(300 * time.Millisecond)
	}
	return false
}

func main() {
	fmt.Println("Запуск todo-api...")

	clientName := "todoctl"
	if runtime.GOOS == "windows" {
		clientName = "todoctl.exe"
	}

	// без DATABASE_URL сервер не стартует, для разработки хватит sqlite
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("database_path") == "" {
		os.Setenv("DATABASE_URL", "sqlite://./todo.db")
	}

	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = os.Environ()

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	// собираем клиента
	fmt.Println("Сборка клиента...")
	build := exec.Command("go", "build", "-o", clientName, "./cmd/todoctl")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Printf("Ошибка сборки клиента: %v\n", err)
	}

	if !waitReady(30 * time.Second) {
		fmt.Println("Сервер не ответил на /health, смотри логи выше")
	} else {
		fmt.Println("Сервер запущен, swagger: http://127.0.0.1:8080/swagger/index.html")
	}

	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\todoctl.exe users list")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./todoctl users list")
	}

	server.Wait()
}
