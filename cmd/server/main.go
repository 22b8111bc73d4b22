// @title           Todo API
// @version         1.0
// @description     REST API over user accounts and their todo items.
// @termsOfService  https://example.com/terms

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа серверного приложения todo-api.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml (или CONFIG_PATH);
//   - открытие пула соединений с базой данных и применение миграций;
//   - создание репозиториев, сервисов и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/config"
	h "github.com/IvanChernomyrdin/go-todo-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-todo-api/swagger/docs"
)

func main() {
	bootLog := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		bootLog.Warnf("no .env file loaded, error: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Stdout: cfg.Log.Stdout,
	})
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	// подключаем базу данных, пул передаём дальше явно
	db, err := config.Init(cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	repos := service.Repositories{
		Users:  repository.NewUsersRepository(db),
		Todos:  repository.NewTodosRepository(db),
		Health: repository.NewHealthRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := h.NewRouter(handler, cfg.Server.MaxBodyBytes)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s (env=%s)", addr, cfg.Env)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Errorf("server stopped with error: %v", err)
		return
	}
	sugar.Info("server gracefully stopped")
}
