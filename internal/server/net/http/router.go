// Package http реализует маршрутизацию HTTP-слоя сервера todo-api.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (recover, логирование, лимит тела, завершающие слэши).
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-api/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Завершающий слэш необязателен: /users и /users/ обрабатываются одинаково.
// maxBodyBytes ограничивает размер тела запроса (0: без ограничения).
func NewRouter(h *api.Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(middleware.Recoverer(h.Log))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", h.Home)
	r.Get("/health", h.Health)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.ListTodos)
		r.Post("/", h.CreateTodo)
		r.Get("/{id}", h.GetTodo)
		r.Put("/{id}", h.UpdateTodo)
		r.Delete("/{id}", h.DeleteTodo)
	})

	return r
}
