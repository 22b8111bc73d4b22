package api

import (
	"net/http"

	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// WelcomeMessage: ответ корневого эндпоинта.
const WelcomeMessage = "Welcome to building RESTful APIs with Go, chi and database/sql"

// Home godoc
// @Summary      Welcome message
// @Tags         meta
// @Produce      json
// @Success      200 {object} models.WelcomeResponse
// @Router       / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.WelcomeResponse{Message: WelcomeMessage})
}

// Health проверяет доступность БД.
//
// @Summary      Readiness check
// @Tags         meta
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Failure      503 {object} models.ErrorResponse "Database unavailable"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Svc.Health != nil {
		if err := h.Svc.Health.Ping(r.Context()); err != nil {
			h.Log.Logger.Sugar().Warnw("health check failed", "error", err)
			WriteError(w, http.StatusServiceUnavailable, serr.ErrInternal)
			return
		}
	}
	WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
