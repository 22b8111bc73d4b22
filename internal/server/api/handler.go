// Package api реализует HTTP-слой сервера todo-api.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - описание API аннотациями swag (OpenAPI).
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/IvanChernomyrdin/go-todo-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// DeletedMessage: текст успешного удаления.
const DeletedMessage = "Data deleted successfully"

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// WriteJSON пишет ответ со статусом status и телом v.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

// decodeJSON читает тело запроса в v и сам отвечает клиенту при ошибке.
// Возвращает false, если обработку запроса нужно прекратить.
// Тело должно состоять ровно из одного JSON-значения: хвост после него отклоняется.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = serr.ErrBadJSON
		}
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, serr.ErrBadJSON)
		return false
	}
	WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
	return false
}

// writeServiceError маппит доменную ошибку на HTTP-статус.
// Непредвиденные ошибки логируются, а клиенту уходит только ErrInternal.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrBadJSON):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrNotFound), errors.Is(err, serr.ErrOwnerNotFound):
		WriteError(w, http.StatusNotFound, err)
	case errors.Is(err, serr.ErrAlreadyExists), errors.Is(err, serr.ErrHasDependents):
		WriteError(w, http.StatusConflict, err)
	default:
		h.Log.Logger.Sugar().Errorw(
			op+" failed",
			"error", err,
			"method", r.Method,
			"uri", r.RequestURI,
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
