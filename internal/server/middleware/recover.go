package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	serr "github.com/IvanChernomyrdin/go-todo-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// Recoverer перехватывает панику в хендлере, логирует её со стеком
// и отвечает 500 в общем JSON-формате ошибок.
func Recoverer(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// ErrAbortHandler: штатный способ прервать ответ, его пробрасываем дальше
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Logger.Sugar().Errorw("panic recovered",
					"panic", rec,
					"method", r.Method,
					"uri", r.RequestURI,
					"stack", string(debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error:   http.StatusText(http.StatusInternalServerError),
					Message: serr.ErrInternal.Error(),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
