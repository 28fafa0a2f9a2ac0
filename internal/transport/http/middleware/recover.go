package middleware

import (
	"log/slog"
	"net/http"

	logctx "github.com/FiveDevOrg/UserManagement/internal/pkg/log"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/httperr"
)

// Recover перехватывает panic, конвертирует в 500/internal и пишет
// унифицированный ответ. Детали паники не утекают на клиент.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
						)
					httperr.WriteInternal(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
