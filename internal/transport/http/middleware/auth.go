package middleware

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	logctx "github.com/FiveDevOrg/UserManagement/internal/pkg/log"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/httperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxAccountIDKey struct{}

// KeySource отдаёт публичный ключ провайдера для проверки подписи
// access-токенов (realm-ключ Keycloak, кэшируется на стороне клиента).
type KeySource func(ctx context.Context) (*rsa.PublicKey, error)

// Auth верифицирует Bearer access-токен (RS256) и кладёт account id
// (claim "sub") в контекст запроса. Запрос без валидного токена — 401.
//
// Мидлвар вешается только на защищённые маршруты; публичные (регистрация,
// логин, сброс пароля) его не проходят.
func Auth(keys KeySource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httperr.WriteUnauthorized(w, r)
				return
			}

			key, err := keys(r.Context())
			if err != nil {
				logctx.From(r.Context()).Error("realm key unavailable", "err", err)
				httperr.WriteInternal(w, r)
				return
			}

			token, err := jwt.Parse(raw,
				func(*jwt.Token) (any, error) { return key, nil },
				jwt.WithValidMethods([]string{"RS256"}),
			)
			if err != nil || !token.Valid {
				httperr.WriteUnauthorized(w, r)
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil {
				httperr.WriteUnauthorized(w, r)
				return
			}

			accountID, err := uuid.Parse(sub)
			if err != nil {
				httperr.WriteUnauthorized(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxAccountIDKey{}, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFrom возвращает account id аутентифицированного запроса.
func AccountIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxAccountIDKey{}).(uuid.UUID)
	return id, ok
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
