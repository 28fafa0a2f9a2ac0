// http собирает REST-поверхность user-manager поверх chi.
//
// Публичные маршруты (регистрация, вход, сброс пароля, проверка email)
// не требуют токена; остальные защищены мидлваром Auth, который верифицирует
// access-токен провайдера и кладёт account id в контекст.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FiveDevOrg/UserManagement/internal/service"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/handlers"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Keys     middleware.KeySource
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(s *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(s)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts.Keys)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, opts.Keys)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, keys middleware.KeySource) {
	// публичные
	r.Post("/user", h.Register)
	r.Post("/user/google", h.RegisterGoogle)
	r.Post("/user/login", h.Login)
	r.Post("/user/reset", h.ResetPassword)
	r.Post("/user/verify/resend", h.ResendVerification)
	r.Get("/user/email/check", h.CheckEmail)

	// защищённые
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Auth(keys))

		pr.Get("/user", h.CurrentUser)
		pr.Put("/user", h.UpdateUser)
		pr.Delete("/user", h.DeleteUser)
		pr.Put("/user/password", h.ChangePassword)
		pr.Post("/user/avatar", h.UploadAvatar)
		pr.Post("/user/payment/intent", h.PaymentIntent)
		pr.Post("/user/payment/confirm", h.PaymentConfirm)
	})
}
