// httperr стандартизирует ответы об ошибках HTTP-слоя user-manager.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - HTTP-статус (включая нестандартные коды, на которые завязан фронт);
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинелы internal/service.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FiveDevOrg/UserManagement/internal/service"
)

// Нестандартные коды, на которые исторически завязан фронт маркетплейса.
const (
	// StatusSignInError — отказ обмена учётных данных при входе.
	StatusSignInError = 451
	// StatusEmailNotVerified — вход с неверифицированным email.
	StatusEmailNotVerified = 470
	// StatusActionNotAllowed — удаление заблокировано доменным guard'ом.
	StatusActionNotAllowed = 481
)

// APIError — единый формат ошибки для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteInternal — 500/internal без анализа ошибки (паники, отказ инфраструктуры).
func WriteInternal(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, service.ErrInternal)
}

// WriteUnauthorized — 401/unauthenticated (нет или битый access-токен).
func WriteUnauthorized(w http.ResponseWriter, r *http.Request) {
	resp := ErrorResponse{
		Error: APIError{
			Code:    "unauthenticated",
			Message: "unauthenticated",
		},
	}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг сентинелов сервисного слоя в HTTP/FE-код/сообщение.
//   - ErrInvalidArgument / ErrChangePassword -> 400
//   - ErrNotFound -> 404
//   - ErrRegistration -> 417 (исторический контракт фронта)
//   - ErrSignIn -> 451
//   - ErrEmailNotVerified -> 470
//   - ErrActionNotAllowed -> 481
//   - прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrChangePassword):
		return http.StatusBadRequest, "change_password", "change password failed"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrRegistration):
		return http.StatusExpectationFailed, "registration_failed", "registration failed"
	case errors.Is(err, service.ErrSignIn):
		return StatusSignInError, "sign_in_failed", "sign in failed"
	case errors.Is(err, service.ErrEmailNotVerified):
		return StatusEmailNotVerified, "email_not_verified", "email not verified"
	case errors.Is(err, service.ErrActionNotAllowed):
		return StatusActionNotAllowed, "action_not_allowed", "action not allowed"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
