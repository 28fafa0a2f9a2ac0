// identity содержит контракт провайдера идентификации (Keycloak).
//
// Провайдер — source of truth для учётных данных, статуса верификации email
// и ролей. Локальная БД хранит только профиль; корреляция между системами
// идёт по стабильному идентификатору аккаунта, который выдаёт провайдер.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrNotFoundAccount — аккаунт не найден у провайдера.
	ErrNotFoundAccount = errors.New("account not found")
	// ErrAlreadyExists — аккаунт с таким username уже существует.
	ErrAlreadyExists = errors.New("account already exists")
	// ErrInvalidCredentials — провайдер отверг пару логин/пароль (4xx на token endpoint).
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credential — парольная учётная запись в представлении провайдера.
type Credential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

// Account — представление аккаунта у провайдера идентификации.
// ID назначается провайдером при создании и никогда не переназначается.
type Account struct {
	ID            string       `json:"id,omitempty"`
	Username      string       `json:"username"`
	Email         string       `json:"email"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Enabled       bool         `json:"enabled"`
	EmailVerified bool         `json:"emailVerified"`
	Credentials   []Credential `json:"credentials,omitempty"`
}

// Token — ответ token endpoint'а провайдера.
type Token struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	SessionState string `json:"session_state"`
}

// Provider — контракт провайдера идентификации.
//
// Все вызовы — синхронные удалённые RPC. Идемпотентны только два
// read-вызова (AccountByUsername, AccountByID) — ретраить остальные нельзя,
// повторный CreateAccount создаст дубликат аккаунта.
type Provider interface {
	// CreateAccount создаёт аккаунт. Возвращает ErrAlreadyExists при конфликте
	// username, иные отказы провайдера — как ошибку с его reason.
	CreateAccount(ctx context.Context, account Account) error
	// AccountByUsername ищет аккаунт по username (exact-матч при exact=true).
	// При пустом результате возвращает ErrNotFoundAccount.
	AccountByUsername(ctx context.Context, username string, exact bool) (*Account, error)
	// AccountByID возвращает представление аккаунта, включая EmailVerified.
	AccountByID(ctx context.Context, id string) (*Account, error)
	// UpdateAccount заменяет представление аккаунта (имена, enabled, verified,
	// опционально новые credentials).
	UpdateAccount(ctx context.Context, id string, account Account) error
	// DeleteAccount удаляет аккаунт у провайдера.
	DeleteAccount(ctx context.Context, id string) error
	// SendResetPasswordEmail инициирует провайдерское письмо UPDATE_PASSWORD.
	SendResetPasswordEmail(ctx context.Context, id string) error
	// SendVerificationEmail инициирует письмо верификации адреса.
	// Вызывающая сторона обязана переживать отказ без прокидывания ошибки.
	SendVerificationEmail(ctx context.Context, id string) error
	// AssignRealmRole назначает realm-роль аккаунту.
	AssignRealmRole(ctx context.Context, id, role string) error
	// ExchangeCredentials меняет пару логин/пароль на токен.
	// 4xx или битый ответ провайдера -> ErrInvalidCredentials.
	ExchangeCredentials(ctx context.Context, username, password string) (*Token, error)
}
