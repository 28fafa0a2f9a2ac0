package keycloak

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/FiveDevOrg/UserManagement/internal/identity"
)

// CreateAccount создаёт аккаунт через admin-API.
// Ошибки: identity.ErrAlreadyExists при 409, иные отказы — с reason провайдера.
func (c *Client) CreateAccount(ctx context.Context, account identity.Account) error {
	const op = "identity/keycloak/CreateAccount"

	resp, err := c.doAdmin(ctx, http.MethodPost, "/users", account)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", op, identity.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: provider rejected create: status=%d reason=%s",
			op, resp.StatusCode, errorReason(resp.Body))
	}
}

// AccountByUsername ищет аккаунт по username.
// Ошибки: identity.ErrNotFoundAccount при пустом результате.
func (c *Client) AccountByUsername(ctx context.Context, username string, exact bool) (*identity.Account, error) {
	const op = "identity/keycloak/AccountByUsername"

	q := url.Values{"username": {username}}
	if exact {
		q.Set("exact", "true")
	}

	resp, err := c.doAdmin(ctx, http.MethodGet, "/users?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var accounts []identity.Account
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("%s: %w", op, identity.ErrNotFoundAccount)
	}

	return &accounts[0], nil
}

// AccountByID возвращает представление аккаунта, включая EmailVerified.
func (c *Client) AccountByID(ctx context.Context, id string) (*identity.Account, error) {
	const op = "identity/keycloak/AccountByID"

	resp, err := c.doAdmin(ctx, http.MethodGet, "/users/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", op, identity.ErrNotFoundAccount)
	default:
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var account identity.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &account, nil
}

// UpdateAccount заменяет представление аккаунта.
func (c *Client) UpdateAccount(ctx context.Context, id string, account identity.Account) error {
	const op = "identity/keycloak/UpdateAccount"

	resp, err := c.doAdmin(ctx, http.MethodPut, "/users/"+id, account)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, identity.ErrNotFoundAccount)
	default:
		return fmt.Errorf("%s: provider rejected update: status=%d reason=%s",
			op, resp.StatusCode, errorReason(resp.Body))
	}
}

// DeleteAccount удаляет аккаунт у провайдера.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	const op = "identity/keycloak/DeleteAccount"

	resp, err := c.doAdmin(ctx, http.MethodDelete, "/users/"+id, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, identity.ErrNotFoundAccount)
	default:
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}
}

// SendResetPasswordEmail запускает провайдерский сценарий UPDATE_PASSWORD.
func (c *Client) SendResetPasswordEmail(ctx context.Context, id string) error {
	const op = "identity/keycloak/SendResetPasswordEmail"

	resp, err := c.doAdmin(ctx, http.MethodPut, "/users/"+id+"/execute-actions-email", []string{"UPDATE_PASSWORD"})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}

// SendVerificationEmail инициирует письмо верификации адреса.
func (c *Client) SendVerificationEmail(ctx context.Context, id string) error {
	const op = "identity/keycloak/SendVerificationEmail"

	resp, err := c.doAdmin(ctx, http.MethodPut, "/users/"+id+"/send-verify-email", nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}

// AssignRealmRole назначает realm-роль: читает представление роли,
// затем добавляет её в role-mappings аккаунта.
func (c *Client) AssignRealmRole(ctx context.Context, id, role string) error {
	const op = "identity/keycloak/AssignRealmRole"

	resp, err := c.doAdmin(ctx, http.MethodGet, "/roles/"+role, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		drainClose(resp.Body)
		return fmt.Errorf("%s: role lookup: unexpected status %d", op, resp.StatusCode)
	}

	var roleRep struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&roleRep)
	drainClose(resp.Body)
	if decodeErr != nil {
		return fmt.Errorf("%s: %w", op, decodeErr)
	}

	resp, err = c.doAdmin(ctx, http.MethodPost, "/users/"+id+"/role-mappings/realm", []any{roleRep})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}

// ExchangeCredentials меняет пару логин/пароль на токен (grant_type=password).
// Ошибки: identity.ErrInvalidCredentials при 4xx или битом ответе.
func (c *Client) ExchangeCredentials(ctx context.Context, username, password string) (*identity.Token, error) {
	const op = "identity/keycloak/ExchangeCredentials"

	form := url.Values{
		"grant_type":    {"password"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"username":      {username},
		"password":      {password},
	}

	tok, err := c.requestToken(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tok, nil
}

// errorReason вынимает errorMessage из тела ошибки admin-API (если есть).
func errorReason(body io.Reader) string {
	var payload struct {
		ErrorMessage string `json:"errorMessage"`
		Error        string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return "unknown"
	}

	if payload.ErrorMessage != "" {
		return payload.ErrorMessage
	}

	if payload.Error != "" {
		return payload.Error
	}

	return "unknown"
}
