// keycloak предоставляет реализацию identity.Provider поверх REST-интерфейсов Keycloak.
//
// keycloak.go - конструктор клиента, служебный токен admin-API (client_credentials)
// с кэшированием до истечения, явная проверка доступности (Ping) и публичный
// ключ realm'а для верификации access-токенов.
// accounts.go - операции identity.Provider поверх admin-API и token endpoint'а.
//
// Клиент создаётся один раз на старте процесса и владеет своим http.Client
// (connection pool); ленивых переподключений и скрытых liveness-проверок нет.
package keycloak

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/FiveDevOrg/UserManagement/internal/config"
	"github.com/FiveDevOrg/UserManagement/internal/identity"
)

// adminTokenSkew — запас до истечения служебного токена, после которого
// берём новый, чтобы не упереться в истёкший токен посреди запроса.
const adminTokenSkew = 30 * time.Second

// Client — адаптер Keycloak. Потокобезопасен.
type Client struct {
	cfg  config.KeycloakConfig
	http *http.Client

	mu       sync.Mutex
	adminTok string
	adminExp time.Time

	keyMu  sync.Mutex
	pubKey *rsa.PublicKey
}

// New создаёт клиент Keycloak с собственным http.Client и таймаутом из конфига.
func New(cfg config.KeycloakConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Проверка выполнения контракта верхнего уровня.
var _ identity.Provider = (*Client)(nil)

// Ping — явная проверка доступности провайдера (информация о realm).
// Используется как fail-fast на старте и в health-пробах.
func (c *Client) Ping(ctx context.Context) error {
	const op = "identity/keycloak/Ping"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.realmURL(""), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}

// RealmPublicKey возвращает RSA-ключ realm'а для верификации подписи
// access-токенов. Кэшируется только успешный ответ: после отказа
// (сетевой сбой, 5xx) следующий вызов повторяет запрос, как и adminToken.
func (c *Client) RealmPublicKey(ctx context.Context) (*rsa.PublicKey, error) {
	const op = "identity/keycloak/RealmPublicKey"

	c.keyMu.Lock()
	defer c.keyMu.Unlock()

	if c.pubKey != nil {
		return c.pubKey, nil
	}

	key, err := c.fetchRealmKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.pubKey = key

	return c.pubKey, nil
}

// fetchRealmKey запрашивает realm endpoint и разбирает base64-DER ключ.
func (c *Client) fetchRealmKey(ctx context.Context) (*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.realmURL(""), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var realm struct {
		PublicKey string `json:"public_key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&realm); err != nil {
		return nil, err
	}

	der, err := base64.StdEncoding.DecodeString(realm.PublicKey)
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}

	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("realm key is not RSA")
	}

	return rsaKey, nil
}

// adminToken возвращает служебный токен admin-API, обновляя его по истечении.
func (c *Client) adminToken(ctx context.Context) (string, error) {
	const op = "identity/keycloak/adminToken"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.adminTok != "" && time.Now().Before(c.adminExp) {
		return c.adminTok, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	tok, err := c.requestToken(ctx, form)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	c.adminTok = tok.AccessToken
	c.adminExp = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - adminTokenSkew)

	return c.adminTok, nil
}

// requestToken — общий вызов token endpoint'а (и для admin-токена,
// и для обмена логин/пароль).
func (c *Client) requestToken(ctx context.Context, form url.Values) (*identity.Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainClose(resp.Body)

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, identity.ErrInvalidCredentials
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint: unexpected status %d", resp.StatusCode)
	}

	var tok identity.Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	if tok.AccessToken == "" {
		return nil, identity.ErrInvalidCredentials
	}

	return &tok, nil
}

// doAdmin выполняет запрос к admin-API с bearer-токеном и JSON-телом.
func (c *Client) doAdmin(ctx context.Context, method, path string, body any) (*http.Response, error) {
	tok, err := c.adminToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = strings.NewReader(string(raw))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.adminURL(path), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

func (c *Client) adminURL(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/admin/realms/" + c.cfg.Realm + path
}

func (c *Client) realmURL(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/realms/" + c.cfg.Realm + path
}

func (c *Client) tokenURL() string {
	return c.realmURL("/protocol/openid-connect/token")
}

// drainClose дочитывает и закрывает тело ответа, чтобы соединение
// вернулось в пул.
func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
