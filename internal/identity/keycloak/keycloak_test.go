package keycloak

// Тесты адаптера Keycloak поверх httptest-сервера.
//
//  Проверяем:
//  - кэширование служебного admin-токена (token endpoint дергается один раз);
//  - маппинг статусов admin-API в ошибки identity (409, 404, пустой поиск);
//  - форму token endpoint'а (grant_type=password / client_credentials);
//  - сценарии писем (execute-actions-email, send-verify-email) и назначения роли;
//  - разбор публичного ключа realm'а и его кэширование.

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FiveDevOrg/UserManagement/internal/config"
	"github.com/FiveDevOrg/UserManagement/internal/identity"
	"github.com/stretchr/testify/require"
)

// fakeKeycloak поднимает httptest-сервер с token endpoint'ом и отдаёт клиент,
// сконфигурированный на него. adminHandler обслуживает все admin-вызовы.
func fakeKeycloak(t *testing.T, adminHandler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()

	var tokenCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/realms/auxby/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("grant_type") == "password" && r.PostFormValue("password") != "secret12" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"expires_in":   300,
			"token_type":   "Bearer",
		})
	})
	if adminHandler != nil {
		mux.HandleFunc("/admin/realms/auxby/", adminHandler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := New(config.KeycloakConfig{
		BaseURL:      srv.URL,
		Realm:        "auxby",
		ClientID:     "user-manager",
		ClientSecret: "cs",
		UserRole:     "auxby_user",
		Timeout:      2 * time.Second,
	})

	return client, &tokenCalls
}

func TestClient_CreateAccount_OK(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/realms/auxby/users", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var account identity.Account
		require.NoError(t, json.NewDecoder(r.Body).Decode(&account))
		require.Equal(t, "ana@example.com", account.Username)
		require.True(t, account.Enabled)
		require.Len(t, account.Credentials, 1)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateAccount(context.Background(), identity.Account{
		Username: "ana@example.com",
		Email:    "ana@example.com",
		Enabled:  true,
		Credentials: []identity.Credential{
			{Type: "password", Value: "secret12"},
		},
	})
	require.NoError(t, err)
}

func TestClient_CreateAccount_Conflict(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	err := client.CreateAccount(context.Background(), identity.Account{Username: "dup@example.com"})
	require.ErrorIs(t, err, identity.ErrAlreadyExists)
}

// Отказ провайдера с телом — reason попадает в текст ошибки.
func TestClient_CreateAccount_RejectedWithReason(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"errorMessage": "Password policy not met",
		})
	})

	err := client.CreateAccount(context.Background(), identity.Account{Username: "weak@example.com"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Password policy not met")
}

func TestClient_AccountByUsername(t *testing.T) {
	accountID := "b7e9c1a2-0000-4000-8000-000000000001"

	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ana@example.com", r.URL.Query().Get("username"))
		require.Equal(t, "true", r.URL.Query().Get("exact"))
		_ = json.NewEncoder(w).Encode([]identity.Account{
			{ID: accountID, Username: "ana@example.com"},
		})
	})

	got, err := client.AccountByUsername(context.Background(), "ana@example.com", true)
	require.NoError(t, err)
	require.Equal(t, accountID, got.ID)
}

// Пустой результат поиска -> ErrNotFoundAccount.
func TestClient_AccountByUsername_Empty(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]identity.Account{})
	})

	_, err := client.AccountByUsername(context.Background(), "ghost@example.com", true)
	require.ErrorIs(t, err, identity.ErrNotFoundAccount)
}

func TestClient_AccountByID_NotFound(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.AccountByID(context.Background(), "missing")
	require.ErrorIs(t, err, identity.ErrNotFoundAccount)
}

// Служебный admin-токен кэшируется: три admin-вызова, token endpoint — один раз.
func TestClient_AdminTokenCached(t *testing.T) {
	client, tokenCalls := fakeKeycloak(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(identity.Account{ID: "x"})
	})

	for i := 0; i < 3; i++ {
		_, err := client.AccountByID(context.Background(), "x")
		require.NoError(t, err)
	}

	require.Equal(t, int64(1), tokenCalls.Load())
}

func TestClient_ExchangeCredentials(t *testing.T) {
	client, _ := fakeKeycloak(t, nil)

	tok, err := client.ExchangeCredentials(context.Background(), "ana@example.com", "secret12")
	require.NoError(t, err)
	require.Equal(t, "tok", tok.AccessToken)
	require.Equal(t, "Bearer", tok.TokenType)

	_, err = client.ExchangeCredentials(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestClient_SendResetPasswordEmail(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/realms/auxby/users/acc-1/execute-actions-email", r.URL.Path)

		var actions []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&actions))
		require.Equal(t, []string{"UPDATE_PASSWORD"}, actions)

		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SendResetPasswordEmail(context.Background(), "acc-1"))
}

func TestClient_SendVerificationEmail(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/realms/auxby/users/acc-1/send-verify-email", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SendVerificationEmail(context.Background(), "acc-1"))
}

// Назначение роли: сначала представление роли, затем запись в role-mappings.
func TestClient_AssignRealmRole(t *testing.T) {
	client, _ := fakeKeycloak(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/realms/auxby/roles/auxby_user":
			require.Equal(t, http.MethodGet, r.Method)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "role-1", "name": "auxby_user"})
		case "/admin/realms/auxby/users/acc-1/role-mappings/realm":
			require.Equal(t, http.MethodPost, r.Method)

			var roles []map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&roles))
			require.Len(t, roles, 1)
			require.Equal(t, "role-1", roles[0]["id"])

			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	require.NoError(t, client.AssignRealmRole(context.Background(), "acc-1", "auxby_user"))
}

// Публичный ключ realm'а разбирается из base64 DER и кэшируется.
func TestClient_RealmPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	var realmCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/auxby", func(w http.ResponseWriter, _ *http.Request) {
		realmCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"public_key": base64.StdEncoding.EncodeToString(der),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := New(config.KeycloakConfig{
		BaseURL: srv.URL,
		Realm:   "auxby",
		Timeout: 2 * time.Second,
	})

	got, err := client.RealmPublicKey(context.Background())
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(got))

	_, err = client.RealmPublicKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), realmCalls.Load())
}

// Отказ realm endpoint'а не кэшируется: после 500 следующий вызов
// повторяет запрос и получает ключ.
func TestClient_RealmPublicKey_RetriesAfterFailure(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	var realmCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/auxby", func(w http.ResponseWriter, _ *http.Request) {
		if realmCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"public_key": base64.StdEncoding.EncodeToString(der),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := New(config.KeycloakConfig{
		BaseURL: srv.URL,
		Realm:   "auxby",
		Timeout: 2 * time.Second,
	})

	_, err = client.RealmPublicKey(context.Background())
	require.Error(t, err)

	got, err := client.RealmPublicKey(context.Background())
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(got))

	// Успешный результат закэширован.
	_, err = client.RealmPublicKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), realmCalls.Load())
}

func TestClient_Ping(t *testing.T) {
	client, _ := fakeKeycloak(t, nil)
	require.Error(t, client.Ping(context.Background()))

	mux := http.NewServeMux()
	mux.HandleFunc("/realms/auxby", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"realm": "auxby"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ok := New(config.KeycloakConfig{BaseURL: srv.URL, Realm: "auxby", Timeout: time.Second})
	require.NoError(t, ok.Ping(context.Background()))
}
