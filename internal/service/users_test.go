package service

// Тесты сервисного слоя user-manager (internal/service/users.go).
//
//  Проверяем:
//  - валидацию входов;
//  - сагу регистрации: порядок шагов, компенсацию при отказе локального
//    сохранения, судьбу best-effort шагов (роль, письмо верификации);
//  - guard-проверки удаления (активный аукцион, топ-биддер);
//  - порядок provider-first при обновлении профиля и смене пароля;
//  - маппинг ошибок storage/identity -> service;
//  - happy-path каждого метода.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockUsersStorage,
// MockBlobStorage, MockProvider).

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/FiveDevOrg/UserManagement/internal/config"
	"github.com/FiveDevOrg/UserManagement/internal/identity"
	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/FiveDevOrg/UserManagement/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockUsersStorage, *mocks.MockBlobStorage, *mocks.MockProvider, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockUsersStorage(ctrl)
	mb := mocks.NewMockBlobStorage(ctrl)
	mi := mocks.NewMockProvider(ctrl)
	s := New(ms, mb, mi, &config.Config{
		Keycloak: config.KeycloakConfig{UserRole: "auxby_user"},
	})
	return s, ms, mb, mi, ctrl
}

// mustUser — быстрый хелпер для сборки профиля.
func mustUser(accountID uuid.UUID, email string) *models.User {
	return &models.User{
		ID:        42,
		AccountID: accountID,
		Username:  email,
		FirstName: "Ana",
		LastName:  "Pop",
		Contacts: []models.Contact{
			{Type: models.ContactTypeEmail, Value: email},
			{Type: models.ContactTypePhone, Value: "0749599399"},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func validRegisterInput() RegisterUserInput {
	return RegisterUserInput{
		FirstName: "Ana",
		LastName:  "Pop",
		Email:     "ana@example.com",
		Password:  "secret12",
		Phone:     "0749599399",
	}
}

// Валидация: битый email, пустые имена, пустой пароль, битый телефон.
func TestService_RegisterUser_ValidationErrors(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := validRegisterInput()
	in.Email = "not-an-email"
	_, err := s.RegisterUser(context.Background(), in, false)
	require.ErrorIs(t, err, ErrInvalidArgument)

	in = validRegisterInput()
	in.FirstName = "   "
	_, err = s.RegisterUser(context.Background(), in, false)
	require.ErrorIs(t, err, ErrInvalidArgument)

	in = validRegisterInput()
	in.Password = ""
	_, err = s.RegisterUser(context.Background(), in, false)
	require.ErrorIs(t, err, ErrInvalidArgument)

	in = validRegisterInput()
	in.Phone = "12ab"
	_, err = s.RegisterUser(context.Background(), in, false)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Отказ провайдера на шаге создания -> ErrRegistration, локальных записей нет.
func TestService_RegisterUser_ProviderRejected(t *testing.T) {
	s, _, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(identity.ErrAlreadyExists)

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.ErrorIs(t, err, ErrRegistration)
}

// Аккаунт создан, но перечитать его не удалось: id неизвестен, компенсация
// невозможна — DeleteAccount не вызывается, результат ErrRegistration.
func TestService_RegisterUser_OrphanAfterCreate(t *testing.T) {
	s, _, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(nil, identity.ErrNotFoundAccount)

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.ErrorIs(t, err, ErrRegistration)
}

// Компенсация: отказ локального сохранения удаляет аккаунт у провайдера
// ровно один раз, наружу уходит ErrRegistration.
func TestService_RegisterUser_CompensationOnSaveFailure(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	providerID := uuid.New().String()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: providerID, Username: "ana@example.com"}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("pg down"))
	mi.EXPECT().DeleteAccount(gomock.Any(), providerID).Return(nil).Times(1)

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.ErrorIs(t, err, ErrRegistration)
}

// Отказ самой компенсации не меняет результат (ErrRegistration) и не паникует.
func TestService_RegisterUser_CompensationFailure(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	providerID := uuid.New().String()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: providerID}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("pg down"))
	mi.EXPECT().DeleteAccount(gomock.Any(), providerID).Return(errors.New("kc down"))

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.ErrorIs(t, err, ErrRegistration)
}

// Happy-path: аккаунт у провайдера enabled и с парольной credential, профиль
// собран с контактами EMAIL/PHONE, роль назначена, письмо отправлено.
func TestService_RegisterUser_OK(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account identity.Account) error {
			require.Equal(t, "ana@example.com", account.Username)
			require.True(t, account.Enabled)
			require.False(t, account.EmailVerified)
			require.Len(t, account.Credentials, 1)
			require.Equal(t, "password", account.Credentials[0].Type)
			require.Equal(t, "secret12", account.Credentials[0].Value)
			require.False(t, account.Credentials[0].Temporary)
			return nil
		})
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: accountID.String()}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			require.Equal(t, accountID, user.AccountID)
			require.Equal(t, "ana@example.com", user.Username)
			require.False(t, user.GoogleAccount)
			require.Equal(t, "ana@example.com", user.Email())
			require.Equal(t, "0749599399", user.Phone())
			return user, nil
		})
	mi.EXPECT().AssignRealmRole(gomock.Any(), accountID.String(), "auxby_user").Return(nil)
	mi.EXPECT().SendVerificationEmail(gomock.Any(), accountID.String()).Return(nil)

	got, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.NoError(t, err)
	require.Equal(t, accountID, got.AccountID)
}

// preVerified: emailVerified сразу true, письма верификации нет, профиль
// помечен как google_account.
func TestService_RegisterUser_PreVerified(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account identity.Account) error {
			require.True(t, account.EmailVerified)
			return nil
		})
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: accountID.String()}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			require.True(t, user.GoogleAccount)
			return user, nil
		})
	mi.EXPECT().AssignRealmRole(gomock.Any(), accountID.String(), "auxby_user").Return(nil)

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), true)
	require.NoError(t, err)
}

// Best-effort шаги: отказ назначения роли и отправки письма не валит регистрацию.
func TestService_RegisterUser_BestEffortFailures(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: accountID.String()}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			return user, nil
		})
	mi.EXPECT().AssignRealmRole(gomock.Any(), accountID.String(), "auxby_user").
		Return(errors.New("role missing"))
	mi.EXPECT().SendVerificationEmail(gomock.Any(), accountID.String()).
		Return(errors.New("smtp down"))

	_, err := s.RegisterUser(context.Background(), validRegisterInput(), false)
	require.NoError(t, err)
}

// Email нормализуется к нижнему регистру до любого вызова провайдера.
func TestService_RegisterUser_EmailNormalized(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	in := validRegisterInput()
	in.Email = "Ana@Example.COM"

	mi.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account identity.Account) error {
			require.Equal(t, "ana@example.com", account.Username)
			return nil
		})
	mi.EXPECT().AccountByUsername(gomock.Any(), "ana@example.com", true).
		Return(&identity.Account{ID: accountID.String()}, nil)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			require.Equal(t, "ana@example.com", user.Username)
			return user, nil
		})
	mi.EXPECT().AssignRealmRole(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mi.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.RegisterUser(context.Background(), in, false)
	require.NoError(t, err)
}

// Валидация: accountID == uuid.Nil -> ErrInvalidArgument.
func TestService_UserByAccount_InvalidArgument(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.UserByAccount(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Маппинг: storage.ErrNotFoundUser -> ErrNotFound.
func TestService_UserByAccount_NotFound(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(nil, storage.ErrNotFoundUser)

	_, err := s.UserByAccount(context.Background(), accountID)
	require.ErrorIs(t, err, ErrNotFound)
}

// Happy-path: чтение профиля сдвигает last_seen; отказ сдвига не ломает чтение.
func TestService_UserByAccount_OK(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	want := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(want, nil)
	ms.EXPECT().TouchLastSeen(gomock.Any(), accountID).Return(errors.New("pg slow"))

	got, err := s.UserByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_CheckUserExists(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByUsername(gomock.Any(), "ana@example.com").
		Return(mustUser(uuid.New(), "ana@example.com"), nil)
	ok, err := s.CheckUserExists(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	ms.EXPECT().UserByUsername(gomock.Any(), "ghost@example.com").
		Return(nil, storage.ErrNotFoundUser)
	ok, err = s.CheckUserExists(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.False(t, ok)
}

// Provider-first: отказ провайдера оставляет локальное состояние нетронутым
// (storage.UpdateUser не вызывается).
func TestService_UpdateUser_ProviderFirst(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	ms.EXPECT().UserByAccount(gomock.Any(), accountID).
		Return(mustUser(accountID, "ana@example.com"), nil)
	mi.EXPECT().UpdateAccount(gomock.Any(), accountID.String(), gomock.Any()).
		Return(errors.New("kc down"))

	_, err := s.UpdateUser(context.Background(), accountID, UpdateUserInput{
		FirstName: "Ana", LastName: "Nova", Phone: "0749599311",
	})
	require.ErrorIs(t, err, ErrInternal)
}

// Happy-path: сначала провайдер (enabled/verified, новые имена), затем
// локальная замена телефона и адреса.
func TestService_UpdateUser_OK(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	current := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(current, nil)
	mi.EXPECT().UpdateAccount(gomock.Any(), accountID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, account identity.Account) error {
			require.Equal(t, "ana@example.com", account.Username)
			require.Equal(t, "Ana", account.FirstName)
			require.Equal(t, "Nova", account.LastName)
			require.True(t, account.Enabled)
			require.True(t, account.EmailVerified)
			require.Empty(t, account.Credentials)
			return nil
		})
	ms.EXPECT().UpdateUser(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update storage.UserUpdate) (*models.User, error) {
			require.Equal(t, "Ana", update.FirstName)
			require.Equal(t, "Nova", update.LastName)
			require.Equal(t, "0749599311", update.Phone)
			require.NotNil(t, update.Address)
			require.Equal(t, "Oradea", update.Address.City)
			return current, nil
		})

	_, err := s.UpdateUser(context.Background(), accountID, UpdateUserInput{
		FirstName: "Ana",
		LastName:  "Nova",
		Phone:     "0749599311",
		Address:   &AddressInput{City: "Oradea", Country: "Romania"},
	})
	require.NoError(t, err)
}

// Guard: активный аукцион блокирует удаление, провайдер не трогается.
func TestService_DeleteUser_BlockedByActiveAuction(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(user, nil)
	ms.EXPECT().OffersByOwner(gomock.Any(), user.ID).Return([]models.Offer{
		{ID: 7, UserID: user.ID, IsOnAuction: true, IsAvailable: true},
	}, nil)

	err := s.DeleteUser(context.Background(), accountID)
	require.ErrorIs(t, err, ErrActionNotAllowed)
}

// Guard: завершённый аукцион (is_available=false) удаление не блокирует,
// а вот место топ-биддера — блокирует.
func TestService_DeleteUser_BlockedByTopBidder(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(user, nil)
	ms.EXPECT().OffersByOwner(gomock.Any(), user.ID).Return([]models.Offer{
		{ID: 7, UserID: user.ID, IsOnAuction: true, IsAvailable: false},
	}, nil)
	ms.EXPECT().TopBidderIDs(gomock.Any()).Return([]int64{5, user.ID, 9}, nil)

	err := s.DeleteUser(context.Background(), accountID)
	require.ErrorIs(t, err, ErrActionNotAllowed)
}

// Happy-path: порядок удаления — провайдер, аватар, ресурсы офферов, локальная запись.
func TestService_DeleteUser_OK(t *testing.T) {
	s, ms, mb, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")
	offers := []models.Offer{
		{ID: 7, UserID: user.ID},
		{ID: 8, UserID: user.ID},
	}

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(user, nil)
	ms.EXPECT().OffersByOwner(gomock.Any(), user.ID).Return(offers, nil)
	ms.EXPECT().TopBidderIDs(gomock.Any()).Return([]int64{5, 9}, nil)

	provider := mi.EXPECT().DeleteAccount(gomock.Any(), accountID.String()).Return(nil)
	avatar := mb.EXPECT().DeleteAvatar(gomock.Any(), accountID).Return(nil).After(provider)
	mb.EXPECT().DeleteOfferResources(gomock.Any(), accountID, int64(7)).Return(nil).After(avatar)
	mb.EXPECT().DeleteOfferResources(gomock.Any(), accountID, int64(8)).Return(nil).After(avatar)
	ms.EXPECT().DeleteUser(gomock.Any(), user.ID).Return(nil)

	err := s.DeleteUser(context.Background(), accountID)
	require.NoError(t, err)
}

// Реаутентификация провалена -> ErrChangePassword, UpdateAccount не вызывается.
func TestService_ChangePassword_WrongOldPassword(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(user, nil)
	mi.EXPECT().ExchangeCredentials(gomock.Any(), "ana@example.com", "wrong").
		Return(nil, identity.ErrInvalidCredentials)

	err := s.ChangePassword(context.Background(), accountID, "wrong", "newsecret")
	require.ErrorIs(t, err, ErrChangePassword)
	require.True(t, strings.Contains(err.Error(), "ana@example.com"))
}

// Happy-path: после реаутентификации аккаунт обновляется с новой credential,
// имена и статус не меняются.
func TestService_ChangePassword_OK(t *testing.T) {
	s, ms, _, mi, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")

	ms.EXPECT().UserByAccount(gomock.Any(), accountID).Return(user, nil)
	mi.EXPECT().ExchangeCredentials(gomock.Any(), "ana@example.com", "oldsecret").
		Return(&identity.Token{AccessToken: "t"}, nil)
	mi.EXPECT().UpdateAccount(gomock.Any(), accountID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, account identity.Account) error {
			require.Equal(t, user.FirstName, account.FirstName)
			require.Equal(t, user.LastName, account.LastName)
			require.Len(t, account.Credentials, 1)
			require.Equal(t, "newsecret", account.Credentials[0].Value)
			require.False(t, account.Credentials[0].Temporary)
			return nil
		})

	err := s.ChangePassword(context.Background(), accountID, "oldsecret", "newsecret")
	require.NoError(t, err)
}

// Валидация + маппинг blob-ошибки загрузки аватара.
func TestService_UpdateAvatar(t *testing.T) {
	s, ms, mb, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	user := mustUser(accountID, "ana@example.com")

	_, err := s.UpdateAvatar(context.Background(), accountID, nil, 10, "image/png")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.UpdateAvatar(context.Background(), accountID, strings.NewReader("x"), 0, "image/png")
	require.ErrorIs(t, err, ErrInvalidArgument)

	mb.EXPECT().UploadAvatar(gomock.Any(), accountID, gomock.Any(), int64(1), "text/plain").
		Return("", storage.ErrInvalidArgument)
	_, err = s.UpdateAvatar(context.Background(), accountID, strings.NewReader("x"), 1, "text/plain")
	require.ErrorIs(t, err, ErrInvalidArgument)

	mb.EXPECT().UploadAvatar(gomock.Any(), accountID, gomock.Any(), int64(1), "image/png").
		Return("https://cdn.example.com/avatar-"+accountID.String(), nil)
	ms.EXPECT().SetAvatar(gomock.Any(), accountID, "https://cdn.example.com/avatar-"+accountID.String()).
		Return(user, nil)
	got, err := s.UpdateAvatar(context.Background(), accountID, strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)
	require.Equal(t, user, got)
}

// Валидация и маппинг начисления коинов.
func TestService_AddCoins(t *testing.T) {
	s, ms, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	_, err := s.AddCoins(context.Background(), accountID, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().AddCoins(gomock.Any(), accountID, int64(50)).
		Return(nil, storage.ErrNotFoundUser)
	_, err = s.AddCoins(context.Background(), accountID, 50)
	require.ErrorIs(t, err, ErrNotFound)

	coins := int64(50)
	want := mustUser(accountID, "ana@example.com")
	want.Coins = &coins
	ms.EXPECT().AddCoins(gomock.Any(), accountID, int64(50)).Return(want, nil)
	got, err := s.AddCoins(context.Background(), accountID, 50)
	require.NoError(t, err)
	require.Equal(t, int64(50), *got.Coins)
}
