package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"

	"github.com/FiveDevOrg/UserManagement/internal/identity"
	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/pkg/log"
	"github.com/FiveDevOrg/UserManagement/internal/pkg/redact"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/google/uuid"
)

// phoneRe — допустимый формат телефона: ведущий "+" или "0" и 9-14 цифр.
var phoneRe = regexp.MustCompile(`^(\+|0)[0-9]{9,14}$`)

// Входные структуры сервисного слоя.
type AddressInput struct {
	City    string
	Country string
}

type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   *AddressInput
}

type UpdateUserInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address   *AddressInput
}

// RegisterUser выполняет сагу регистрации.
//
// Порядок шагов:
//  1. создать аккаунт у провайдера (enabled, emailVerified = preVerified,
//     парольная credential); отказ провайдера -> ErrRegistration, локальной
//     записи нет;
//  2. перечитать аккаунт по username, чтобы получить назначенный провайдером
//     стабильный id; пустой результат -> ErrRegistration (аккаунт у провайдера
//     осиротел: id неизвестен, компенсировать нечем);
//  3. сохранить локальный профиль (контакты EMAIL/PHONE, опциональный адрес)
//     одной транзакцией; при отказе — компенсация: удалить только что
//     созданный аккаунт у провайдера и вернуть ErrRegistration. Отказ самой
//     компенсации не ретраится — только логируется;
//  4. best-effort шаги после фиксации: назначить realm-роль и (для
//     не-преверифицированных) отправить письмо верификации; их отказы
//     логируются и никогда не валят регистрацию.
//
// Операция неидемпотентна: повторный вызов с тем же email создаст второй
// аккаунт у провайдера (дедуп-проверки перед шагом 1 нет).
func (s *Service) RegisterUser(ctx context.Context, input RegisterUserInput, preVerified bool) (*models.User, error) {
	const op = "service/users/RegisterUser"

	lg := log.From(ctx).With("op", op, "email", redact.Email(input.Email))

	email, err := normalizeEmail(input.Email)
	if err != nil {
		lg.Warn("invalid argument: bad email")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if firstName == "" || lastName == "" {
		lg.Warn("invalid argument: empty name")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.Password == "" {
		lg.Warn("invalid argument: empty password")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.Phone != "" && !phoneRe.MatchString(input.Phone) {
		lg.Warn("invalid argument: bad phone")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	account := identity.Account{
		Username:      email,
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		Enabled:       true,
		EmailVerified: preVerified,
		Credentials: []identity.Credential{
			{Type: "password", Value: input.Password, Temporary: false},
		},
	}

	if err := s.idp.CreateAccount(ctx, account); err != nil {
		lg.Warn("provider rejected create", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrRegistration)
	}

	created, err := s.idp.AccountByUsername(ctx, email, true)
	if err != nil {
		// Аккаунт создан, но найти его по username не удалось: id неизвестен,
		// компенсация невозможна — аккаунт у провайдера осиротел.
		lg.Error("identity not found after create", "err", err)

		return nil, fmt.Errorf("%s: identity not found: %w", op, ErrRegistration)
	}

	accountID, err := uuid.Parse(created.ID)
	if err != nil {
		lg.Error("provider returned malformed account id", "account_id", created.ID)
		s.compensateRegistration(ctx, lg, created.ID)

		return nil, fmt.Errorf("%s: %w", op, ErrRegistration)
	}

	user := &models.User{
		AccountID:     accountID,
		Username:      email,
		FirstName:     firstName,
		LastName:      lastName,
		GoogleAccount: preVerified,
		Contacts: []models.Contact{
			{Type: models.ContactTypeEmail, Value: email},
		},
	}

	if input.Phone != "" {
		user.Contacts = append(user.Contacts,
			models.Contact{Type: models.ContactTypePhone, Value: input.Phone})
	}

	if input.Address != nil {
		user.Addresses = []models.Address{{
			City:    input.Address.City,
			Country: input.Address.Country,
			Street:  "",
		}}
	}

	saved, err := s.storage.SaveUser(ctx, user)
	if err != nil {
		lg.Error("local save failed, compensating", "err", err)
		s.compensateRegistration(ctx, lg, created.ID)

		return nil, fmt.Errorf("%s: %w", op, ErrRegistration)
	}

	if err := s.idp.AssignRealmRole(ctx, created.ID, s.cfg.Keycloak.UserRole); err != nil {
		lg.Warn("realm role assignment failed", "err", err)
	}

	if !preVerified {
		if err := s.idp.SendVerificationEmail(ctx, created.ID); err != nil {
			lg.Warn("verification email failed", "err", err)
		}
	}

	return saved, nil
}

// compensateRegistration удаляет аккаунт у провайдера после отказа
// локального шага. Отказ компенсации не ретраится — только логируется.
func (s *Service) compensateRegistration(ctx context.Context, lg *slog.Logger, providerID string) {
	if err := s.idp.DeleteAccount(ctx, providerID); err != nil {
		lg.Error("registration compensation failed, provider account orphaned",
			"provider_id", providerID, "err", err)
	}
}

// UserByAccount возвращает профиль по стабильному идентификатору аккаунта.
// Сдвигает last_seen (best-effort, отказ логируется).
//
// Ошибки: ErrInvalidArgument при нулевом id, ErrNotFound при отсутствии записи.
func (s *Service) UserByAccount(ctx context.Context, accountID uuid.UUID) (*models.User, error) {
	const op = "service/users/UserByAccount"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil {
		lg.Warn("invalid argument: empty account_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByAccount(ctx, accountID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByAccount", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.storage.TouchLastSeen(ctx, accountID); err != nil {
		lg.Warn("touch last_seen failed", "err", err)
	}

	return user, nil
}

// CheckUserExists проверяет наличие профиля по login name.
func (s *Service) CheckUserExists(ctx context.Context, email string) (bool, error) {
	const op = "service/users/CheckUserExists"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	norm, err := normalizeEmail(email)
	if err != nil {
		lg.Warn("invalid argument: bad email")

		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	_, err = s.storage.UserByUsername(ctx, norm)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundUser) {
			return false, nil
		}

		lg.Error("storage error on UserByUsername", "err", err)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return true, nil
}

// UpdateUser синхронизирует правку профиля в обе системы.
//
// Порядок шагов (провайдер — source of truth для имён и статуса верификации):
//  1. обновить представление аккаунта у провайдера (enabled=true,
//     emailVerified=true, новые имена) — до любой локальной мутации;
//  2. только после успеха — локальная замена: имена, один новый PHONE-контакт
//     вместо всех прежних (EMAIL не трогается), новый адрес вместо всех
//     прежних (nil — адрес убрать).
//
// Версионирования нет: конкурентные апдейты одной записи — last-writer-wins.
func (s *Service) UpdateUser(ctx context.Context, accountID uuid.UUID, input UpdateUserInput) (*models.User, error) {
	const op = "service/users/UpdateUser"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil {
		lg.Warn("invalid argument: empty account_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if firstName == "" || lastName == "" {
		lg.Warn("invalid argument: empty name")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !phoneRe.MatchString(input.Phone) {
		lg.Warn("invalid argument: bad phone")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByAccount(ctx, accountID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByAccount", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	account := identity.Account{
		Username:      user.Username,
		Email:         user.Username,
		FirstName:     firstName,
		LastName:      lastName,
		Enabled:       true,
		EmailVerified: true,
	}

	if err := s.idp.UpdateAccount(ctx, accountID.String(), account); err != nil {
		lg.Error("provider update failed, local state untouched", "err", err)

		if errors.Is(err, identity.ErrNotFoundAccount) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	update := storage.UserUpdate{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     input.Phone,
	}

	if input.Address != nil {
		update.Address = &models.Address{
			City:    input.Address.City,
			Country: input.Address.Country,
			Street:  "",
		}
	}

	updated, err := s.storage.UpdateUser(ctx, accountID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found on update")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return updated, nil
}

// DeleteUser удаляет пользователя из обеих систем.
//
// Guard-проверки (при срабатывании — ErrActionNotAllowed, никаких удалений):
//   - у пользователя есть оффер с is_on_auction и is_available;
//   - суррогатный id пользователя присутствует среди текущих топ-биддеров.
//
// Порядок удаления: аккаунт у провайдера -> аватар -> ресурсы офферов ->
// локальная запись. Компенсации нет: отказ после удаления аккаунта у
// провайдера оставляет окно несогласованности (отражается в логе как error).
func (s *Service) DeleteUser(ctx context.Context, accountID uuid.UUID) error {
	const op = "service/users/DeleteUser"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil {
		lg.Warn("invalid argument: empty account_id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByAccount(ctx, accountID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByAccount", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	offers, err := s.storage.OffersByOwner(ctx, user.ID)
	if err != nil {
		lg.Error("storage error on OffersByOwner", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for _, offer := range offers {
		if offer.IsOnAuction && offer.IsAvailable {
			lg.Warn("delete blocked: active auction", "offer_id", offer.ID)

			return fmt.Errorf("%s: %w", op, ErrActionNotAllowed)
		}
	}

	topBidders, err := s.storage.TopBidderIDs(ctx)
	if err != nil {
		lg.Error("storage error on TopBidderIDs", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for _, id := range topBidders {
		if id == user.ID {
			lg.Warn("delete blocked: user is top bidder")

			return fmt.Errorf("%s: %w", op, ErrActionNotAllowed)
		}
	}

	if err := s.idp.DeleteAccount(ctx, accountID.String()); err != nil {
		lg.Error("provider delete failed", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.blob.DeleteAvatar(ctx, accountID); err != nil {
		lg.Error("avatar cleanup failed after provider delete", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for _, offer := range offers {
		if err := s.blob.DeleteOfferResources(ctx, accountID, offer.ID); err != nil {
			lg.Error("offer resources cleanup failed after provider delete",
				"offer_id", offer.ID, "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.storage.DeleteUser(ctx, user.ID); err != nil {
		lg.Error("local delete failed after provider delete", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// ChangePassword меняет пароль после реаутентификации.
//
// Порядок шагов:
//  1. реаутентификация парой (login name, oldPassword) через token endpoint;
//     отказ провайдера -> ErrChangePassword, больше ничего не происходит;
//  2. обновление представления аккаунта с новой парольной credential
//     (enabled/verified/имена — без изменений). Локальное состояние не
//     меняется: учётные данные живут только у провайдера.
func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, oldPassword, newPassword string) error {
	const op = "service/users/ChangePassword"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil || oldPassword == "" || newPassword == "" {
		lg.Warn("invalid argument")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByAccount(ctx, accountID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByAccount", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if _, err := s.idp.ExchangeCredentials(ctx, user.Username, oldPassword); err != nil {
		lg.Warn("re-authentication failed", "user", redact.Email(user.Username))

		return fmt.Errorf("%s: user %s: %w", op, user.Username, ErrChangePassword)
	}

	account := identity.Account{
		Username:      user.Username,
		Email:         user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Enabled:       true,
		EmailVerified: true,
		Credentials: []identity.Credential{
			{Type: "password", Value: newPassword, Temporary: false},
		},
	}

	if err := s.idp.UpdateAccount(ctx, accountID.String(), account); err != nil {
		lg.Error("provider update failed on password change", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// UpdateAvatar сохраняет аватар в объектном хранилище по ключу
// "avatar-<accountID>" и фиксирует публичный URL в профиле.
func (s *Service) UpdateAvatar(ctx context.Context, accountID uuid.UUID, data io.Reader, size int64, contentType string) (*models.User, error) {
	const op = "service/users/UpdateAvatar"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil || data == nil || size <= 0 || strings.TrimSpace(contentType) == "" {
		lg.Warn("invalid argument for avatar upload", "content_type", contentType, "size", size)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	avatarURL, err := s.blob.UploadAvatar(ctx, accountID, data, size, contentType)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("avatar validation failed in storage", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("blob error on UploadAvatar", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	user, err := s.storage.SetAvatar(ctx, accountID, avatarURL)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found on avatar confirm")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetAvatar", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// AddCoins начисляет коины: NULL-баланс трактуется как 0, баланс только растёт.
// amount приходит от платёжного коллаборатора, уже провалидировавшего intent.
func (s *Service) AddCoins(ctx context.Context, accountID uuid.UUID, amount int64) (*models.User, error) {
	const op = "service/users/AddCoins"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil || amount < 0 {
		lg.Warn("invalid argument", "amount", amount)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.AddCoins(ctx, accountID, amount)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on AddCoins", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// normalizeEmail проверяет базовый формат email и приводит его к нижнему регистру.
func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("empty email")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}

	return strings.ToLower(email), nil
}
