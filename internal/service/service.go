// service содержит бизнес-логику user-manager:
// - сага регистрации (аккаунт у провайдера + локальный профиль, с компенсацией);
// - координация обновления профиля между провайдером и локальной БД;
// - удаление с guard-проверками бизнес-инвариантов;
// - смена пароля с реаутентификацией;
// - начисление коинов из подтверждённых платежей;
// - вход/сброс пароля/повторная верификация на границе auth.
//
// Идентичность пользователя разделена между провайдером идентификации
// (учётные данные, верификация email, роли) и локальной БД (профиль,
// контакты, адреса, коины). Общих транзакций нет: порядок шагов и
// компенсации описаны у каждой операции.
package service

import (
	"errors"

	"github.com/FiveDevOrg/UserManagement/internal/config"
	"github.com/FiveDevOrg/UserManagement/internal/identity"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные.
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — сущность не найдена.
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrRegistration — отказ провайдера на create/lookup либо отказ локального
	// сохранения (после компенсации). Транспорт: HTTP 417.
	ErrRegistration = errors.New("registration failed")

	// ErrActionNotAllowed — удаление заблокировано инвариантом
	// (активный аукцион или top-bidder). Транспорт: HTTP 481.
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrChangePassword — реаутентификация по старому паролю не прошла.
	// Транспорт: HTTP 400.
	ErrChangePassword = errors.New("change password failed")

	// ErrEmailNotVerified — вход заблокирован до верификации email.
	// Транспорт: HTTP 470.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrSignIn — обмен учётных данных на токен не удался.
	// Транспорт: HTTP 451.
	ErrSignIn = errors.New("sign in failed")

	// ErrInternal — внутренняя ошибка сервиса.
	// Транспорт: HTTP 500.
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику user-manager.
// Экземпляр безопасен для конкурентного использования при условии,
// что переданные зависимости потокобезопасны.
type Service struct {
	cfg     *config.Config
	storage storage.UsersStorage
	blob    storage.BlobStorage
	idp     identity.Provider
}

// New создает новый экземпляр Service.
func New(usersStorage storage.UsersStorage, blobStorage storage.BlobStorage, idp identity.Provider, cfg *config.Config) *Service {
	return &Service{
		storage: usersStorage,
		blob:    blobStorage,
		idp:     idp,
		cfg:     cfg,
	}
}
