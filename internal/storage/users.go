// storage содержит контракты слоя хранилищ user-manager.
//
// users.go - работа с профилями в БД (создание/чтение/замена контактов и адреса),
// начисление коинов, guard-запросы по офферам и ставкам, платёжная история.
// blob.go - контракт для работы с объектным хранилищем (аватары, ресурсы офферов).
package storage

import (
	"context"
	"errors"

	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFoundUser — профиль не найден.
	ErrNotFoundUser = errors.New("not found")
	// ErrAlreadyExists — профиль с тем же уникальным полем уже существует.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFoundPayment — платёжный intent не найден или уже подтверждён.
	ErrNotFoundPayment = errors.New("payment not found")
)

// UserUpdate — замена изменяемой части профиля.
//
// Контракт умышленно replace, а не диff: телефонный контакт заменяется
// целиком (после замены остаётся ровно один PHONE), EMAIL-контакт не
// трогается, набор адресов заменяется на Address (nil — адрес убрать).
type UserUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Address   *models.Address
}

// Users — контракт репозитория профилей.
type Users interface {
	// SaveUser создаёт профиль вместе с контактами и адресом одной транзакцией.
	SaveUser(ctx context.Context, user *models.User) (*models.User, error)
	// UserByAccount возвращает профиль с контактами и адресами по account_uuid.
	UserByAccount(ctx context.Context, accountID uuid.UUID) (*models.User, error)
	// UserByUsername возвращает профиль с контактами и адресами по login name.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUser применяет UserUpdate одной транзакцией и обновляет updated_at.
	UpdateUser(ctx context.Context, accountID uuid.UUID, update UserUpdate) (*models.User, error)
	// DeleteUser удаляет профиль по суррогатному id (каскадно с контактами/адресами).
	DeleteUser(ctx context.Context, id int64) error
	// SetAvatar фиксирует URL аватара в записи профиля.
	SetAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) (*models.User, error)
	// AddCoins увеличивает баланс: NULL трактуется как 0. Баланс только растёт.
	AddCoins(ctx context.Context, accountID uuid.UUID, amount int64) (*models.User, error)
	// TouchLastSeen сдвигает last_seen на текущее время.
	TouchLastSeen(ctx context.Context, accountID uuid.UUID) error
	// OffersByOwner возвращает офферы пользователя для guard-проверок удаления.
	OffersByOwner(ctx context.Context, userID int64) ([]models.Offer, error)
	// TopBidderIDs возвращает суррогатные id текущих топ-биддеров по всем офферам.
	TopBidderIDs(ctx context.Context) ([]int64, error)
}

// Payments — контракт платёжной истории.
type Payments interface {
	// SavePaymentIntent сохраняет запись о созданном intent'е (status=INTENT).
	SavePaymentIntent(ctx context.Context, payment *models.PaymentHistory) error
	// ConfirmPaymentAndAddCoins переводит найденный INTENT в SUCCEEDED и
	// начисляет коины атомарно: при ошибке начисления статус не меняется.
	// Ошибки: ErrNotFoundPayment, если intent отсутствует или уже подтверждён;
	// ErrNotFoundUser, если профиль для начисления не найден.
	ConfirmPaymentAndAddCoins(ctx context.Context, paymentSecret string, accountID uuid.UUID, coins int64) (*models.User, error)
}

// UsersStorage — верхнеуровневый интерфейс хранилища.
type UsersStorage interface {
	Users
	Payments
	Close()
}
