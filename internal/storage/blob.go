package storage

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

var (
	// ErrInvalidArgument — нарушены ограничения загрузки (тип/размер).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Blob — контракт объектного хранилища.
//
// Ключи объектов:
//   - аватар: "avatar-<accountID>";
//   - ресурсы оффера: префикс "<accountID>/<offerID>".
type Blob interface {
	// UploadAvatar сохраняет аватар и возвращает его публичный URL.
	// Внутри — валидация contentType и size по конфигу.
	UploadAvatar(ctx context.Context, accountID uuid.UUID, data io.Reader, size int64, contentType string) (string, error)
	// DeleteAvatar удаляет объект аватара. Отсутствие объекта не считается ошибкой.
	DeleteAvatar(ctx context.Context, accountID uuid.UUID) error
	// DeleteOfferResources удаляет все объекты с префиксом ресурса оффера.
	DeleteOfferResources(ctx context.Context, accountID uuid.UUID, offerID int64) error
}

// BlobStorage — алиас-обёртка для внедрения зависимости.
type BlobStorage interface {
	Blob
}
