package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
)

// avatarKey — ключ объекта аватара в бакете.
func avatarKey(accountID uuid.UUID) string {
	return fmt.Sprintf("avatar-%s", accountID)
}

// offerPrefix — префикс объектов ресурсов оффера. Закрывающий "/"
// обязателен: иначе префикс оффера 7 захватил бы и объекты оффера 70.
func offerPrefix(accountID uuid.UUID, offerID int64) string {
	return fmt.Sprintf("%s/%d/", accountID, offerID)
}

// UploadAvatar сохраняет аватар по фиксированному ключу и возвращает публичный URL.
// Валидирует contentType и size согласно конфигу.
// Ошибки: storage.ErrInvalidArgument при нарушении ограничений.
func (s *BlobStorage) UploadAvatar(ctx context.Context, accountID uuid.UUID, data io.Reader, size int64, contentType string) (string, error) {
	const op = "storage/minio/blob/UploadAvatar"

	if size <= 0 || size > s.cfg.Avatar.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Avatar.AllowedContentTypes, contentType) {
		return "", storage.ErrInvalidArgument
	}

	key := avatarKey(accountID)

	if _, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, data, size, mclient.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.cfg.S3.Endpoint, "/") + "/" + s.cfg.S3.Bucket
	}

	return base + "/" + key, nil
}

// DeleteAvatar удаляет объект аватара. Отсутствие объекта не считается ошибкой.
func (s *BlobStorage) DeleteAvatar(ctx context.Context, accountID uuid.UUID) error {
	const op = "storage/minio/blob/DeleteAvatar"

	err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, avatarKey(accountID), mclient.RemoveObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteOfferResources удаляет все объекты с префиксом ресурса оффера
// пакетной операцией RemoveObjects.
func (s *BlobStorage) DeleteOfferResources(ctx context.Context, accountID uuid.UUID, offerID int64) error {
	const op = "storage/minio/blob/DeleteOfferResources"

	// Отмена дочернего контекста останавливает листинг при раннем выходе
	// из цикла удаления, иначе горутина висела бы на keys до конца запроса.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := s.client.ListObjects(ctx, s.cfg.S3.Bucket, mclient.ListObjectsOptions{
		Prefix:    offerPrefix(accountID, offerID),
		Recursive: true,
	})

	keys := make(chan mclient.ObjectInfo)
	listErr := make(chan error, 1)

	go func() {
		defer close(keys)
		for obj := range objects {
			if obj.Err != nil {
				listErr <- obj.Err
				return
			}

			select {
			case keys <- obj:
			case <-ctx.Done():
				listErr <- ctx.Err()
				return
			}
		}
		listErr <- nil
	}()

	for result := range s.client.RemoveObjects(ctx, s.cfg.S3.Bucket, keys, mclient.RemoveObjectsOptions{}) {
		if result.Err != nil {
			return fmt.Errorf("%s: remove %q: %w", op, result.ObjectName, result.Err)
		}
	}

	if err := <-listErr; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
