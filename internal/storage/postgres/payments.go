package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SavePaymentIntent сохраняет запись о созданном платёжном intent'е.
func (s *UsersStorage) SavePaymentIntent(ctx context.Context, payment *models.PaymentHistory) error {
	const op = "storage/postgres/payments/SavePaymentIntent"

	if err := s.db.QueryRow(ctx,
		`INSERT INTO payment_history (payment_secret, account_uuid, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, intent_date`,
		payment.PaymentSecret, payment.AccountID, payment.Status,
	).Scan(&payment.ID, &payment.IntentDate); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConfirmPaymentAndAddCoins переводит найденный INTENT в SUCCEEDED и начисляет
// коины одной транзакцией: если начисление не прошло, перевод статуса
// откатывается и intent остаётся подтверждаемым.
// Ошибки: storage.ErrNotFoundPayment, если intent отсутствует или уже
// подтверждён; storage.ErrNotFoundUser, если профиль для начисления не найден.
func (s *UsersStorage) ConfirmPaymentAndAddCoins(ctx context.Context, paymentSecret string, accountID uuid.UUID, coins int64) (*models.User, error) {
	const op = "storage/postgres/payments/ConfirmPaymentAndAddCoins"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE payment_history
		 SET status = $3
		 WHERE payment_secret = $1 AND account_uuid = $2 AND status = $4`,
		paymentSecret, accountID, models.PaymentStatusSucceeded, models.PaymentStatusIntent,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundPayment)
	}

	q := `
	UPDATE user_details
	SET available_coins = COALESCE(available_coins, 0) + $2, updated_at = now()
	WHERE account_uuid = $1
	RETURNING
	` + userColumns

	row := tx.QueryRow(ctx, q, accountID, coins)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.loadRelations(ctx, tx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
