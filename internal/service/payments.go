package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/pkg/log"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/google/uuid"
)

// RegisterPaymentIntent фиксирует намерение платежа в статусе INTENT.
// Секрет платежа приходит от платёжного шлюза и служит ключом подтверждения.
func (s *Service) RegisterPaymentIntent(ctx context.Context, accountID uuid.UUID, paymentSecret string) error {
	const op = "service/payments/RegisterPaymentIntent"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil || strings.TrimSpace(paymentSecret) == "" {
		lg.Warn("invalid argument")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	payment := &models.PaymentHistory{
		PaymentSecret: paymentSecret,
		AccountID:     accountID,
		Status:        models.PaymentStatusIntent,
	}

	if err := s.storage.SavePaymentIntent(ctx, payment); err != nil {
		lg.Error("storage error on SavePaymentIntent", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// ConfirmPayment переводит intent в SUCCEEDED и начисляет коины.
//
// Перевод статуса и начисление выполняются хранилищем атомарно: intent
// переводится в SUCCEEDED ровно один раз, повторное подтверждение того же
// секрета вернёт ErrNotFound, а неудачное начисление не съедает intent.
func (s *Service) ConfirmPayment(ctx context.Context, accountID uuid.UUID, paymentSecret string, coins int64) (*models.User, error) {
	const op = "service/payments/ConfirmPayment"

	lg := log.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil || strings.TrimSpace(paymentSecret) == "" || coins < 0 {
		lg.Warn("invalid argument", "coins", coins)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.ConfirmPaymentAndAddCoins(ctx, paymentSecret, accountID, coins)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundPayment):
			lg.Warn("payment intent not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found on accrual")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ConfirmPaymentAndAddCoins", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}
