package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FiveDevOrg/UserManagement/internal/identity"
	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/pkg/log"
	"github.com/FiveDevOrg/UserManagement/internal/pkg/redact"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
)

// Login аутентифицирует пользователя и возвращает пару токенов провайдера.
//
// Порядок шагов:
//  1. локальный профиль должен существовать (иначе ErrNotFound);
//  2. аккаунт у провайдера перечитывается, и непройденная верификация email
//     отклоняет вход (ErrEmailNotVerified) ДО любого обмена учётных данных;
//  3. обмен (login name, password) на пару токенов; любой отказ обмена ->
//     ErrSignIn, деталь провайдера наружу не выносится.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthToken, error) {
	const op = "service/auth/Login"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	norm, err := normalizeEmail(email)
	if err != nil {
		lg.Warn("invalid argument: bad email")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if password == "" {
		lg.Warn("invalid argument: empty password")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, norm)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByUsername", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	account, err := s.idp.AccountByID(ctx, user.AccountID.String())
	if err != nil {
		lg.Error("provider lookup failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !account.EmailVerified {
		lg.Warn("login rejected: email not verified")

		return nil, fmt.Errorf("%s: %w", op, ErrEmailNotVerified)
	}

	token, err := s.idp.ExchangeCredentials(ctx, norm, password)
	if err != nil {
		lg.Warn("credential exchange failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrSignIn)
	}

	return &models.AuthToken{
		AccessToken:  token.AccessToken,
		ExpiresIn:    token.ExpiresIn,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		SessionState: token.SessionState,
	}, nil
}

// SendResetPasswordLink инициирует у провайдера письмо со сбросом пароля.
func (s *Service) SendResetPasswordLink(ctx context.Context, email string) error {
	const op = "service/auth/SendResetPasswordLink"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	norm, err := normalizeEmail(email)
	if err != nil {
		lg.Warn("invalid argument: bad email")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, norm)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByUsername", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.idp.SendResetPasswordEmail(ctx, user.AccountID.String()); err != nil {
		lg.Error("reset password email failed", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// ResendVerificationLink повторно отправляет письмо верификации. Для уже
// верифицированного аккаунта — no-op.
func (s *Service) ResendVerificationLink(ctx context.Context, email string) error {
	const op = "service/auth/ResendVerificationLink"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	norm, err := normalizeEmail(email)
	if err != nil {
		lg.Warn("invalid argument: bad email")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, norm)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByUsername", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	account, err := s.idp.AccountByID(ctx, user.AccountID.String())
	if err != nil {
		if errors.Is(err, identity.ErrNotFoundAccount) {
			lg.Warn("provider account not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("provider lookup failed", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if account.EmailVerified {
		return nil
	}

	if err := s.idp.SendVerificationEmail(ctx, user.AccountID.String()); err != nil {
		lg.Error("verification email failed", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}
