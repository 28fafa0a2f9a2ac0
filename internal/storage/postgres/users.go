package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// userColumns — единый список колонок таблицы user_details,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const userColumns = `
id, account_uuid, username, first_name, last_name, avatar_url, available_coins, google_account, last_seen, created_at, updated_at
`

// scanUser сканирует одну строку профиля в доменную модель.
// available_coins допускает NULL (до первого начисления).
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var coins *int64

	if err := row.Scan(
		&user.ID,
		&user.AccountID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.AvatarURL,
		&coins,
		&user.GoogleAccount,
		&user.LastSeen,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Coins = coins

	return &user, nil
}

// loadRelations дочитывает контакты и адреса профиля.
func (s *UsersStorage) loadRelations(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, user *models.User) error {
	rows, err := q.Query(ctx,
		`SELECT id, type, value FROM contact WHERE user_id = $1 ORDER BY id`, user.ID)
	if err != nil {
		return err
	}

	user.Contacts = user.Contacts[:0]
	for rows.Next() {
		var c models.Contact
		var typ int16
		if err := rows.Scan(&c.ID, &typ, &c.Value); err != nil {
			rows.Close()
			return err
		}
		c.Type = models.ContactType(typ)
		user.Contacts = append(user.Contacts, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx,
		`SELECT id, city, country, street FROM address WHERE user_id = $1 ORDER BY id`, user.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	user.Addresses = user.Addresses[:0]
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.City, &a.Country, &a.Street); err != nil {
			return err
		}
		user.Addresses = append(user.Addresses, a)
	}

	return rows.Err()
}

// SaveUser создаёт профиль вместе с контактами и адресом одной транзакцией.
// Ошибки: storage.ErrAlreadyExists при конфликте уникальности (account_uuid/username).
func (s *UsersStorage) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage/postgres/users/SaveUser"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	INSERT INTO user_details (account_uuid, username, first_name, last_name, avatar_url, available_coins, google_account)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING
	` + userColumns

	row := tx.QueryRow(ctx, q,
		user.AccountID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		user.Coins,
		user.GoogleAccount,
	)

	saved, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, c := range user.Contacts {
		var contact models.Contact
		contact.Type = c.Type
		contact.Value = c.Value

		if err := tx.QueryRow(ctx,
			`INSERT INTO contact (user_id, type, value) VALUES ($1, $2, $3) RETURNING id`,
			saved.ID, int16(c.Type), c.Value,
		).Scan(&contact.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		saved.Contacts = append(saved.Contacts, contact)
	}

	for _, a := range user.Addresses {
		var address models.Address
		address.City = a.City
		address.Country = a.Country
		address.Street = a.Street

		if err := tx.QueryRow(ctx,
			`INSERT INTO address (user_id, city, country, street) VALUES ($1, $2, $3, $4) RETURNING id`,
			saved.ID, a.City, a.Country, a.Street,
		).Scan(&address.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		saved.Addresses = append(saved.Addresses, address)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// UserByAccount возвращает профиль по account_uuid.
// Ошибки: storage.ErrNotFoundUser, либо ошибка выполнения запроса.
func (s *UsersStorage) UserByAccount(ctx context.Context, accountID uuid.UUID) (*models.User, error) {
	const op = "storage/postgres/users/UserByAccount"

	q := `SELECT ` + userColumns + ` FROM user_details WHERE account_uuid = $1`

	return s.userByQuery(ctx, op, q, accountID)
}

// UserByUsername возвращает профиль по login name.
// Ошибки: storage.ErrNotFoundUser, либо ошибка выполнения запроса.
func (s *UsersStorage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/postgres/users/UserByUsername"

	q := `SELECT ` + userColumns + ` FROM user_details WHERE username = $1`

	return s.userByQuery(ctx, op, q, username)
}

func (s *UsersStorage) userByQuery(ctx context.Context, op, q string, arg any) (*models.User, error) {
	row := s.db.QueryRow(ctx, q, arg)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.loadRelations(ctx, s.db, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUser применяет замену изменяемой части профиля одной транзакцией:
// имена обновляются, PHONE-контакты заменяются на один новый, набор адресов
// заменяется целиком (nil — адрес убрать). EMAIL-контакт не трогается.
// Ошибки: storage.ErrNotFoundUser при отсутствии записи.
func (s *UsersStorage) UpdateUser(ctx context.Context, accountID uuid.UUID, update storage.UserUpdate) (*models.User, error) {
	const op = "storage/postgres/users/UpdateUser"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	UPDATE user_details
	SET first_name = $2, last_name = $3, updated_at = now()
	WHERE account_uuid = $1
	RETURNING
	` + userColumns

	row := tx.QueryRow(ctx, q, accountID, update.FirstName, update.LastName)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM contact WHERE user_id = $1 AND type = $2`,
		user.ID, int16(models.ContactTypePhone),
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO contact (user_id, type, value) VALUES ($1, $2, $3)`,
		user.ID, int16(models.ContactTypePhone), update.Phone,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM address WHERE user_id = $1`, user.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if update.Address != nil {
		if _, err := tx.Exec(ctx,
			`INSERT INTO address (user_id, city, country, street) VALUES ($1, $2, $3, $4)`,
			user.ID, update.Address.City, update.Address.Country, update.Address.Street,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.loadRelations(ctx, tx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// DeleteUser удаляет профиль по суррогатному id.
// Контакты и адреса удаляются каскадно на уровне БД.
// Ошибки: storage.ErrNotFoundUser при отсутствии записи.
func (s *UsersStorage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage/postgres/users/DeleteUser"

	tag, err := s.db.Exec(ctx, `DELETE FROM user_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
	}

	return nil
}

// SetAvatar фиксирует URL аватара. Всегда обновляет updated_at.
// Ошибки: storage.ErrNotFoundUser при отсутствии записи.
func (s *UsersStorage) SetAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) (*models.User, error) {
	const op = "storage/postgres/users/SetAvatar"

	q := `
	UPDATE user_details
	SET avatar_url = $2, updated_at = now()
	WHERE account_uuid = $1
	RETURNING
	` + userColumns

	return s.mutateUser(ctx, op, q, accountID, avatarURL)
}

// AddCoins увеличивает баланс коинов: NULL трактуется как 0.
// Ошибки: storage.ErrNotFoundUser при отсутствии записи.
func (s *UsersStorage) AddCoins(ctx context.Context, accountID uuid.UUID, amount int64) (*models.User, error) {
	const op = "storage/postgres/users/AddCoins"

	q := `
	UPDATE user_details
	SET available_coins = COALESCE(available_coins, 0) + $2, updated_at = now()
	WHERE account_uuid = $1
	RETURNING
	` + userColumns

	return s.mutateUser(ctx, op, q, accountID, amount)
}

func (s *UsersStorage) mutateUser(ctx context.Context, op, q string, args ...any) (*models.User, error) {
	row := s.db.QueryRow(ctx, q, args...)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.loadRelations(ctx, s.db, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// TouchLastSeen сдвигает last_seen. Отсутствие записи не считается ошибкой.
func (s *UsersStorage) TouchLastSeen(ctx context.Context, accountID uuid.UUID) error {
	const op = "storage/postgres/users/TouchLastSeen"

	if _, err := s.db.Exec(ctx,
		`UPDATE user_details SET last_seen = now() WHERE account_uuid = $1`, accountID,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// OffersByOwner возвращает офферы пользователя.
func (s *UsersStorage) OffersByOwner(ctx context.Context, userID int64) ([]models.Offer, error) {
	const op = "storage/postgres/users/OffersByOwner"

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, is_on_auction, is_available FROM offer WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.UserID, &o.IsOnAuction, &o.IsAvailable); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return offers, nil
}

// TopBidderIDs возвращает суррогатные id пользователей, держащих
// максимальную ставку по каждому офферу.
func (s *UsersStorage) TopBidderIDs(ctx context.Context) ([]int64, error) {
	const op = "storage/postgres/users/TopBidderIDs"

	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT ON (product_id) user_id FROM bid ORDER BY product_id, price DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}
