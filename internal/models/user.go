// models содержит доменные сущности user-manager.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactType — внутренний enum типа контакта.
type ContactType int8

const (
	ContactTypeEmail ContactType = iota
	ContactTypePhone
)

func (t ContactType) String() string {
	switch t {
	case ContactTypeEmail:
		return "email"
	case ContactTypePhone:
		return "phone"
	default:
		return "unknown"
	}
}

// Contact — контакт пользователя (email или телефон).
// Содержательным считается только первый контакт каждого типа;
// дубликаты — дефект данных, а не фича.
type Contact struct {
	ID    int64
	Type  ContactType
	Value string
}

// Address — адрес пользователя. Street по соглашению всегда пустая строка.
// Читается только первый адрес из набора.
type Address struct {
	ID      int64
	City    string
	Country string
	Street  string
}

// User — внутренняя доменная модель пользователя.
//
// ID — суррогатный ключ БД, используется только для внутренних связей
// (например, top-bidder-запросы). AccountID — стабильный идентификатор,
// назначаемый провайдером идентификации при создании аккаунта;
// первичный ключ корреляции между системами.
type User struct {
	ID            int64
	AccountID     uuid.UUID
	Username      string // login name == email
	FirstName     string
	LastName      string
	AvatarURL     string
	Coins         *int64 // nil до первого начисления
	GoogleAccount bool
	Contacts      []Contact
	Addresses     []Address
	LastSeen      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Email возвращает значение первого EMAIL-контакта (или пустую строку).
func (u *User) Email() string {
	for _, c := range u.Contacts {
		if c.Type == ContactTypeEmail {
			return c.Value
		}
	}

	return ""
}

// Phone возвращает значение первого PHONE-контакта (или пустую строку).
func (u *User) Phone() string {
	for _, c := range u.Contacts {
		if c.Type == ContactTypePhone {
			return c.Value
		}
	}

	return ""
}

// Address возвращает первый адрес из набора (или nil).
func (u *User) Address() *Address {
	if len(u.Addresses) == 0 {
		return nil
	}

	return &u.Addresses[0]
}
