package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы платежа: intent создан платёжным шлюзом, succeeded — подтверждён.
const (
	PaymentStatusIntent    = "INTENT"
	PaymentStatusSucceeded = "SUCCEEDED"
)

// PaymentHistory — запись о платёжном намерении/подтверждении.
// PaymentSecret — client secret платёжного intent'а, выдаётся шлюзом.
type PaymentHistory struct {
	ID            int64
	PaymentSecret string
	AccountID     uuid.UUID
	Status        string
	IntentDate    time.Time
}
