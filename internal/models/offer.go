package models

// Offer — оффер маркетплейса. Принадлежит соседнему bounded context;
// здесь читается только для guard-проверок при удалении пользователя.
type Offer struct {
	ID          int64
	UserID      int64
	IsOnAuction bool
	IsAvailable bool
}
