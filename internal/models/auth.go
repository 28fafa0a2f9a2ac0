package models

// AuthToken — результат обмена логина/пароля на токен у провайдера идентификации.
// Наружу/внутрь HTTP конвертируем как есть.
type AuthToken struct {
	AccessToken  string
	ExpiresIn    int64
	RefreshToken string
	TokenType    string
	SessionState string
}
