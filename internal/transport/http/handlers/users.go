package handlers

import (
	"net/http"
	"time"

	"github.com/FiveDevOrg/UserManagement/internal/models"
	"github.com/FiveDevOrg/UserManagement/internal/service"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/httperr"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/middleware"
)

// maxAvatarForm — лимит multipart-формы загрузки аватара в памяти.
const maxAvatarForm = 32 << 20

// DTO HTTP-слоя. JSON-имена — исторический контракт фронта маркетплейса.
type addressPayload struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type registerRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Phone     string          `json:"phone"`
	Address   *addressPayload `json:"address,omitempty"`
}

type updateUserRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Address   *addressPayload `json:"address,omitempty"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type userResponse struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Address        *addressPayload `json:"address,omitempty"`
	AvatarURL      string          `json:"avatarUrl,omitempty"`
	AvailableCoins *int64          `json:"availableCoins,omitempty"`
	LastSeen       *time.Time      `json:"lastSeen,omitempty"`
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

func userResponseFrom(user *models.User) userResponse {
	resp := userResponse{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email(),
		Phone:          user.Phone(),
		AvatarURL:      user.AvatarURL,
		AvailableCoins: user.Coins,
	}

	if addr := user.Address(); addr != nil {
		resp.Address = &addressPayload{City: addr.City, Country: addr.Country}
	}

	if !user.LastSeen.IsZero() {
		ls := user.LastSeen
		resp.LastSeen = &ls
	}

	return resp
}

func registerInputFrom(in registerRequest) service.RegisterUserInput {
	input := service.RegisterUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
	}

	if in.Address != nil {
		input.Address = &service.AddressInput{City: in.Address.City, Country: in.Address.Country}
	}

	return input
}

// Register — POST /user: регистрация с последующей верификацией email.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), registerInputFrom(in), false)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponseFrom(user))
}

// RegisterGoogle — POST /user/google: регистрация через внешний OAuth,
// email считается преверифицированным, письмо не отправляется.
func (h *Handlers) RegisterGoogle(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), registerInputFrom(in), true)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponseFrom(user))
}

// CurrentUser — GET /user: профиль аутентифицированного пользователя.
func (h *Handlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	user, err := h.service.UserByAccount(r.Context(), accountID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponseFrom(user))
}

// UpdateUser — PUT /user: правка профиля (имена, телефон, адрес).
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	var in updateUserRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	input := service.UpdateUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
	}
	if in.Address != nil {
		input.Address = &service.AddressInput{City: in.Address.City, Country: in.Address.Country}
	}

	user, err := h.service.UpdateUser(r.Context(), accountID, input)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponseFrom(user))
}

// DeleteUser — DELETE /user: удаление с guard-проверками аукционов и ставок.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	if err := h.service.DeleteUser(r.Context(), accountID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckEmail — GET /user/email/check?email=: есть ли профиль с таким login name.
func (h *Handlers) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	exists, err := h.service.CheckUserExists(r.Context(), email)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, existsResponse{Exists: exists})
}

// ChangePassword — PUT /user/password: смена пароля после реаутентификации.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	var in changePasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.service.ChangePassword(r.Context(), accountID, in.OldPassword, in.NewPassword); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadAvatar — POST /user/avatar: multipart-загрузка аватара (поле "avatar").
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarForm); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}
	defer file.Close()

	user, err := h.service.UpdateAvatar(r.Context(), accountID, file, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponseFrom(user))
}
