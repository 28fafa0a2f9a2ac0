package handlers

import (
	"net/http"

	"github.com/FiveDevOrg/UserManagement/internal/service"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/httperr"
	"github.com/FiveDevOrg/UserManagement/internal/transport/http/middleware"
)

type paymentIntentRequest struct {
	PaymentSecret string `json:"paymentSecret"`
}

type paymentConfirmRequest struct {
	PaymentSecret string `json:"paymentSecret"`
	Coins         int64  `json:"coins"`
}

// PaymentIntent — POST /user/payment/intent: фиксация намерения платежа.
func (h *Handlers) PaymentIntent(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	var in paymentIntentRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.service.RegisterPaymentIntent(r.Context(), accountID, in.PaymentSecret); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// PaymentConfirm — POST /user/payment/confirm: подтверждение платежа
// и начисление коинов. Возвращает профиль с новым балансом.
func (h *Handlers) PaymentConfirm(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		httperr.WriteUnauthorized(w, r)
		return
	}

	var in paymentConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.service.ConfirmPayment(r.Context(), accountID, in.PaymentSecret, in.Coins)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponseFrom(user))
}
