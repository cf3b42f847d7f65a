package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type VerifyHandler struct {
	AuthService *service.AuthService
}

// HandleConfirm consumes the token from the emailed link. A spent or unknown
// token both answer 404 so the link reveals nothing once used.
func (h *VerifyHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.PathValue("token")
	if err := h.AuthService.Verify(ctx, token); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apisdk.ErrUserNotFound.WriteError(w)
			return
		}
		writeServiceError(w, log, err)
		return
	}

	log.Info("email verified")
	httpx.WriteJSON(w, http.StatusOK, apisdk.MessageResponse{
		Message: "Verification successful",
	})
}

// HandleResend re-sends the verification mail for a pending account.
func (h *VerifyHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	if err := h.AuthService.ResendVerification(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apisdk.ErrUserNotFound.WriteError(w)
			return
		}
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apisdk.MessageResponse{
		Message: "Verification email sent",
	})
}
