package http

import (
	"encoding/json"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges credentials for a session token.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user logged in", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, apisdk.LoginResponse{
		Token: token,
		User: apisdk.UserPayload{
			Email:        user.Email,
			Subscription: user.Subscription.String(),
		},
	})
}
