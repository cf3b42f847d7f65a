package http

import (
	"encoding/json"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles account signup. Responds 201 with the public user
// payload; the session only starts after verification and login.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	sub := domain.Subscription(req.Subscription)
	if req.Subscription != "" && !sub.Valid() {
		apisdk.ErrInvalidSubscription.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Email, req.Password, sub)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, apisdk.RegisterResponse{
		User: apisdk.UserPayload{
			Email:        user.Email,
			Subscription: user.Subscription.String(),
		},
	})
}
