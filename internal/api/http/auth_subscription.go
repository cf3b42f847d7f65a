package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type SubscriptionHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP changes the authenticated user's plan tier.
func (h *SubscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	var req apisdk.UpdateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	updated, err := h.AuthService.UpdateSubscription(ctx, user.ID, domain.Subscription(req.Subscription))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			apisdk.ErrInvalidSubscription.WriteError(w)
			return
		}
		writeServiceError(w, log, err)
		return
	}

	log.Info("subscription updated", "user_id", user.ID, "subscription", updated.Subscription)
	httpx.WriteJSON(w, http.StatusOK, apisdk.UserResponse{
		Email:        updated.Email,
		Subscription: updated.Subscription.String(),
		AvatarURL:    updated.AvatarURL,
		Verified:     updated.Verified,
	})
}
