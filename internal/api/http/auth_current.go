package http

import (
	"net/http"

	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
)

type CurrentHandler struct{}

// ServeHTTP returns the authenticated user's public profile. The middleware
// already resolved the user, so this is a pure projection.
func (h *CurrentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apisdk.UserPayload{
		Email:        user.Email,
		Subscription: user.Subscription.String(),
	})
}
