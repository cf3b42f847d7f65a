package http

import (
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP ends the session. 204 on success; the presented token is dead
// from this point even though its signature is still valid.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(ctx, user.ID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user logged out", "user_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}
