package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// userFromContext returns the user resolved by requireAuth. The bool is
// false only if the handler was registered without the middleware, which is
// a wiring bug.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

// requireAuth authenticates the Bearer token against both its signature and
// the session stored on the user row, then stashes the resolved user in the
// request context. Failures all read as the same 401 so a probing client
// learns nothing about which check failed.
func requireAuth(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			token, ok := bearerToken(r)
			if !ok {
				apisdk.ErrNotAuthorized.WriteError(w)
				return
			}

			user, err := auth.ResolveIdentity(r.Context(), token)
			if err != nil {
				log.Debug("authentication rejected", "err", err)
				apisdk.ErrNotAuthorized.WriteError(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			ctx = httpx.ContextWithUserID(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
