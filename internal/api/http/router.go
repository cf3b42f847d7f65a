// Package http wires the service layer to the network: routing, request
// decoding, authentication middleware and error translation. Handlers stay
// thin; anything with business meaning lives in the service package.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	publicDir    string

	store           store.Store
	AuthService     *service.AuthService
	AvatarService   *service.AvatarService
	ContactsService *service.ContactsService
}

func NewRouter(
	buildVersion, publicDir string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		publicDir:    publicDir,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerContacts()
	r.registerSystem()
	r.registerStatic()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	authed := requireAuth(r.AuthService)

	// Credential endpoints get the strict IP limit to slow brute force and
	// mass signup.
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(logoutHandler,
			authed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	currentHandler := &CurrentHandler{}
	r.Mux.Handle("GET /api/auth/current",
		httpx.Chain(currentHandler,
			authed,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	verifyHandler := &VerifyHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /api/auth/verify/{token}",
		httpx.Chain(http.HandlerFunc(verifyHandler.HandleConfirm),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/verify",
		httpx.Chain(http.HandlerFunc(verifyHandler.HandleResend),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	subscriptionHandler := &SubscriptionHandler{AuthService: r.AuthService}
	r.Mux.Handle("PATCH /api/auth",
		httpx.Chain(subscriptionHandler,
			authed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	avatarHandler := &AvatarHandler{AvatarService: r.AvatarService}
	r.Mux.Handle("PATCH /api/auth/avatars",
		httpx.Chain(avatarHandler,
			authed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerContacts() {
	authed := requireAuth(r.AuthService)
	h := &ContactsHandler{ContactsService: r.ContactsService}

	reads := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			authed,
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	writes := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			authed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/contacts", reads(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/contacts/{id}", reads(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /api/contacts", writes(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/contacts/{id}", writes(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("PATCH /api/contacts/{id}/favorite", writes(http.HandlerFunc(h.HandleFavorite)))
	r.Mux.Handle("DELETE /api/contacts/{id}", writes(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may
	// poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerStatic() {
	// Processed avatars are public by URL; the filenames embed a ULID so they
	// are not guessable.
	r.Mux.Handle("GET /avatars/",
		httpx.Chain(AvatarFileHandler(r.publicDir),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
