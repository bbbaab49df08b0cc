package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
	"github.com/aussiebroadwan/instamedia/internal/auth/service"
	"github.com/aussiebroadwan/instamedia/internal/auth/store"
	"github.com/aussiebroadwan/instamedia/pkg/httpx"
	"github.com/aussiebroadwan/instamedia/pkg/slogx"

	_ "github.com/aussiebroadwan/instamedia/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens       service.TokenCodec
	cookies      CookieBinder
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AccountService    *service.AccountService
	ActivationService *service.ActivationService
	ResetService      *service.ResetService
	SessionService    *service.SessionService
}

// NewRouter builds a router. allowedOrigins are the frontend origins that
// may call the API with credentials; none disables CORS headers entirely.
func NewRouter(
	tokens service.TokenCodec,
	cookies CookieBinder,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins ...string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokens:       tokens,
		cookies:      cookies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if len(allowedOrigins) > 0 {
		r.middlewares = append(r.middlewares, httpx.CORS(allowedOrigins...))
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSession()
	r.registerPassword()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Instamedia Authentication Service API
//	@version		0.1.0
//	@description	Account registration, email activation, password reset and cookie-based sessions for Instamedia.
//	@description
//	@description	Access and refresh tokens are HS256 JWTs carried in HTTP-only cookies (token, refreshToken).
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/instamedia
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:5000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							header
//	@name						Cookie
//	@description				Session cookie. Format: "token={access token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	register := &RegisterHandler{AccountService: r.AccountService}
	activate := &ActivateHandler{ActivationService: r.ActivationService}

	r.Mux.Handle("POST /api/auth/register", register)

	// The bare path reports the missing token instead of a 404.
	r.Mux.Handle("GET /api/auth/activate/{token}", activate)
	r.Mux.Handle("GET /api/auth/activate/{$}", activate)
}

func (r *Router) registerSession() {
	login := &LoginHandler{AccountService: r.AccountService, Cookies: r.cookies}
	refresh := &RefreshHandler{SessionService: r.SessionService, Cookies: r.cookies}
	logout := &LogoutHandler{Cookies: r.cookies}
	me := &MeHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /api/auth/login", login)
	r.Mux.Handle("POST /api/auth/refresh", refresh)
	r.Mux.Handle("POST /api/auth/logout", logout)

	// Authenticated endpoint: access token from the session cookie
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(me, httpx.CookieAuthn(r.tokens, domain.AccessCookieName)),
	)
}

func (r *Router) registerPassword() {
	forgot := &ForgotPasswordHandler{ResetService: r.ResetService}
	reset := &ResetPasswordHandler{ResetService: r.ResetService}

	r.Mux.Handle("POST /api/auth/forgot-password", forgot)
	r.Mux.Handle("POST /api/auth/reset-password/{token}", reset)
	r.Mux.Handle("POST /api/auth/reset-password/{$}", reset)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.tokens))
}
