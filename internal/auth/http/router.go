package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/internal/auth/store"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/jwtx"
	"github.com/lookbook-app/lookbook/pkg/slogx"

	_ "github.com/lookbook-app/lookbook/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	cookies      CookieConfig
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	SessionService *service.SessionService
	UserService    *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	cookies CookieConfig,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lookbook Authentication API
//	@version		0.1.0
//	@description	Session management for the Lookbook wardrobe app: credential login and registration, short-lived JWT access tokens, and rotating refresh tokens delivered as httpOnly cookies.
//
//	@contact.name	Lookbook Team
//	@contact.url	https://github.com/lookbook-app/lookbook
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/login", &LoginHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	})
	r.Mux.Handle("POST /api/register", &RegisterHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	})
	r.Mux.Handle("GET /api/refresh", &RefreshHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	})
	r.Mux.Handle("GET /api/logout", &LogoutHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	})
}

func (r *Router) registerUsers() {
	h := &ProfileHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
	)

	r.Mux.Handle("GET /api/users/{userId}", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
