package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/service"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/httpx"
	"github.com/prepdeck/prepdeck/pkg/jwtx"
	"github.com/prepdeck/prepdeck/pkg/slogx"

	_ "github.com/prepdeck/prepdeck/api/catalog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	UserService     *service.UserService
	RecoveryService *service.RecoveryService
	BookmarkService *service.BookmarkService
	CourseService   *service.CourseService
	SyllabusService *service.SyllabusService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerUsers()
	r.registerRecovery()
	r.registerBookmarks()
	r.registerCourses()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PrepDeck Catalog Service API
//	@version		0.1.0
//	@description	REST backend for an exam-preparation course catalog: course listing and
//	@description	search by branch, user accounts with JWT sessions, course bookmarks, and a
//	@description	phone/OTP password reset flow.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// POST /users/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /users/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRecovery() {
	h := &RecoveryHandler{RecoveryService: r.RecoveryService}

	// The whole reset flow is rate limited strictly by IP: request-otp to
	// stop SMS flooding, verify-otp and reset-password to stop brute force
	// of the six-digit code space.
	r.Mux.Handle("POST /users/request-otp",
		httpx.Chain(http.HandlerFunc(h.HandleRequestOTP),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /users/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOTP),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /users/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBookmarks() {
	h := &BookmarksHandler{BookmarkService: r.BookmarkService}

	// Authenticated endpoints - moderate rate limit by user
	securedAdd := httpx.Chain(http.HandlerFunc(h.HandleAdd),
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedRemove := httpx.Chain(http.HandlerFunc(h.HandleRemove),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /users/bookmarks/{courseId}", securedAdd)
	r.Mux.Handle("DELETE /users/bookmarks/{courseId}", securedRemove)
	r.Mux.Handle("GET /users/bookmarks", securedList)
}

func (r *Router) registerCourses() {
	h := &CoursesHandler{
		CourseService:   r.CourseService,
		SyllabusService: r.SyllabusService,
	}

	// Public catalog reads - lenient rate limit by IP
	r.Mux.Handle("GET /courses",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /courses/search",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /courses/{courseId}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	// Catalog writes - moderate rate limit by IP
	r.Mux.Handle("POST /courses",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /courses/{courseId}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /courses/{courseId}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	// Syllabus routes need object storage behind them; without a wired
	// service they stay off the mux and answer 404.
	if r.SyllabusService != nil {
		r.Mux.Handle("GET /courses/{courseId}/syllabus",
			httpx.Chain(http.HandlerFunc(h.HandleSyllabusDownload),
				httpx.RateLimitByIP(httpx.ModerateLimit),
			),
		)
		r.Mux.Handle("POST /courses/{courseId}/syllabus",
			httpx.Chain(http.HandlerFunc(h.HandleSyllabusUpload),
				httpx.RateLimitByIP(httpx.ModerateLimit),
			),
		)
	}
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
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
