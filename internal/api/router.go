package api

import (
	"net/http"
	"time"

	"preptrack/internal/api/handler"
	"preptrack/internal/app/service"
	"preptrack/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	questionService *service.QuestionService,
	dashboardService *service.DashboardService,
	dailyProblemService *service.DailyProblemService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the token when present and puts claims in context; the
	// Authenticator middleware on protected routes enforces it.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Question routes (authenticated, owner-scoped)
		questionHandler := handler.NewQuestionHandler(questionService, dashboardService)
		v1.Route("/questions", questionHandler.RegisterRoutes)

		// Daily problem routes (public)
		problemHandler := handler.NewProblemHandler(dailyProblemService)
		v1.Route("/problems", problemHandler.RegisterRoutes)
	})

	return r
}
