package http

import (
	"context"
	"net/http"

	"prreview-service/internal/domain/models"
	input "prreview-service/internal/domain/ports/input"
	"prreview-service/internal/infrastructure/config"
	authhandler "prreview-service/internal/infrastructure/http/handlers/auth"
	notificationhandler "prreview-service/internal/infrastructure/http/handlers/notification"
	prhandler "prreview-service/internal/infrastructure/http/handlers/pr"
	projecthandler "prreview-service/internal/infrastructure/http/handlers/project"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/utils"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	log    *logger.Logger

	authService         input.AuthInputPort
	projectService      input.ProjectInputPort
	prService           input.PRInputPort
	notificationService input.NotificationInputPort

	// dbReady reports whether the persistence layer answers; surfaced on /health.
	dbReady func(ctx context.Context) error
}

func NewRouter(log *logger.Logger, authSvc input.AuthInputPort, projectSvc input.ProjectInputPort,
	prSvc input.PRInputPort, notificationSvc input.NotificationInputPort, dbReady func(ctx context.Context) error) *Router {
	return &Router{
		router:              chi.NewRouter(),
		log:                 log,
		authService:         authSvc,
		projectService:      projectSvc,
		prService:           prSvc,
		notificationService: notificationSvc,
		dbReady:             dbReady,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))

	r.router.Get("/health", r.health)

	r.router.Mount("/auth", r.setupAuthRoutes())
	r.router.Mount("/projects", r.setupProjectRoutes())
	r.router.Mount("/pull-requests", r.setupPRRoutes())
	r.router.Mount("/notifications", r.setupNotificationRoutes())
}

func (r *Router) setupAuthRoutes() http.Handler {
	h := authhandler.NewAuthHandler(r.authService, r.log)
	sub := chi.NewRouter()
	sub.Post("/register", h.Register)
	sub.Post("/login", h.Login)
	sub.Group(func(protected chi.Router) {
		protected.Use(middlewares.Authenticate(r.authService, r.log))
		protected.Get("/me", h.Me)
	})
	return sub
}

func (r *Router) setupProjectRoutes() http.Handler {
	h := projecthandler.NewProjectHandler(r.projectService, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.ListProjects)
	sub.Post("/seed", h.Seed)
	sub.Get("/{id}", h.GetProject)
	sub.Get("/{id}/files", h.ListProjectFiles)
	return sub
}

func (r *Router) setupPRRoutes() http.Handler {
	h := prhandler.NewPRHandler(r.prService, r.log)
	sub := chi.NewRouter()
	sub.Use(middlewares.Authenticate(r.authService, r.log))
	sub.Get("/", h.ListPRs)
	sub.Get("/reviewers", h.ListReviewers)
	sub.Group(func(dev chi.Router) {
		dev.Use(middlewares.RequireRole(r.log, models.RoleDeveloper))
		dev.Post("/", h.CreatePR)
	})
	sub.Put("/{id}/approve", h.ApprovePR)
	sub.Put("/{id}/reject", h.RejectPR)
	sub.Put("/{id}/start-review", h.StartReview)
	return sub
}

func (r *Router) setupNotificationRoutes() http.Handler {
	h := notificationhandler.NewNotificationHandler(r.notificationService, r.log)
	sub := chi.NewRouter()
	sub.Use(middlewares.Authenticate(r.authService, r.log))
	sub.Get("/", h.ListNotifications)
	sub.Get("/unread-count", h.UnreadCount)
	sub.Put("/read-all", h.MarkAllRead)
	sub.Put("/{id}/read", h.MarkRead)
	return sub
}

type healthResponse struct {
	Status string `json:"status"`
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	if r.dbReady != nil {
		if err := r.dbReady(req.Context()); err != nil {
			r.log.Error("health check: database unreachable", "err", err)
			_ = utils.WriteError(w, http.StatusServiceUnavailable, utils.HTTPCodeConverter(http.StatusServiceUnavailable), "database connection not available")
			return
		}
	}
	_ = utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "OK"}, "")
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
