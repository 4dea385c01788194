package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	input "prreview-service/internal/domain/ports/input"
	"prreview-service/internal/infrastructure/config"
	"prreview-service/internal/infrastructure/logger"
)

type Server struct {
	address string
	log     *logger.Logger
	router  *Router
	server  *http.Server

	authService         input.AuthInputPort
	projectService      input.ProjectInputPort
	prService           input.PRInputPort
	notificationService input.NotificationInputPort
	dbReady             func(ctx context.Context) error
}

func NewServer(address string, log *logger.Logger, authSvc input.AuthInputPort, projectSvc input.ProjectInputPort,
	prSvc input.PRInputPort, notificationSvc input.NotificationInputPort, dbReady func(ctx context.Context) error) *Server {
	return &Server{
		address:             address,
		log:                 log,
		authService:         authSvc,
		projectService:      projectSvc,
		prService:           prSvc,
		notificationService: notificationSvc,
		dbReady:             dbReady,
	}
}

func (s *Server) Run(cfg *config.Config) error {
	s.router = NewRouter(s.log, s.authService, s.projectService, s.prService, s.notificationService, s.dbReady)
	s.router.Setup(cfg)

	s.server = &http.Server{
		Addr:         s.address,
		Handler:      s.router.GetRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("Starting server", slog.String("address", s.address))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
