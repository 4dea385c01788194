package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	authapp "prreview-service/internal/application/auth"
	notificationapp "prreview-service/internal/application/notification"
	prapp "prreview-service/internal/application/pr"
	projectapp "prreview-service/internal/application/project"
	"prreview-service/internal/infrastructure/config"
	httpserver "prreview-service/internal/infrastructure/http"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/infrastructure/migrator"
	"prreview-service/internal/infrastructure/passwordhasher"
	pg_uow "prreview-service/internal/infrastructure/persistence/postgres/uow"
	"prreview-service/internal/infrastructure/tokenmanager"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName,
	)

	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres pool config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// The service does not take traffic until the database answers and the
	// schema is current.
	if err := pool.Ping(ctx); err != nil {
		log.Error("Database is unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := m.Up(); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	_ = m.Close()

	uow := pg_uow.NewPostgresUOW(pool, log)
	tokens := tokenmanager.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := passwordhasher.NewBcryptHasher(cfg.Auth.BcryptCost)

	authService := authapp.NewService(uow, tokens, hasher, log)
	projectService := projectapp.NewService(uow, log)
	prService := prapp.NewService(uow, log)
	notificationService := notificationapp.NewService(uow, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
	server := httpserver.NewServer(addr, log, authService, projectService, prService, notificationService, pool.Ping)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(cfg); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
