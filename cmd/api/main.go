package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecanay/blogfolio-backend/internal/api"
	"github.com/ecanay/blogfolio-backend/internal/api/handlers"
	"github.com/ecanay/blogfolio-backend/internal/auth"
	"github.com/ecanay/blogfolio-backend/internal/config"
	"github.com/ecanay/blogfolio-backend/internal/db"
	"github.com/ecanay/blogfolio-backend/internal/logger"
	"github.com/ecanay/blogfolio-backend/internal/mailer"
	"github.com/ecanay/blogfolio-backend/internal/metrics"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
	"github.com/ecanay/blogfolio-backend/internal/repository/postgres"
	"github.com/ecanay/blogfolio-backend/internal/services"
	"github.com/ecanay/blogfolio-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.SessionTTLHrs)*time.Hour)
	cookies := auth.Cookies{Name: cfg.CookieName, Prod: cfg.IsProd(), TTL: tm.TTL()}

	userSvc := services.NewUserService(repos.Users, cfg)
	blogSvc := services.NewBlogService(repos.Blogs, repos.AuditLogs, wp)
	contactSvc := services.NewContactService(mailer.New(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo))

	r := api.NewRouter(api.RouterDeps{
		Cfg:     cfg,
		Gate:    middleware.NewAuthGate(tm, repos.Users, cfg.CookieName),
		Auth:    handlers.NewAuthHandler(userSvc, tm, cookies),
		Blogs:   handlers.NewBlogHandler(blogSvc),
		Admin:   handlers.NewAdminHandler(blogSvc),
		Profile: handlers.NewProfileHandler(userSvc),
		Contact: handlers.NewContactHandler(contactSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
