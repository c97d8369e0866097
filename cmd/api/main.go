package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nvoronova/bookshelf-backend/internal/api"
	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/config"
	"github.com/nvoronova/bookshelf-backend/internal/db"
	"github.com/nvoronova/bookshelf-backend/internal/logger"
	"github.com/nvoronova/bookshelf-backend/internal/metrics"
	"github.com/nvoronova/bookshelf-backend/internal/repository/postgres"
	"github.com/nvoronova/bookshelf-backend/internal/services"
	"github.com/nvoronova/bookshelf-backend/internal/worker"
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
	wp := worker.NewPool(4)
	defer wp.Stop()

	hasher := auth.DefaultPasswordHash()
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	userSvc := services.NewUserService(repos.Users, repos.Roles, hasher)
	bookSvc := services.NewBookService(repos.Books)
	reviewSvc := services.NewReviewService(repos.Reviews, repos.Books)
	itemSvc := services.NewItemService(repos.Items, repos.Users)
	jobSvc := services.NewJobService(repos.Jobs, wp, cfg.JobTargetURLs, cfg.JobTimeout)

	if os.Getenv("APP_BOOTSTRAP") == "true" {
		if err := services.BootstrapRolesAndAdmin(ctx, repos.Users, repos.Roles, hasher, cfg.FirstAdminUsername, cfg.FirstAdminPassword); err != nil {
			log.Error("bootstrap", "err", err)
			os.Exit(1)
		}
	}

	r := api.NewRouter(api.RouterDeps{
		Cfg:       cfg,
		TM:        tm,
		UserSvc:   userSvc,
		BookSvc:   bookSvc,
		ReviewSvc: reviewSvc,
		ItemSvc:   itemSvc,
		JobSvc:    jobSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
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
