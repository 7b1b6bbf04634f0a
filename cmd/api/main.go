// Package main is the entry point for the Help Board API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/helpboard/backend/internal/chat"
	"github.com/helpboard/backend/internal/config"
	"github.com/helpboard/backend/internal/handler"
	"github.com/helpboard/backend/internal/handler/gen"
	"github.com/helpboard/backend/internal/middleware"
	"github.com/helpboard/backend/internal/repo"
	"github.com/helpboard/backend/internal/scheduler"
	"github.com/helpboard/backend/internal/service"
	"github.com/helpboard/backend/internal/web"
	"github.com/helpboard/backend/migrations"
)

// rateLimitIdle is how long a client's bucket survives without writes.
const rateLimitIdle = 10 * time.Minute

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Storage ----------------------------------------------------------
	requests, tags, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("store ready", "backend", cfg.StoreBackend)

	// --- Chat relay -------------------------------------------------------
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	slog.Info("redis connection established", "addr", cfg.RedisAddr)

	// --- Services ---------------------------------------------------------
	requestSvc := service.NewRequestService(requests)
	tagSvc := service.NewTagService(tags)
	chatSvc := service.NewChatService(chat.NewRelay(rdb, cfg.ChatHistoryLimit))
	exportSvc := service.NewExportService(requests)

	api := handler.NewServer(requestSvc, tagSvc, chatSvc, exportSvc)
	pages, err := web.NewHandler(requestSvc)
	if err != nil {
		slog.Error("failed to parse page templates", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS →
	// body limit → rate limit. RealIP must run before the rate limiter so
	// buckets are keyed by the real client address.
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, rateLimitIdle)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(limiter.Handler)

	// The SSE stream and the HTML pages sit beside the generated routes.
	r.Get("/chat/rooms/{room}/stream", api.StreamChat)
	r.Get("/openapi.yaml", handler.OpenAPI)
	pages.Routes(r)

	gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(api, nil, handler.StrictOptions()),
		gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: handler.ParamErrorHandler},
	)

	// --- Housekeeping -----------------------------------------------------
	sched := scheduler.New(logger)
	if err := sched.Add("rate-limit-sweep", "0 * * * * *", func() {
		if n := limiter.Sweep(); n > 0 {
			slog.Info("rate limiter swept idle clients", "removed", n, "remaining", limiter.Len())
		}
	}); err != nil {
		slog.Error("failed to schedule job", "error", err)
		os.Exit(1)
	}
	sched.Start()

	// --- HTTP Server ------------------------------------------------------
	srv := handler.NewHTTPServer(":"+cfg.Port, r)

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := sched.Stop(shutdownCtx); err != nil {
		slog.Warn("scheduler did not stop cleanly", "error", err)
	}
	// Open chat streams end as soon as Shutdown starts (see
	// handler.NewHTTPServer). A failed shutdown is logged, not fatal, so the
	// deferred store and Redis closes still run.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return
	}
	slog.Info("server stopped")
}

// openStore builds the request and tag repositories for the configured
// backend. The returned func releases the backend's connections.
func openStore(ctx context.Context, cfg config.Config) (repo.RequestRepo, repo.TagRepo, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		client, err := repo.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() { closeQuietly("firestore", client) }
		return repo.NewFirestoreRequestRepo(client), repo.NewFirestoreTagRepo(client), closeFn, nil

	default:
		if err := migrate(ctx, cfg.DatabaseURL); err != nil {
			return nil, nil, nil, err
		}
		// New() does not open connections immediately; Ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		return repo.NewRequestRepo(pool), repo.NewTagRepo(pool), pool.Close, nil
	}
}

// migrate applies any pending embedded migrations. goose needs a
// database/sql handle, so it gets its own short-lived connection.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}

func closeQuietly(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("close failed", "resource", name, "error", err)
	}
}
