package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/pooja-store/internal/modules/auth"
	"github.com/georgemunganga/pooja-store/internal/modules/cart"
	"github.com/georgemunganga/pooja-store/internal/modules/catalog"
	"github.com/georgemunganga/pooja-store/internal/modules/order"
	"github.com/georgemunganga/pooja-store/internal/modules/user"
	"github.com/georgemunganga/pooja-store/internal/platform/config"
	"github.com/georgemunganga/pooja-store/internal/platform/database"
	"github.com/georgemunganga/pooja-store/internal/platform/logger"
	"github.com/georgemunganga/pooja-store/internal/platform/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBSSL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("connected to the database")

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if cfg.RedisURL != "" {
		client, err := ratelimit.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("rate limiting disabled", zap.Error(err))
		} else {
			defer client.Close()
			limiter := ratelimit.New(client, cfg.RateLimit, time.Minute, log.Named("ratelimit"))
			router.Use(limiter.Middleware)
		}
	}

	router.Get("/api/health", health(db))

	// ── Identity ────────────────────────────────────────────
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	userService := user.NewService(user.NewPostgresRepository(db))
	authService := auth.NewService(userService, tokens)
	auth.NewHandler(authService, tokens).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogService := catalog.NewService(catalog.NewPostgresRepository(db), log.Named("catalog"))
	if n, err := catalogService.Seed(ctx); err != nil {
		log.Warn("seeding products failed", zap.Error(err))
	} else if n > 0 {
		log.Info("seeded sample products", zap.Int("count", n))
	}
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart & Orders ───────────────────────────────────────
	cartService := cart.NewService(cart.NewPostgresRepository(db))
	cart.NewHandler(cartService, tokens, log.Named("cart")).RegisterRoutes(router)

	orderService := order.NewService(order.NewPostgresRepository(db))
	order.NewHandler(orderService, tokens, log.Named("order")).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("pooja store API starting", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "ok", "database": "ok"}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			body["database"] = err.Error()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}
}
