package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/breno-augst/family-relationship-api/config"
	"github.com/breno-augst/family-relationship-api/database"
	"github.com/breno-augst/family-relationship-api/handlers"
	"github.com/breno-augst/family-relationship-api/logger"
	"github.com/breno-augst/family-relationship-api/ratelimit"
	"github.com/breno-augst/family-relationship-api/repository"
	"github.com/breno-augst/family-relationship-api/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	lg := logger.New(logger.Config{Level: cfg.LogLevel, Output: os.Stdout, Pretty: cfg.LogPretty})

	db, err := database.InitGormDB(database.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DBLogLevel,
		Logger:   lg,
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			lg.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.AutoMigrateModels(db); err != nil {
		lg.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parentRepo := repository.NewGormParentRepository(db)
	childRepo := repository.NewGormChildRepository(db)

	parentHandler := handlers.NewParentHandler(services.NewParentService(parentRepo))
	childHandler := handlers.NewChildHandler(services.NewChildService(childRepo, parentRepo))
	healthHandler := &handlers.HealthHandler{DB: db}

	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(lg))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.RemoteAddrHandler("ip"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsHandler.Handler)

	if cfg.RateLimitRPS > 0 {
		store := ratelimit.NewStore(cfg.RateLimitRPS, cfg.RateLimitBurst)
		store.StartJanitor(ctx)
		r.Use(ratelimit.Middleware(ratelimit.Options{
			Store: store,
			OnReject: func(r *http.Request, key string) {
				hlog.FromRequest(r).Warn().Str("client", key).Msg("rate limit exceeded")
			},
		}))
		lg.Info().Float64("rps", store.RPS()).Int("burst", store.Burst()).Msg("rate limiting enabled")
	}

	handlers.RegisterRoutes(r, parentHandler, childHandler, healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		lg.Info().Str("addr", server.Addr).Str("driver", cfg.DBDriver).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	shutdown(lg, server)
}

func shutdown(lg zerolog.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	lg.Info().Msg("shutting down server")
	if err := server.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
