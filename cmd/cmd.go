package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/config"
	"skillswap-backend/internal/handlers"
	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/store"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Initialize store
	memStore := store.NewMemStore()
	if cfg.Seed {
		if err := store.Seed(context.Background(), memStore); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed store")
		}
		log.Info().Msg("Store seeded with demo data")
	}

	// Initialize facade
	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL())
	if cfg.Auth.Secret == "" {
		log.Warn().Msg("No token secret configured; issuing unsigned demo tokens")
	}

	opts := []api.Option{api.WithLatency(cfg.API.Latency())}
	if cfg.Auth.AdminEmail != "" {
		opts = append(opts, api.WithAdminEmail(cfg.Auth.AdminEmail))
	}
	facade := api.New(memStore, issuer, opts...)
	hub := api.NewHub()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(facade.Auth)
	userHandler := handlers.NewUserHandler(facade.Users)
	skillHandler := handlers.NewSkillHandler(facade.Skills)
	swapHandler := handlers.NewSwapHandler(facade.Swaps, hub)
	messageHandler := handlers.NewMessageHandler(facade.Messages, facade.Swaps, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, facade.Auth, facade.Swaps, facade.Messages)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)
		r.Get("/users", userHandler.Search)
		r.Get("/users/{user_id}", userHandler.GetProfile)
		r.Get("/users/{user_id}/skills", skillHandler.GetByUser)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(facade.Auth))
			r.Get("/auth/session", authHandler.Session)
			r.Patch("/users/{user_id}", userHandler.UpdateProfile)
			r.Post("/skills", skillHandler.Create)
			r.Delete("/skills/{skill_id}", skillHandler.Delete)
			r.Get("/swaps", swapHandler.GetByUser)
			r.Post("/swaps", swapHandler.Create)
			r.Patch("/swaps/{swap_id}/status", swapHandler.UpdateStatus)
			r.Delete("/swaps/{swap_id}", swapHandler.Delete)
			r.Get("/swaps/{swap_id}/messages", messageHandler.GetBySwap)
			r.Post("/swaps/{swap_id}/messages", messageHandler.Send)
		})
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server; open WebSocket connections drop with it
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
