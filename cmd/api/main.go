package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storefront-backend/config"
	"storefront-backend/internal/delivery/http/middleware"
	v1 "storefront-backend/internal/delivery/http/v1"
	"storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/repository/postgres"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database
	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	// Initialize Repositories
	orderRepo := postgres.NewOrderRepository(pgxPool)
	userRepo := postgres.NewUserRepository(pgxPool)
	productRepo := postgres.NewProductRepository(pgxPool)
	policyRepo := postgres.NewReturnPolicyRepository(pgxPool)
	txManager := postgres.NewTransactionManager(pgxPool)

	// Return policy must exist before the first return request comes in
	if err := policyRepo.Seed(context.Background(), cfg.DefaultReturnDays); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed return policy")
	}

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Order Module
	orderUC := usecase.NewOrderUsecase(orderRepo, userRepo, productRepo, txManager, memCache, cfg.CacheProductTTL)
	returnUC := usecase.NewReturnUsecase(orderRepo, policyRepo)
	orderHandler := v1.NewOrderHandler(orderUC, returnUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC, returnUC)

	// Return Policy
	policyHandler := v1.NewPolicyHandler(returnUC)

	// Config Handler
	configHandler := v1.NewConfigHandler(memCache)

	adminMiddleware := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)

	// Return Policy
	mux.HandleFunc("GET /api/v1/return-policy", policyHandler.GetPolicy)
	mux.Handle("PUT /api/v1/admin/return-policy", adminMiddleware(policyHandler.SetPolicy))

	// Orders (Protected)
	mux.Handle("POST /api/v1/orders", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.CreateOrder)))
	mux.Handle("GET /api/v1/orders", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.GetMyOrders)))
	mux.Handle("POST /api/v1/orders/{id}/return", middleware.AuthMiddleware(http.HandlerFunc(orderHandler.RequestReturn)))

	// Admin Order Management
	mux.Handle("GET /api/v1/admin/orders", adminMiddleware(adminOrderHandler.ListOrders))
	mux.Handle("GET /api/v1/admin/orders/{id}", adminMiddleware(adminOrderHandler.GetOrder))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminMiddleware(adminOrderHandler.UpdateStatus))
	mux.Handle("POST /api/v1/admin/orders/{id}/delivery", adminMiddleware(adminOrderHandler.AssignDelivery))
	mux.Handle("POST /api/v1/admin/orders/{id}/verify-payment", adminMiddleware(adminOrderHandler.VerifyPayment))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/return-status", adminMiddleware(adminOrderHandler.UpdateReturnStatus))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	pgxPool.Close()

	log.Info().Msg("Server exited properly")
}
