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

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/MohammadDaleen/HomeEase/internal/config"
	"github.com/MohammadDaleen/HomeEase/internal/handler"
	"github.com/MohammadDaleen/HomeEase/internal/middleware"
	"github.com/MohammadDaleen/HomeEase/internal/repository"
	"github.com/MohammadDaleen/HomeEase/internal/service"
	"github.com/MohammadDaleen/HomeEase/pkg/response"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize service and handlers
	paymentService := service.NewPaymentService(paymentRepo, userRepo)
	authenticator := middleware.NewAuthenticator(redisClient, userRepo, cfg)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	pageHandler := handler.NewPageHandler(authenticator, paymentService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(paymentHandler, pageHandler, healthHandler, authenticator)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	paymentHandler *handler.PaymentHandler,
	pageHandler *handler.PageHandler,
	healthHandler *handler.HealthHandler,
	authenticator *middleware.Authenticator,
) *mux.Router {
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	router := mux.NewRouter()
	router.Use(response.CORSMiddleware)
	router.Use(response.LoggingMiddleware)
	router.MethodNotAllowedHandler = notAllowed

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// Page data (handles its own auth redirects)
	router.HandleFunc("/payments", pageHandler.PaymentsPage).Methods("GET")

	// API routes, session + house membership required
	api := router.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = notAllowed
	api.Use(authenticator.RequireSession)
	api.Use(middleware.RequireHouseMember)

	api.HandleFunc("/houses/{houseId}/payments", paymentHandler.ListPayments).Methods("GET")
	api.HandleFunc("/houses/{houseId}/payments", paymentHandler.CreatePayments).Methods("POST")
	api.HandleFunc("/houses/{houseId}/allocations/preview", paymentHandler.PreviewAllocation).Methods("POST")

	return router
}
