package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jibuCashAPI/handlers"
	"jibuCashAPI/internal/notification"
	"jibuCashAPI/middleware"
	"jibuCashAPI/services"
)

var (
	dbPool              *pgxpool.Pool
	sessionService      *services.SessionService
	catalogService      *services.CatalogService
	attemptManager      *services.AttemptManager
	lifecycleService    *services.LifecycleService
	userService         *services.UserService
	walletService       *services.WalletService
	paymentService      *services.PaymentService
	notificationService *services.NotificationService
	fcmService          *notification.FCMService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to Postgres")

	if err := services.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	notificationService = services.NewNotificationService(dbPool)
	sessionService = services.NewSessionService(dbPool)
	catalogService = services.NewCatalogService(dbPool)
	attemptManager = services.NewAttemptManager()
	lifecycleService = services.NewLifecycleService(catalogService, sessionService, attemptManager, notificationService)
	userService = services.NewUserService(dbPool, sessionService)
	walletService = services.NewWalletService(dbPool, sessionService)
	paymentService = services.NewPaymentService(dbPool, sessionService)

	fcmService, err = notification.NewFCMService("./serviceAccountKey.json")
	if err != nil {
		log.Printf("Warning: Could not initialize FCM: %v", err)
	} else {
		notificationService.SetPushProvider(fcmService)
		log.Println("FCM Push Provider initialized successfully")
	}

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(lifecycleService)
	walletHandler := handlers.NewWalletHandler(walletService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()
	go attemptManager.CleanupStale()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "jibucash-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", userHandler.SignUp).Methods("POST")
	api.HandleFunc("/auth/signin", userHandler.SignIn).Methods("POST")
	api.HandleFunc("/plans", paymentHandler.GetPlans).Methods("GET")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/user", userHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/user/referral", userHandler.GetReferralInfo).Methods("GET")

	protected.HandleFunc("/tasks", taskHandler.GetTaskBoard).Methods("GET")
	protected.HandleFunc("/tasks/{category}/{taskId}/start", taskHandler.StartTask).Methods("POST")
	protected.HandleFunc("/attempts/{attemptId}/begin", taskHandler.BeginQuiz).Methods("POST")
	protected.HandleFunc("/attempts/{attemptId}/answer", taskHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/attempts/{attemptId}/claim", taskHandler.ClaimReward).Methods("POST")

	protected.HandleFunc("/wallet", walletHandler.GetWallet).Methods("GET")
	protected.HandleFunc("/wallet/withdraw", walletHandler.Withdraw).Methods("POST")
	protected.HandleFunc("/wallet/transactions", walletHandler.GetTransactions).Methods("GET")

	protected.HandleFunc("/payments", paymentHandler.GetPayments).Methods("GET")
	protected.HandleFunc("/payments/confirm", paymentHandler.ConfirmPayment).Methods("POST")

	protected.HandleFunc("/notifications/register-device", notificationHandler.RegisterDevice).Methods("POST")

	// CORS configuration
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
