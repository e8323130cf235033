// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/auth"
	"github.com/rukunhub/rukunhub/internal/config"
	"github.com/rukunhub/rukunhub/internal/email"
	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/handler"
	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/repository"
	"github.com/rukunhub/rukunhub/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	duesRuleRepo := repository.NewDuesRuleRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	roleLabelRepo := repository.NewRoleLabelRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	fundRequestRepo := repository.NewFundRequestRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: 1 * time.Minute,
	})
	defer cacheService.Close()

	auditLogger := audit.NewSlogLogger(log)

	// Initialize gateway client
	gatewayClient := gateway.NewClient(&gateway.Config{
		BaseURL:   cfg.Gateway.BaseURL,
		ServerKey: cfg.Gateway.ServerKey,
		Timeout:   10 * time.Second,
	})

	// Initialize domain services
	hierarchyService := service.NewHierarchyService(groupRepo)
	duesService := service.NewDuesService(duesRuleRepo, groupRepo, hierarchyService, auditLogger)
	accrualService := service.NewAccrualService(userRepo, contributionRepo, duesService, hierarchyService, nil)
	roleLabelService := service.NewRoleLabelService(roleLabelRepo, hierarchyService, cacheService, auditLogger)
	groupService := service.NewGroupService(groupRepo, hierarchyService, auditLogger)
	fundRequestService := service.NewFundRequestService(fundRequestRepo, hierarchyService, auditLogger)
	paymentService := service.NewPaymentService(
		paymentRepo,
		contributionRepo,
		userRepo,
		duesService,
		hierarchyService,
		gatewayClient,
		emailService,
		auditLogger,
		nil,
	)
	userService := service.NewUserService(
		userRepo,
		groupRepo,
		hierarchyService,
		passwordHasher,
		tokenManager,
		emailService,
		auditLogger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	duesHandler := handler.NewDuesHandler(duesService, accrualService)
	roleLabelHandler := handler.NewRoleLabelHandler(roleLabelService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	fundRequestHandler := handler.NewFundRequestHandler(fundRequestService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(middleware.Metrics)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/login", authHandler.LoginHandler)

			// Gateway webhook; authenticated by order ref lookup, not JWT
			r.Post("/payments/notification", paymentHandler.Notification)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager, userRepo))

			r.Get("/auth/me", authHandler.MeHandler)

			r.Route("/users", func(r chi.Router) {
				r.Post("/", userHandler.Register)
				r.Get("/{userID}", userHandler.Get)
				r.Put("/{userID}", userHandler.Update)
				r.Delete("/{userID}", userHandler.Deactivate)
				r.Get("/{userID}/contributions", duesHandler.YearStatus)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", groupHandler.Create)
				r.Get("/", groupHandler.List)
				r.Get("/{groupID}", groupHandler.Get)
				r.Delete("/{groupID}", groupHandler.Delete)
				r.Get("/{groupID}/members", userHandler.ListGroupMembers)
				r.Get("/{groupID}/dues", duesHandler.GetEffective)
				r.Put("/{groupID}/dues", duesHandler.SetConfig)
			})

			r.Route("/role-labels", func(r chi.Router) {
				r.Get("/", roleLabelHandler.GetMap)
				r.Put("/{roleType}", roleLabelHandler.Upsert)
				r.Delete("/{roleType}", roleLabelHandler.Delete)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/quote", paymentHandler.Quote)
				r.Post("/", paymentHandler.Create)
				r.Get("/{orderRef}", paymentHandler.Get)
			})

			r.Route("/fund-requests", func(r chi.Router) {
				r.Post("/", fundRequestHandler.Create)
				r.Get("/", fundRequestHandler.List)
				r.Post("/{requestID}/decision", fundRequestHandler.Decide)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
