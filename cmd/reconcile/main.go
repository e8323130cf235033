// cmd/reconcile/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/config"
	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/repository"
	"github.com/rukunhub/rukunhub/internal/service"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Command line flags
	var (
		batchSize  = flag.Int("batch-size", 100, "Number of users to process in a batch")
		dryRun     = flag.Bool("dry-run", false, "Print what would be done without making changes")
		timeout    = flag.Duration("timeout", 30*time.Minute, "Maximum time to run reconciliation")
		staleAfter = flag.Duration("stale-after", 24*time.Hour, "Age before a pending payment is polled against the gateway")
	)
	flag.Parse()

	// Initialize logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slogger := slog.New(logHandler)
	slog.SetDefault(slogger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		slogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	ruleRepo := repository.NewDuesRuleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	auditLogger := audit.NewSlogLogger(slogger)
	hierarchyService := service.NewHierarchyService(groupRepo)
	duesService := service.NewDuesService(ruleRepo, groupRepo, hierarchyService, auditLogger)
	gatewayClient := gateway.NewClient(&gateway.Config{
		BaseURL:   cfg.Gateway.BaseURL,
		ServerKey: cfg.Gateway.ServerKey,
		Timeout:   10 * time.Second,
	})
	paymentService := service.NewPaymentService(
		paymentRepo,
		contributionRepo,
		userRepo,
		duesService,
		hierarchyService,
		gatewayClient,
		nil,
		auditLogger,
		nil,
	)

	// Initialize reconciliation service
	reconciliationService := service.NewReconciliationService(
		userRepo,
		contributionRepo,
		slogger,
	)
	reconciliationService.SetBatchSize(*batchSize)
	reconciliationService.SetDryRun(*dryRun)
	reconciliationService.EnablePaymentSweep(paymentRepo, gatewayClient, paymentService)

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := reconciliationService.ReconcileMarkers(ctx)
	if err != nil {
		slogger.Error("reconciliation failed", "error", err,
			"scanned", stats.Scanned, "drifted", stats.Drifted, "repaired", stats.Repaired)
		os.Exit(1)
	}

	slogger.Info("marker reconciliation completed",
		"scanned", stats.Scanned,
		"drifted", stats.Drifted,
		"repaired", stats.Repaired,
		"dry_run", *dryRun,
	)

	sweepStats, err := reconciliationService.ReconcilePayments(ctx, *staleAfter)
	if err != nil {
		slogger.Error("payment sweep failed", "error", err,
			"polled", sweepStats.Polled, "applied", sweepStats.Applied, "failed", sweepStats.Failed)
		os.Exit(1)
	}

	slogger.Info("payment sweep completed",
		"polled", sweepStats.Polled,
		"applied", sweepStats.Applied,
		"failed", sweepStats.Failed,
		"dry_run", *dryRun,
	)
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

	return db, nil
}
