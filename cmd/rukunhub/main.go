// cmd/rukunhub/main.go
//
// Operator CLI: schema migration and first-community seeding. The API server
// never migrates on boot, so a fresh deployment runs "rukunhub migrate" once
// and "rukunhub seed" to create the initial RW with its leader account.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rukunhub/rukunhub/internal/auth"
	"github.com/rukunhub/rukunhub/internal/config"
	"github.com/rukunhub/rukunhub/internal/model"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	seedRWName         string
	seedLeaderEmail    string
	seedLeaderName     string
	seedLeaderPassword string
)

func init() {
	seedCmd.Flags().StringVar(&seedRWName, "rw-name", "", "Name of the top-level community group")
	seedCmd.Flags().StringVar(&seedLeaderEmail, "leader-email", "", "Email for the leader account")
	seedCmd.Flags().StringVar(&seedLeaderName, "leader-name", "", "Full name for the leader account")
	seedCmd.Flags().StringVar(&seedLeaderPassword, "leader-password", "", "Initial password for the leader account")
	seedCmd.MarkFlagRequired("rw-name")
	seedCmd.MarkFlagRequired("leader-email")
	seedCmd.MarkFlagRequired("leader-name")
	seedCmd.MarkFlagRequired("leader-password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:   "rukunhub",
	Short: "Rukunhub is the operator CLI for the community dues backend",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}

		err = db.AutoMigrate(
			&model.CommunityGroup{},
			&model.User{},
			&model.DuesRule{},
			&model.Contribution{},
			&model.RoleLabelSetting{},
			&model.PaymentTransaction{},
			&model.FundRequest{},
		)
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		// AutoMigrate cannot express a partial index. At most one pending
		// payment transaction may exist per user.
		err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_transactions_one_pending
			ON payment_transactions (user_id) WHERE status = 'pending'`).Error
		if err != nil {
			return fmt.Errorf("creating pending-payment index: %w", err)
		}

		fmt.Println("schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a top-level community group with its leader account",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}

		hasher := auth.NewPasswordHasher()
		hash, err := hasher.Hash(seedLeaderPassword)
		if err != nil {
			return fmt.Errorf("hashing leader password: %w", err)
		}

		return db.Transaction(func(tx *gorm.DB) error {
			group := &model.CommunityGroup{
				Name: seedRWName,
				Type: model.GroupTypeRW,
			}
			if err := tx.Create(group).Error; err != nil {
				return fmt.Errorf("creating community group: %w", err)
			}

			leader := &model.User{
				Email:            seedLeaderEmail,
				PasswordHash:     hash,
				FullName:         seedLeaderName,
				Role:             model.RoleLeader,
				CommunityGroupID: group.ID,
				IsActive:         true,
			}
			if err := tx.Create(leader).Error; err != nil {
				return fmt.Errorf("creating leader account: %w", err)
			}

			fmt.Printf("created group %q (id=%d) with leader %s (id=%d)\n",
				group.Name, group.ID, leader.Email, leader.ID)
			return nil
		})
	},
}

func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()

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

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
