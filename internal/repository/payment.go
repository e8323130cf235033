// internal/repository/payment.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepositoryIface interface {
	Create(ctx context.Context, tx *model.PaymentTransaction) error
	FindByOrderRef(ctx context.Context, orderRef string) (*model.PaymentTransaction, error)
	FindPendingByUser(ctx context.Context, userID uint) (*model.PaymentTransaction, error)
	FindStalePending(ctx context.Context, olderThan time.Time) ([]*model.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, id uint, status model.PaymentStatus) error
	Settle(ctx context.Context, tx *model.PaymentTransaction, contributions []*model.Contribution, paidThrough time.Time) error
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, tx *model.PaymentTransaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("creating payment transaction: %w", translateError(err))
	}
	return nil
}

func (r *PaymentRepository) FindByOrderRef(ctx context.Context, orderRef string) (*model.PaymentTransaction, error) {
	var tx model.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("finding payment by order ref: %w", err)
	}
	return &tx, nil
}

func (r *PaymentRepository) FindPendingByUser(ctx context.Context, userID uint) (*model.PaymentTransaction, error) {
	var tx model.PaymentTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.PaymentStatusPending).
		Order("id").
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("finding pending payment: %w", err)
	}
	return &tx, nil
}

// FindStalePending returns pending transactions created before olderThan, in
// ID order. Used by the reconcile command to poll the gateway for outcomes
// whose notification never arrived.
func (r *PaymentRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]*model.PaymentTransaction, error) {
	var txs []*model.PaymentTransaction
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.PaymentStatusPending, olderThan).
		Order("id").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("finding stale pending payments: %w", err)
	}
	return txs, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, status model.PaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// Settle applies a confirmed payment atomically: the transaction is marked
// settled, one contribution row is written per covered month, and the user's
// paid-through marker advances. The marker update is guarded so it only ever
// moves forward; a late-arriving duplicate notification cannot pull it back.
func (r *PaymentRepository) Settle(ctx context.Context, tx *model.PaymentTransaction, contributions []*model.Contribution, paidThrough time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		now := time.Now().UTC()
		updates := map[string]interface{}{
			"status":     model.PaymentStatusSettled,
			"settled_at": now,
		}
		result := db.Model(&model.PaymentTransaction{}).
			Where("id = ? AND status = ?", tx.ID, model.PaymentStatusPending).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("marking transaction settled: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// already settled by a concurrent notification
			return domain.ErrConflict
		}

		if len(contributions) > 0 {
			if err := db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&contributions).Error; err != nil {
				return fmt.Errorf("recording contributions: %w", err)
			}
		}

		if err := db.Model(&model.User{}).
			Where("id = ? AND (last_paid_period IS NULL OR last_paid_period < ?)", tx.UserID, paidThrough).
			Update("last_paid_period", paidThrough).Error; err != nil {
			return fmt.Errorf("advancing paid-through marker: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("settlement transaction failed: %w", err)
	}

	tx.Status = model.PaymentStatusSettled
	return nil
}
