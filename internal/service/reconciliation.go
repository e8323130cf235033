// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/period"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// StatusChecker is the slice of the gateway client the pending-payment sweep
// needs.
type StatusChecker interface {
	Status(ctx context.Context, orderRef string) (*gateway.StatusResponse, error)
}

// ReconciliationService repairs drift between the itemized contribution rows
// and each user's paid-through marker. Drift happens when a settlement was
// interrupted after writing contributions but before advancing the marker.
// Repair only ever moves the marker forward; it never rewrites contribution
// rows and never moves a marker back.
//
// With EnablePaymentSweep it additionally polls the gateway for pending
// transactions whose asynchronous notification never arrived.
type ReconciliationService struct {
	users         repository.UserRepositoryIface
	contributions repository.ContributionRepositoryIface
	payments      repository.PaymentRepositoryIface
	gatewayStatus StatusChecker
	paymentSvc    *PaymentService
	batchSize     int
	dryRun        bool
	logger        *slog.Logger
	now           func() time.Time
}

func NewReconciliationService(
	users repository.UserRepositoryIface,
	contributions repository.ContributionRepositoryIface,
	logger *slog.Logger,
) *ReconciliationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconciliationService{
		users:         users,
		contributions: contributions,
		batchSize:     100,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *ReconciliationService) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

func (s *ReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// EnablePaymentSweep wires the dependencies ReconcilePayments needs.
func (s *ReconciliationService) EnablePaymentSweep(
	payments repository.PaymentRepositoryIface,
	gatewayStatus StatusChecker,
	paymentSvc *PaymentService,
) {
	s.payments = payments
	s.gatewayStatus = gatewayStatus
	s.paymentSvc = paymentSvc
}

// ReconcileStats summarizes one reconciliation run.
type ReconcileStats struct {
	Scanned  int
	Drifted  int
	Repaired int
}

// ReconcileMarkers walks every user in ID order and advances stale
// paid-through markers over the contiguous run of itemized months that
// follows them.
func (s *ReconciliationService) ReconcileMarkers(ctx context.Context) (*ReconcileStats, error) {
	stats := &ReconcileStats{}
	var afterID uint

	for {
		batch, err := s.users.FindBatch(ctx, afterID, s.batchSize)
		if err != nil {
			return stats, fmt.Errorf("loading user batch after id %d: %w", afterID, err)
		}
		if len(batch) == 0 {
			return stats, nil
		}

		for _, user := range batch {
			afterID = user.ID
			stats.Scanned++

			repaired, err := s.reconcileUser(ctx, user)
			if err != nil {
				return stats, fmt.Errorf("reconciling user %d: %w", user.ID, err)
			}
			if repaired {
				stats.Drifted++
				if !s.dryRun {
					stats.Repaired++
				}
			}

			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			default:
			}
		}
	}
}

// PaymentSweepStats summarizes one pending-payment sweep.
type PaymentSweepStats struct {
	Polled  int
	Applied int
	Failed  int
}

// ReconcilePayments polls the gateway for every pending transaction older
// than staleAfter and applies whatever final status the gateway reports,
// through the same path a webhook notification would take. A transaction the
// gateway still reports as in flight is left alone. Poll failures are logged
// and counted but do not stop the sweep.
func (s *ReconciliationService) ReconcilePayments(ctx context.Context, staleAfter time.Duration) (*PaymentSweepStats, error) {
	stats := &PaymentSweepStats{}
	if s.payments == nil || s.gatewayStatus == nil || s.paymentSvc == nil {
		return stats, fmt.Errorf("payment sweep is not enabled")
	}
	cutoff := s.now().Add(-staleAfter)

	stale, err := s.payments.FindStalePending(ctx, cutoff)
	if err != nil {
		return stats, fmt.Errorf("loading stale pending payments: %w", err)
	}

	for _, tx := range stale {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		stats.Polled++

		resp, err := s.gatewayStatus.Status(ctx, tx.OrderRef)
		if err != nil {
			stats.Failed++
			s.logger.Error("gateway status poll failed",
				"order_ref", tx.OrderRef, "error", err)
			continue
		}

		n := gateway.Notification{
			OrderRef:          tx.OrderRef,
			TransactionStatus: resp.TransactionStatus,
			FraudStatus:       resp.FraudStatus,
			SettlementTime:    resp.SettlementTime,
		}
		if !n.Settled() && !n.Expired() && !n.Canceled() {
			continue
		}

		s.logger.Info("stale payment resolved by gateway poll",
			"order_ref", tx.OrderRef,
			"transaction_status", resp.TransactionStatus,
			"dry_run", s.dryRun,
		)
		if s.dryRun {
			continue
		}

		if err := s.paymentSvc.HandleNotification(ctx, n); err != nil {
			stats.Failed++
			s.logger.Error("applying polled payment status",
				"order_ref", tx.OrderRef, "error", err)
			continue
		}
		stats.Applied++
	}

	return stats, nil
}

// reconcileUser reports whether the user's marker was behind the itemized
// rows, and repairs it unless dry-run is set.
func (s *ReconciliationService) reconcileUser(ctx context.Context, user *model.User) (bool, error) {
	rows, err := s.contributions.FindByUser(ctx, user.ID)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	itemized := make(map[period.Period]bool, len(rows))
	for _, row := range rows {
		itemized[period.Period{Year: row.Year, Month: row.Month}] = true
	}

	// The marker can only extend over months contiguous with what it already
	// covers. A gap in the itemized rows stops the walk even if later months
	// are paid.
	cursor := period.FromTime(user.CreatedAt)
	if user.LastPaidPeriod != nil {
		cursor = period.FromTime(*user.LastPaidPeriod)
	}

	advanced := cursor
	for itemized[advanced.AddMonths(1)] {
		advanced = advanced.AddMonths(1)
	}
	if advanced == cursor {
		return false, nil
	}

	s.logger.Info("marker drift detected",
		"user_id", user.ID,
		"marker", cursor.String(),
		"covered_through", advanced.String(),
		"dry_run", s.dryRun,
	)

	if s.dryRun {
		return true, nil
	}

	markerTime := advanced.Time()
	user.LastPaidPeriod = &markerTime
	if err := s.users.Update(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
