// internal/service/payment.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/email"
	"github.com/rukunhub/rukunhub/internal/email/mailer"
	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/period"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// Charger is the slice of the gateway client the payment service needs.
type Charger interface {
	Charge(ctx context.Context, req *gateway.ChargeRequest) (*gateway.ChargeResponse, error)
}

// PaymentService builds multi-month payment requests, creates pending
// transactions against the gateway, and applies asynchronous settlement.
type PaymentService struct {
	payments      repository.PaymentRepositoryIface
	contributions repository.ContributionRepositoryIface
	users         repository.UserRepositoryIface
	dues          *DuesService
	hierarchy     *HierarchyService
	charger       Charger
	emailService  *email.Service
	audit         audit.Logger
	now           func() time.Time
}

func NewPaymentService(
	payments repository.PaymentRepositoryIface,
	contributions repository.ContributionRepositoryIface,
	users repository.UserRepositoryIface,
	dues *DuesService,
	hierarchy *HierarchyService,
	charger Charger,
	emailService *email.Service,
	auditLogger audit.Logger,
	now func() time.Time,
) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{
		payments:      payments,
		contributions: contributions,
		users:         users,
		dues:          dues,
		hierarchy:     hierarchy,
		charger:       charger,
		emailService:  emailService,
		audit:         auditLogger,
		now:           now,
	}
}

// PaymentQuote is the computed outcome of a "pay N months" request. Pending
// is true when an in-flight transaction already exists and its parameters
// were returned instead of newly computed ones.
type PaymentQuote struct {
	Amount       int64         `json:"amount"`
	Months       int           `json:"months"`
	Baseline     period.Period `json:"baseline_period"`
	TargetPeriod period.Period `json:"target_paid_through_period"`
	Pending      bool          `json:"pending"`
	OrderRef     string        `json:"order_ref,omitempty"`
}

// BuildRequest computes the payable amount and target paid-through period
// for paying months of dues, without side effects.
//
// Residents quote for themselves; anyone else must belong to the same tree
// as the target user. If the user already has a pending transaction its
// parameters are returned unchanged and the months argument is ignored: a
// new request must not create a duplicate in-flight obligation. Otherwise
// the baseline is the user's paid-through marker, falling back to the join
// period, and the target is that baseline advanced by months.
func (s *PaymentService) BuildRequest(ctx context.Context, actor *model.User, userID uint, months int) (*PaymentQuote, error) {
	if months < 1 || months > 12 {
		return nil, domain.ErrInvalidMonths
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if actor.ID != userID {
		if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, user.CommunityGroupID); err != nil {
			if errors.Is(err, domain.ErrWrongTenant) {
				return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
			}
			return nil, err
		}
	}

	pending, err := s.payments.FindPendingByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, err
	}
	if pending != nil {
		return &PaymentQuote{
			Amount:       pending.Amount,
			Months:       pending.Months,
			Baseline:     period.FromTime(pending.BaselinePeriod),
			TargetPeriod: period.FromTime(pending.TargetPeriod),
			Pending:      true,
			OrderRef:     pending.OrderRef,
		}, nil
	}

	rule, err := s.dues.Effective(ctx, user.CommunityGroupID)
	if err != nil {
		if errors.Is(err, domain.ErrDuesNotConfigured) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return nil, err
	}

	baseline := period.FromTime(user.CreatedAt)
	if user.LastPaidPeriod != nil {
		baseline = period.FromTime(*user.LastPaidPeriod)
	}

	return &PaymentQuote{
		Amount:       int64(months) * rule.Amount,
		Months:       months,
		Baseline:     baseline,
		TargetPeriod: baseline.AddMonths(months),
		Pending:      false,
	}, nil
}

// Create persists a pending transaction for the quote and initiates the
// gateway charge. When a pending transaction already exists it is returned
// as-is, making the call an idempotent resume.
func (s *PaymentService) Create(ctx context.Context, actor *model.User, userID uint, months int) (*model.PaymentTransaction, error) {
	// BuildRequest enforces the scope check: residents pay for themselves,
	// officers may initiate for members of their own tree.
	quote, err := s.BuildRequest(ctx, actor, userID, months)
	if err != nil {
		return nil, err
	}
	if quote.Pending {
		return s.payments.FindByOrderRef(ctx, quote.OrderRef)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx := &model.PaymentTransaction{
		OrderRef:       uuid.NewString(),
		UserID:         userID,
		Amount:         quote.Amount,
		Months:         quote.Months,
		BaselinePeriod: quote.Baseline.Time(),
		TargetPeriod:   quote.TargetPeriod.Time(),
		Status:         model.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, tx); err != nil {
		return nil, err
	}

	charge, err := s.charger.Charge(ctx, &gateway.ChargeRequest{
		OrderRef:      tx.OrderRef,
		GrossAmount:   tx.Amount,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		Description:   fmt.Sprintf("Community dues, %d month(s) through %s", tx.Months, quote.TargetPeriod),
	})
	if err != nil {
		// keep the pending row; the resident can resume the charge later
		slog.ErrorContext(ctx, "gateway charge failed", "order_ref", tx.OrderRef, "error", err)
		return nil, fmt.Errorf("initiating gateway charge: %w", err)
	}
	tx.RedirectURL = charge.RedirectURL

	s.audit.Event(ctx, actor.ID, "payment.create", fmt.Sprintf("user:%d", userID),
		slog.String("order_ref", tx.OrderRef),
		slog.Int64("amount", tx.Amount),
		slog.Int("months", tx.Months),
	)

	return tx, nil
}

// Get returns a transaction by order reference. The payer can always see
// their own transactions; anyone else must belong to the same tree.
func (s *PaymentService) Get(ctx context.Context, actor *model.User, orderRef string) (*model.PaymentTransaction, error) {
	tx, err := s.payments.FindByOrderRef(ctx, orderRef)
	if err != nil {
		return nil, err
	}
	if actor.ID != tx.UserID {
		payer, err := s.users.FindByID(ctx, tx.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, payer.CommunityGroupID); err != nil {
			if errors.Is(err, domain.ErrWrongTenant) {
				return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
			}
			return nil, err
		}
	}
	return tx, nil
}

// HandleNotification applies an asynchronous gateway status update. On
// settlement it writes one contribution row per covered month, advances the
// paid-through marker, and emails a receipt. Expiry and cancellation just
// close out the pending transaction.
func (s *PaymentService) HandleNotification(ctx context.Context, n gateway.Notification) error {
	tx, err := s.payments.FindByOrderRef(ctx, n.OrderRef)
	if err != nil {
		return err
	}

	switch {
	case n.Settled():
		return s.settle(ctx, tx)
	case n.Expired():
		return s.payments.UpdateStatus(ctx, tx.ID, model.PaymentStatusExpired)
	case n.Canceled():
		return s.payments.UpdateStatus(ctx, tx.ID, model.PaymentStatusCanceled)
	default:
		// pending / challenge states carry no transition for us
		return nil
	}
}

func (s *PaymentService) settle(ctx context.Context, tx *model.PaymentTransaction) error {
	if !tx.IsPending() {
		// duplicate notification for an already-final transaction
		return nil
	}

	user, err := s.users.FindByID(ctx, tx.UserID)
	if err != nil {
		return err
	}

	baseline := period.FromTime(tx.BaselinePeriod)
	target := period.FromTime(tx.TargetPeriod)
	perMonth := tx.Amount / int64(tx.Months)

	var contributions []*model.Contribution
	for p := baseline.AddMonths(1); !p.After(target); p = p.AddMonths(1) {
		exists, err := s.contributions.Exists(ctx, tx.UserID, p.Year, p.Month)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		contributions = append(contributions, &model.Contribution{
			UserID:               tx.UserID,
			Year:                 p.Year,
			Month:                p.Month,
			Amount:               perMonth,
			PaymentTransactionID: &tx.ID,
		})
	}

	if err := s.payments.Settle(ctx, tx, contributions, target.Time()); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// a concurrent notification settled it first
			return nil
		}
		return err
	}

	s.audit.Event(ctx, tx.UserID, "payment.settle", fmt.Sprintf("order:%s", tx.OrderRef),
		slog.Int64("amount", tx.Amount),
		slog.String("paid_through", target.String()),
	)

	if s.emailService != nil {
		if err := mailer.SendPaymentReceipt(s.emailService, user.Email, user.FullName, tx.Amount, tx.Months, target.String()); err != nil {
			slog.ErrorContext(ctx, "sending payment receipt", "order_ref", tx.OrderRef, "error", err)
		}
	}

	return nil
}
