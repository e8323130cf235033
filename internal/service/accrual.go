// internal/service/accrual.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/period"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// PeriodState classifies one calendar month of a user's dues.
type PeriodState string

const (
	StateNotMember PeriodState = "NOT_MEMBER"
	StateNotYetDue PeriodState = "NOT_YET_DUE"
	StateUnpaid    PeriodState = "UNPAID"
	StatePaid      PeriodState = "PAID"
)

// MonthStatus is one entry of the 12-month yearly view. DueDate is display
// only; the state itself is month-granular.
type MonthStatus struct {
	Month   int         `json:"month"`
	State   PeriodState `json:"state"`
	DueDate *string     `json:"due_date,omitempty"`
}

// AccrualService derives per-month payment states. The derivation is pure
// and re-entrant; "today" comes from the injected clock so the service never
// caches results across real time.
type AccrualService struct {
	users         repository.UserRepositoryIface
	contributions repository.ContributionRepositoryIface
	dues          *DuesService
	hierarchy     *HierarchyService
	now           func() time.Time
}

func NewAccrualService(
	users repository.UserRepositoryIface,
	contributions repository.ContributionRepositoryIface,
	dues *DuesService,
	hierarchy *HierarchyService,
	now func() time.Time,
) *AccrualService {
	if now == nil {
		now = time.Now
	}
	return &AccrualService{
		users:         users,
		contributions: contributions,
		dues:          dues,
		hierarchy:     hierarchy,
		now:           now,
	}
}

// DerivePeriodState classifies period p for a member who joined in joined,
// whose cumulative paid-through marker is lastPaid (nil when never advanced),
// and whose itemized contribution months are the itemized set.
//
// Precedence is deliberate: membership first, then either source of "paid"
// (an itemized row or the cumulative marker each win on their own), then the
// future check. The two payment records are independent sources of truth and
// are never required to agree before PAID is reported.
func DerivePeriodState(joined period.Period, lastPaid *period.Period, itemized map[period.Period]bool, p, today period.Period) PeriodState {
	switch {
	case p.Before(joined):
		return StateNotMember
	case itemized[p]:
		return StatePaid
	case lastPaid != nil && !lastPaid.Before(p):
		return StatePaid
	case p.After(today):
		return StateNotYetDue
	default:
		return StateUnpaid
	}
}

// YearStatus returns the 12-entry dues view for userID in year. The caller's
// scope is re-verified on every call: actor must belong to the same RW tree
// as the target user.
func (s *AccrualService) YearStatus(ctx context.Context, actor *model.User, userID uint, year int) ([]MonthStatus, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, user.CommunityGroupID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return nil, err
	}

	rows, err := s.contributions.FindByUserYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	itemized := make(map[period.Period]bool, len(rows))
	for _, row := range rows {
		itemized[period.Period{Year: row.Year, Month: row.Month}] = true
	}

	var lastPaid *period.Period
	if user.LastPaidPeriod != nil {
		lp := period.FromTime(*user.LastPaidPeriod)
		lastPaid = &lp
	}

	// Due-date display needs the effective rule; a hierarchy with no rule
	// still gets states, just no dates.
	var dueDay int
	if rule, err := s.dues.Effective(ctx, user.CommunityGroupID); err == nil {
		dueDay = rule.DueDay
	} else if !errors.Is(err, domain.ErrDuesNotConfigured) {
		return nil, err
	}

	joined := period.FromTime(user.CreatedAt)
	today := period.FromTime(s.now())

	statuses := make([]MonthStatus, 0, 12)
	for month := 1; month <= 12; month++ {
		p := period.Period{Year: year, Month: month}
		status := MonthStatus{
			Month: month,
			State: DerivePeriodState(joined, lastPaid, itemized, p, today),
		}
		if dueDay > 0 && status.State != StateNotMember {
			// dueDay beyond the month's length clamps to its last day
			due := fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.ClampDay(dueDay))
			status.DueDate = &due
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
