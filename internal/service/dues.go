// internal/service/dues.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// DuesService resolves and configures the monthly dues rule for a group.
type DuesService struct {
	rules     repository.DuesRuleRepositoryIface
	groups    repository.GroupRepositoryIface
	hierarchy *HierarchyService
	audit     audit.Logger
	validate  *validator.Validate
}

func NewDuesService(
	rules repository.DuesRuleRepositoryIface,
	groups repository.GroupRepositoryIface,
	hierarchy *HierarchyService,
	auditLogger audit.Logger,
) *DuesService {
	return &DuesService{
		rules:     rules,
		groups:    groups,
		hierarchy: hierarchy,
		audit:     auditLogger,
		validate:  validator.New(),
	}
}

// EnsureReadScope verifies that the actor's tree owns groupID. Dues rules
// are not secret inside a community, but they never cross tenants.
func (s *DuesService) EnsureReadScope(ctx context.Context, actor *model.User, groupID uint) error {
	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, groupID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return err
	}
	return nil
}

// EffectiveRule is the dues rule that applies to a group, tagged with where
// it came from.
type EffectiveRule struct {
	GroupID  uint             `json:"group_id"`
	Amount   int64            `json:"amount"`
	DueDay   int              `json:"due_day"`
	IsActive bool             `json:"is_active"`
	Source   model.RuleSource `json:"source"`
}

// Effective returns the rule governing groupID: the group's own active rule,
// else the owning RW's rule tagged "inherited". ErrDuesNotConfigured when
// neither level has an active rule.
func (s *DuesService) Effective(ctx context.Context, groupID uint) (*EffectiveRule, error) {
	rule, err := s.rules.FindByGroup(ctx, groupID)
	if err == nil && rule.IsActive {
		effective := &EffectiveRule{
			GroupID:  groupID,
			Amount:   rule.Amount,
			DueDay:   rule.DueDay,
			IsActive: rule.IsActive,
			Source:   model.RuleSourceOwn,
		}

		// dueDay is configurable only on the RW rule, so a sub-group's own
		// rule always takes its due day from the RW when one is configured.
		rwID, err := s.hierarchy.ResolveRWID(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if rwID != groupID {
			parentRule, err := s.rules.FindByGroup(ctx, rwID)
			switch {
			case err == nil:
				effective.DueDay = parentRule.DueDay
			case !errors.Is(err, domain.ErrDuesRuleNotFound):
				return nil, err
			}
		}

		return effective, nil
	}
	if err != nil && !errors.Is(err, domain.ErrDuesRuleNotFound) {
		return nil, err
	}

	rwID, err := s.hierarchy.ResolveRWID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if rwID == groupID {
		return nil, domain.ErrDuesNotConfigured
	}

	parentRule, err := s.rules.FindByGroup(ctx, rwID)
	if err != nil {
		if errors.Is(err, domain.ErrDuesRuleNotFound) {
			return nil, domain.ErrDuesNotConfigured
		}
		return nil, err
	}
	if !parentRule.IsActive {
		return nil, domain.ErrDuesNotConfigured
	}

	return &EffectiveRule{
		GroupID:  groupID,
		Amount:   parentRule.Amount,
		DueDay:   parentRule.DueDay,
		IsActive: parentRule.IsActive,
		Source:   model.RuleSourceInherited,
	}, nil
}

type SetDuesConfigInput struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
	DueDay *int  `json:"due_day,omitempty" validate:"omitempty,min=1,max=31"`
}

// SetConfig upserts the dues rule for groupID on behalf of actor.
//
// Amount may be set by any officer holding CapSetDuesAmount whose tenant owns
// the group; an ADMIN or TREASURER is further restricted to their own group.
// DueDay is applied only when the actor is the LEADER and the target group is
// the RW itself; a dueDay supplied outside those conditions is not applied,
// while the amount update still goes through. When dueDay is not applied the
// stored value is preserved (or defaults to 1 on first configuration).
func (s *DuesService) SetConfig(ctx context.Context, actor *model.User, groupID uint, input SetDuesConfigInput) (*model.DuesRule, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if !authz.Can(actor.Role, authz.CapSetDuesAmount) {
		return nil, fmt.Errorf("%w: role %s may not configure dues", domain.ErrForbidden, actor.Role)
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, groupID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return nil, err
	}

	// Non-LEADER officers configure their own group only.
	if actor.Role != model.RoleLeader && actor.CommunityGroupID != groupID {
		return nil, fmt.Errorf("%w: only the group's own officers may set its dues amount", domain.ErrForbidden)
	}

	rule := &model.DuesRule{
		GroupID:  groupID,
		Amount:   input.Amount,
		IsActive: true,
	}

	dueDayApplied := false
	existing, err := s.rules.FindByGroup(ctx, groupID)
	switch {
	case err == nil:
		rule.DueDay = existing.DueDay
	case errors.Is(err, domain.ErrDuesRuleNotFound):
		rule.DueDay = 1
	default:
		return nil, err
	}

	if input.DueDay != nil && actor.Role == model.RoleLeader && group.IsTopLevel() {
		rule.DueDay = *input.DueDay
		dueDayApplied = true
	}

	if err := s.rules.Upsert(ctx, rule); err != nil {
		return nil, err
	}

	stored, err := s.rules.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "dues.set_config", fmt.Sprintf("group:%d", groupID),
		slog.Int64("amount", stored.Amount),
		slog.Int("due_day", stored.DueDay),
		slog.Bool("due_day_applied", dueDayApplied),
	)

	return stored, nil
}
