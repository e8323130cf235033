// internal/service/group.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// GroupService manages the two-level RW/RT hierarchy. RTs are only ever
// created under the caller's own RW, so the tree can never deepen or cross
// tenants.
type GroupService struct {
	groups    repository.GroupRepositoryIface
	hierarchy *HierarchyService
	audit     audit.Logger
	validate  *validator.Validate
}

func NewGroupService(
	groups repository.GroupRepositoryIface,
	hierarchy *HierarchyService,
	auditLogger audit.Logger,
) *GroupService {
	return &GroupService{
		groups:    groups,
		hierarchy: hierarchy,
		audit:     auditLogger,
		validate:  validator.New(),
	}
}

type CreateGroupInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CreateSubGroup creates an RT under the actor's own RW.
func (s *GroupService) CreateSubGroup(ctx context.Context, actor *model.User, input CreateGroupInput) (*model.CommunityGroup, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if !authz.Can(actor.Role, authz.CapCreateGroup) {
		return nil, fmt.Errorf("%w: only the community LEADER may create sub-groups", domain.ErrForbidden)
	}

	rwID, err := s.hierarchy.ResolveRWID(ctx, actor.CommunityGroupID)
	if err != nil {
		return nil, err
	}

	group := &model.CommunityGroup{
		Name:     input.Name,
		Type:     model.GroupTypeRT,
		ParentID: &rwID,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "group.create", fmt.Sprintf("group:%d", group.ID),
		slog.String("name", group.Name),
	)

	return group, nil
}

// Get returns a group in the actor's tree.
func (s *GroupService) Get(ctx context.Context, actor *model.User, groupID uint) (*model.CommunityGroup, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, groupID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
	}
	return group, nil
}

// Children lists the RT groups of the actor's RW.
func (s *GroupService) Children(ctx context.Context, actor *model.User) ([]*model.CommunityGroup, error) {
	return s.hierarchy.Children(ctx, actor.CommunityGroupID)
}

// Delete removes an empty RT from the actor's RW. Groups holding members,
// dues configuration or children are refused.
func (s *GroupService) Delete(ctx context.Context, actor *model.User, groupID uint) error {
	if !authz.Can(actor.Role, authz.CapDeleteGroup) {
		return fmt.Errorf("%w: only the community LEADER may delete sub-groups", domain.ErrForbidden)
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.IsTopLevel() {
		return fmt.Errorf("%w: top-level groups cannot be deleted", domain.ErrForbidden)
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, groupID); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
	}

	if err := s.groups.Delete(ctx, groupID); err != nil {
		return err
	}

	s.audit.Event(ctx, actor.ID, "group.delete", fmt.Sprintf("group:%d", groupID))
	return nil
}
