// internal/service/hierarchy.go
package service

import (
	"context"
	"fmt"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// HierarchyService resolves any group to its owning top-level (RW) group.
// The resolved RW id is the caller's effective tenant: every scoped operation
// compares resolved RW ids before touching data.
type HierarchyService struct {
	groups repository.GroupRepositoryIface
}

func NewHierarchyService(groups repository.GroupRepositoryIface) *HierarchyService {
	return &HierarchyService{groups: groups}
}

// ResolveRWID returns the top-level group id owning groupID. An RW resolves
// to itself; an RT resolves to its parent. An RT without a parent is a
// data-integrity violation and is reported as ErrForbidden, not ErrNotFound:
// the group exists but no caller may act through it.
func (s *HierarchyService) ResolveRWID(ctx context.Context, groupID uint) (uint, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return 0, err
	}

	if group.IsTopLevel() {
		return group.ID, nil
	}

	if group.ParentID == nil {
		return 0, fmt.Errorf("group %d: %w", groupID, domain.ErrOrphanedGroup)
	}

	return *group.ParentID, nil
}

// EnsureSameTenant verifies that callerGroupID and targetGroupID resolve to
// the same RW, returning ErrWrongTenant otherwise.
func (s *HierarchyService) EnsureSameTenant(ctx context.Context, callerGroupID, targetGroupID uint) error {
	callerRW, err := s.ResolveRWID(ctx, callerGroupID)
	if err != nil {
		return err
	}

	targetRW, err := s.ResolveRWID(ctx, targetGroupID)
	if err != nil {
		return err
	}

	if callerRW != targetRW {
		return domain.ErrWrongTenant
	}
	return nil
}

// TreeGroupIDs returns the ids of every group in the caller's tree: the RW
// itself plus all RT children.
func (s *HierarchyService) TreeGroupIDs(ctx context.Context, groupID uint) ([]uint, error) {
	rwID, err := s.ResolveRWID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	children, err := s.groups.FindChildren(ctx, rwID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(children)+1)
	ids = append(ids, rwID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}
	return ids, nil
}

// Children returns the RT groups under the RW owning groupID.
func (s *HierarchyService) Children(ctx context.Context, groupID uint) ([]*model.CommunityGroup, error) {
	rwID, err := s.ResolveRWID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.groups.FindChildren(ctx, rwID)
}
