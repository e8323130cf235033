// internal/service/role_label.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// RoleLabelService manages the per-RW display-name overrides for system
// roles. Reads are open to any member of the RW tree; mutations are
// LEADER-only. The label map is cached per RW and invalidated on write.
type RoleLabelService struct {
	labels    repository.RoleLabelRepositoryIface
	hierarchy *HierarchyService
	cache     *CacheService
	audit     audit.Logger
}

func NewRoleLabelService(
	labels repository.RoleLabelRepositoryIface,
	hierarchy *HierarchyService,
	cache *CacheService,
	auditLogger audit.Logger,
) *RoleLabelService {
	return &RoleLabelService{
		labels:    labels,
		hierarchy: hierarchy,
		cache:     cache,
		audit:     auditLogger,
	}
}

func labelCacheKey(rwGroupID uint) string {
	return fmt.Sprintf("role_labels:%d", rwGroupID)
}

// Labels returns the override map for the RW owning callerGroupID. Only
// overridden roles appear; callers fall back to model.DefaultRoleLabels for
// the rest. An RW with zero overrides yields an empty map.
func (s *RoleLabelService) Labels(ctx context.Context, callerGroupID uint) (map[model.RoleType]string, error) {
	rwID, err := s.hierarchy.ResolveRWID(ctx, callerGroupID)
	if err != nil {
		return nil, err
	}

	if cached, found := s.cache.GetLabels(ctx, labelCacheKey(rwID)); found {
		return cached, nil
	}

	settings, err := s.labels.FindByGroup(ctx, rwID)
	if err != nil {
		return nil, err
	}

	mapping := make(map[model.RoleType]string, len(settings))
	for _, setting := range settings {
		mapping[setting.RoleType] = setting.Label
	}

	s.cache.SetLabels(ctx, labelCacheKey(rwID), mapping)
	return mapping, nil
}

// Upsert creates or replaces the override for roleType in the actor's RW.
func (s *RoleLabelService) Upsert(ctx context.Context, actor *model.User, roleType model.RoleType, label string) (*model.RoleLabelSetting, error) {
	if !authz.Can(actor.Role, authz.CapManageRoleLabels) {
		return nil, fmt.Errorf("%w: only the community LEADER may change role labels", domain.ErrForbidden)
	}
	if !model.ValidRole(roleType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRoleType, roleType)
	}

	label = strings.TrimSpace(label)
	if len(label) < 1 || len(label) > 50 {
		return nil, domain.ErrInvalidRoleLabel
	}

	rwID, err := s.hierarchy.ResolveRWID(ctx, actor.CommunityGroupID)
	if err != nil {
		return nil, err
	}

	setting := &model.RoleLabelSetting{
		CommunityGroupID: rwID,
		RoleType:         roleType,
		Label:            label,
	}
	if err := s.labels.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	stored, err := s.labels.Find(ctx, rwID, roleType)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, labelCacheKey(rwID))
	s.audit.Event(ctx, actor.ID, "role_label.upsert", fmt.Sprintf("rw:%d", rwID),
		slog.String("role_type", string(roleType)),
		slog.String("label", label),
	)

	return stored, nil
}

// Delete removes the override for roleType, reverting callers to the system
// default. ErrRoleLabelNotFound when no override exists.
func (s *RoleLabelService) Delete(ctx context.Context, actor *model.User, roleType model.RoleType) error {
	if !authz.Can(actor.Role, authz.CapManageRoleLabels) {
		return fmt.Errorf("%w: only the community LEADER may change role labels", domain.ErrForbidden)
	}
	if !model.ValidRole(roleType) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRoleType, roleType)
	}

	rwID, err := s.hierarchy.ResolveRWID(ctx, actor.CommunityGroupID)
	if err != nil {
		return err
	}

	if err := s.labels.Delete(ctx, rwID, roleType); err != nil {
		if errors.Is(err, domain.ErrRoleLabelNotFound) {
			return err
		}
		return fmt.Errorf("deleting role label: %w", err)
	}

	s.cache.Invalidate(ctx, labelCacheKey(rwID))
	s.audit.Event(ctx, actor.ID, "role_label.delete", fmt.Sprintf("rw:%d", rwID),
		slog.String("role_type", string(roleType)),
	)

	return nil
}
