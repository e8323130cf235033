// internal/repository/group.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
)

type GroupRepositoryIface interface {
	Create(ctx context.Context, group *model.CommunityGroup) error
	FindByID(ctx context.Context, id uint) (*model.CommunityGroup, error)
	FindChildren(ctx context.Context, parentID uint) ([]*model.CommunityGroup, error)
	Delete(ctx context.Context, id uint) error
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *model.CommunityGroup) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("creating community group: %w", translateError(err))
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*model.CommunityGroup, error) {
	var group model.CommunityGroup
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("finding community group: %w", err)
	}
	return &group, nil
}

func (r *GroupRepository) FindChildren(ctx context.Context, parentID uint) ([]*model.CommunityGroup, error) {
	var groups []*model.CommunityGroup
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id").
		Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("finding child groups: %w", err)
	}
	return groups, nil
}

// Delete removes a group only when nothing references it. Membership and
// dues-rule checks happen in one transaction so a racing insert cannot
// orphan data.
func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var members int64
		if err := tx.Model(&model.User{}).Where("community_group_id = ?", id).Count(&members).Error; err != nil {
			return fmt.Errorf("counting group members: %w", err)
		}

		var rules int64
		if err := tx.Model(&model.DuesRule{}).Where("group_id = ?", id).Count(&rules).Error; err != nil {
			return fmt.Errorf("counting dues rules: %w", err)
		}

		var children int64
		if err := tx.Model(&model.CommunityGroup{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return fmt.Errorf("counting child groups: %w", err)
		}

		if members > 0 || rules > 0 || children > 0 {
			return domain.ErrGroupNotEmpty
		}

		if err := tx.Delete(&model.CommunityGroup{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting community group: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrGroupNotEmpty) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
