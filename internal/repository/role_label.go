// internal/repository/role_label.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleLabelRepositoryIface interface {
	Upsert(ctx context.Context, setting *model.RoleLabelSetting) error
	Find(ctx context.Context, rwGroupID uint, roleType model.RoleType) (*model.RoleLabelSetting, error)
	FindByGroup(ctx context.Context, rwGroupID uint) ([]*model.RoleLabelSetting, error)
	Delete(ctx context.Context, rwGroupID uint, roleType model.RoleType) error
}

type RoleLabelRepository struct {
	db *gorm.DB
}

func NewRoleLabelRepository(db *gorm.DB) *RoleLabelRepository {
	return &RoleLabelRepository{db: db}
}

// Upsert creates or replaces the label for (rw group, role type).
func (r *RoleLabelRepository) Upsert(ctx context.Context, setting *model.RoleLabelSetting) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_group_id"}, {Name: "role_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "updated_at"}),
		}).
		Create(setting).Error
	if err != nil {
		return fmt.Errorf("upserting role label: %w", translateError(err))
	}
	return nil
}

func (r *RoleLabelRepository) Find(ctx context.Context, rwGroupID uint, roleType model.RoleType) (*model.RoleLabelSetting, error) {
	var setting model.RoleLabelSetting
	if err := r.db.WithContext(ctx).
		Where("community_group_id = ? AND role_type = ?", rwGroupID, roleType).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleLabelNotFound
		}
		return nil, fmt.Errorf("finding role label: %w", err)
	}
	return &setting, nil
}

func (r *RoleLabelRepository) FindByGroup(ctx context.Context, rwGroupID uint) ([]*model.RoleLabelSetting, error) {
	var settings []*model.RoleLabelSetting
	if err := r.db.WithContext(ctx).
		Where("community_group_id = ?", rwGroupID).
		Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("finding role labels: %w", err)
	}
	return settings, nil
}

// Delete removes an override. Deleting an override that does not exist is an
// error; reverting to defaults twice is a caller mistake worth surfacing.
func (r *RoleLabelRepository) Delete(ctx context.Context, rwGroupID uint, roleType model.RoleType) error {
	result := r.db.WithContext(ctx).
		Where("community_group_id = ? AND role_type = ?", rwGroupID, roleType).
		Delete(&model.RoleLabelSetting{})
	if result.Error != nil {
		return fmt.Errorf("deleting role label: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoleLabelNotFound
	}
	return nil
}
