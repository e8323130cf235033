// internal/repository/dues_rule.go
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

type DuesRuleRepositoryIface interface {
	Upsert(ctx context.Context, rule *model.DuesRule) error
	FindByGroup(ctx context.Context, groupID uint) (*model.DuesRule, error)
}

type DuesRuleRepository struct {
	db *gorm.DB
}

func NewDuesRuleRepository(db *gorm.DB) *DuesRuleRepository {
	return &DuesRuleRepository{db: db}
}

// Upsert creates or replaces the single rule for rule.GroupID. The unique
// index on group_id makes this idempotent under concurrent calls.
func (r *DuesRuleRepository) Upsert(ctx context.Context, rule *model.DuesRule) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "due_day", "is_active", "updated_at"}),
		}).
		Create(rule).Error
	if err != nil {
		return fmt.Errorf("upserting dues rule: %w", translateError(err))
	}
	return nil
}

func (r *DuesRuleRepository) FindByGroup(ctx context.Context, groupID uint) (*model.DuesRule, error) {
	var rule model.DuesRule
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDuesRuleNotFound
		}
		return nil, fmt.Errorf("finding dues rule: %w", err)
	}
	return &rule, nil
}
