// internal/repository/contribution.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
)

type ContributionRepositoryIface interface {
	Create(ctx context.Context, contribution *model.Contribution) error
	FindByUserYear(ctx context.Context, userID uint, year int) ([]*model.Contribution, error)
	FindByUser(ctx context.Context, userID uint) ([]*model.Contribution, error)
	Exists(ctx context.Context, userID uint, year, month int) (bool, error)
}

type ContributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, contribution *model.Contribution) error {
	if err := r.db.WithContext(ctx).Create(contribution).Error; err != nil {
		if errors.Is(translateError(err), domain.ErrConflict) {
			return domain.ErrDuplicateContribution
		}
		return fmt.Errorf("creating contribution: %w", err)
	}
	return nil
}

func (r *ContributionRepository) FindByUserYear(ctx context.Context, userID uint, year int) ([]*model.Contribution, error) {
	var contributions []*model.Contribution
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		Order("month").
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("finding contributions for year: %w", err)
	}
	return contributions, nil
}

func (r *ContributionRepository) FindByUser(ctx context.Context, userID uint) ([]*model.Contribution, error) {
	var contributions []*model.Contribution
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year, month").
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("finding contributions: %w", err)
	}
	return contributions, nil
}

func (r *ContributionRepository) Exists(ctx context.Context, userID uint, year, month int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Contribution{}).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking contribution existence: %w", err)
	}
	return count > 0, nil
}
