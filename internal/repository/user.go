// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindByGroup(ctx context.Context, groupID uint, offset, limit int) ([]*model.User, int64, error)
	FindBatch(ctx context.Context, afterID uint, limit int) ([]*model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(translateError(err), domain.ErrConflict) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("updating user: %w", translateError(err))
	}
	return nil
}

func (r *UserRepository) FindByGroup(ctx context.Context, groupID uint, offset, limit int) ([]*model.User, int64, error) {
	var users []*model.User
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("community_group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting group users: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("community_group_id = ?", groupID).
		Order("id").
		Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("finding group users: %w", err)
	}

	return users, count, nil
}

// FindBatch returns up to limit users with IDs greater than afterID, in ID
// order. Used by the reconcile command to walk the whole table.
func (r *UserRepository) FindBatch(ctx context.Context, afterID uint, limit int) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("finding user batch: %w", err)
	}
	return users, nil
}
