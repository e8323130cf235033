// internal/repository/fund_request.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"gorm.io/gorm"
)

type FundRequestRepositoryIface interface {
	Create(ctx context.Context, request *model.FundRequest) error
	FindByID(ctx context.Context, id uint) (*model.FundRequest, error)
	FindByGroups(ctx context.Context, groupIDs []uint) ([]*model.FundRequest, error)
	Decide(ctx context.Context, id uint, status model.FundRequestStatus, deciderID uint, note string) (*model.FundRequest, error)
}

type FundRequestRepository struct {
	db *gorm.DB
}

func NewFundRequestRepository(db *gorm.DB) *FundRequestRepository {
	return &FundRequestRepository{db: db}
}

func (r *FundRequestRepository) Create(ctx context.Context, request *model.FundRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("creating fund request: %w", translateError(err))
	}
	return nil
}

func (r *FundRequestRepository) FindByID(ctx context.Context, id uint) (*model.FundRequest, error) {
	var request model.FundRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFundRequestNotFound
		}
		return nil, fmt.Errorf("finding fund request: %w", err)
	}
	return &request, nil
}

func (r *FundRequestRepository) FindByGroups(ctx context.Context, groupIDs []uint) ([]*model.FundRequest, error) {
	var requests []*model.FundRequest
	if err := r.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("id DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("finding fund requests: %w", err)
	}
	return requests, nil
}

// Decide flips a pending request to approved or rejected. The pending guard
// in the WHERE clause makes the transition one-way under concurrent deciders.
func (r *FundRequestRepository) Decide(ctx context.Context, id uint, status model.FundRequestStatus, deciderID uint, note string) (*model.FundRequest, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&model.FundRequest{}).
		Where("id = ? AND status = ?", id, model.FundRequestPending).
		Updates(map[string]interface{}{
			"status":        status,
			"decided_by_id": deciderID,
			"decided_at":    now,
			"decision_note": note,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("deciding fund request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// either missing or already decided; disambiguate for the caller
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrFundRequestDecided
	}
	return r.FindByID(ctx, id)
}
