package service_test

import (
	"context"
	"testing"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/mocks"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFundRequestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	treasurer := &model.User{ID: 11, Role: model.RoleTreasurer, CommunityGroupID: 2}
	leader := &model.User{ID: 10, Role: model.RoleLeader, CommunityGroupID: 1}

	t.Run("treasurer files a request for their group", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request *model.FundRequest) error {
				assert.Equal(t, uint(2), request.GroupID)
				assert.Equal(t, uint(11), request.RequestedByID)
				assert.Equal(t, model.FundRequestPending, request.Status)
				return nil
			})

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		request, err := svc.Submit(context.Background(), treasurer, service.SubmitFundRequestInput{
			Amount:  250000,
			Purpose: "Perbaikan pos ronda",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(250000), request.Amount)
	})

	t.Run("leader may not submit", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		_, err := svc.Submit(context.Background(), leader, service.SubmitFundRequestInput{
			Amount:  250000,
			Purpose: "Perbaikan pos ronda",
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("short purpose is invalid", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		_, err := svc.Submit(context.Background(), treasurer, service.SubmitFundRequestInput{
			Amount:  250000,
			Purpose: "ab",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestFundRequestDecide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rw := &model.CommunityGroup{ID: 1, Type: model.GroupTypeRW}
	rt := &model.CommunityGroup{ID: 2, Type: model.GroupTypeRT, ParentID: uintPtr(1)}

	leader := &model.User{ID: 10, Role: model.RoleLeader, CommunityGroupID: 1}
	treasurer := &model.User{ID: 11, Role: model.RoleTreasurer, CommunityGroupID: 2}

	pending := &model.FundRequest{ID: 5, GroupID: 2, RequestedByID: 11, Amount: 250000, Status: model.FundRequestPending}

	t.Run("leader approves", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		requestRepo.EXPECT().FindByID(gomock.Any(), uint(5)).Return(pending, nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		requestRepo.EXPECT().Decide(gomock.Any(), uint(5), model.FundRequestApproved, uint(10), "disetujui").
			Return(&model.FundRequest{ID: 5, Status: model.FundRequestApproved}, nil)

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		decided, err := svc.Decide(context.Background(), leader, 5, true, "disetujui")

		assert.NoError(t, err)
		assert.Equal(t, model.FundRequestApproved, decided.Status)
	})

	t.Run("treasurer may not decide", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		_, err := svc.Decide(context.Background(), treasurer, 5, true, "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("already decided request stays decided", func(t *testing.T) {
		requestRepo := mocks.NewMockFundRequestRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		requestRepo.EXPECT().FindByID(gomock.Any(), uint(5)).Return(pending, nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		requestRepo.EXPECT().Decide(gomock.Any(), uint(5), model.FundRequestRejected, uint(10), "").
			Return(nil, domain.ErrFundRequestDecided)

		svc := service.NewFundRequestService(requestRepo, service.NewHierarchyService(groupRepo), &audit.NoOpLogger{})
		_, err := svc.Decide(context.Background(), leader, 5, false, "")

		assert.ErrorIs(t, err, domain.ErrFundRequestDecided)
	})
}
