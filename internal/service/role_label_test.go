package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/mocks"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLabelCache(t *testing.T) *service.CacheService {
	t.Helper()
	c := service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(c.Close)
	return c
}

func TestRoleLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rw := &model.CommunityGroup{ID: 1, Type: model.GroupTypeRW}
	rt := &model.CommunityGroup{ID: 2, Type: model.GroupTypeRT, ParentID: uintPtr(1)}

	t.Run("override map contains only overridden roles", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		labelRepo.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return([]*model.RoleLabelSetting{
				{CommunityGroupID: 1, RoleType: model.RoleLeader, Label: "Pak RW"},
			}, nil)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		labels, err := svc.Labels(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, map[model.RoleType]string{model.RoleLeader: "Pak RW"}, labels)
		_, hasResident := labels[model.RoleResident]
		assert.False(t, hasResident)
	})

	t.Run("no overrides yields an empty map", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		labelRepo.EXPECT().FindByGroup(gomock.Any(), uint(1)).Return(nil, nil)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		labels, err := svc.Labels(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, labels)
		assert.Empty(t, labels)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil).Times(2)
		labelRepo.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return([]*model.RoleLabelSetting{
				{CommunityGroupID: 1, RoleType: model.RoleTreasurer, Label: "Bendahara"},
			}, nil).Times(1)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})

		first, err := svc.Labels(context.Background(), 1)
		assert.NoError(t, err)
		second, err := svc.Labels(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRoleLabelUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rw := &model.CommunityGroup{ID: 1, Type: model.GroupTypeRW}
	leader := &model.User{ID: 10, Role: model.RoleLeader, CommunityGroupID: 1}
	treasurer := &model.User{ID: 11, Role: model.RoleTreasurer, CommunityGroupID: 1}

	t.Run("leader sets an override", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		labelRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, setting *model.RoleLabelSetting) error {
				assert.Equal(t, uint(1), setting.CommunityGroupID)
				assert.Equal(t, "Ketua RW 05", setting.Label)
				return nil
			})
		labelRepo.EXPECT().Find(gomock.Any(), uint(1), model.RoleLeader).
			Return(&model.RoleLabelSetting{CommunityGroupID: 1, RoleType: model.RoleLeader, Label: "Ketua RW 05"}, nil)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		stored, err := svc.Upsert(context.Background(), leader, model.RoleLeader, "  Ketua RW 05  ")

		assert.NoError(t, err)
		assert.Equal(t, "Ketua RW 05", stored.Label)
	})

	t.Run("non-leader is rejected", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		_, err := svc.Upsert(context.Background(), treasurer, model.RoleLeader, "Ketua")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown role type is rejected", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		_, err := svc.Upsert(context.Background(), leader, model.RoleType("MAYOR"), "Walikota")

		assert.ErrorIs(t, err, domain.ErrInvalidRoleType)
	})

	t.Run("blank and oversized labels are rejected", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})

		_, err := svc.Upsert(context.Background(), leader, model.RoleLeader, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidRoleLabel)

		_, err = svc.Upsert(context.Background(), leader, model.RoleLeader, strings.Repeat("x", 51))
		assert.ErrorIs(t, err, domain.ErrInvalidRoleLabel)
	})
}

func TestRoleLabelDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rw := &model.CommunityGroup{ID: 1, Type: model.GroupTypeRW}
	leader := &model.User{ID: 10, Role: model.RoleLeader, CommunityGroupID: 1}

	t.Run("existing override is removed", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		labelRepo.EXPECT().Delete(gomock.Any(), uint(1), model.RoleAdmin).Return(nil)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		err := svc.Delete(context.Background(), leader, model.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("missing override reports not found", func(t *testing.T) {
		labelRepo := mocks.NewMockRoleLabelRepositoryIface(ctrl)
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)
		labelRepo.EXPECT().Delete(gomock.Any(), uint(1), model.RoleAdmin).
			Return(domain.ErrRoleLabelNotFound)

		svc := service.NewRoleLabelService(labelRepo, service.NewHierarchyService(groupRepo), newLabelCache(t), &audit.NoOpLogger{})
		err := svc.Delete(context.Background(), leader, model.RoleAdmin)

		assert.ErrorIs(t, err, domain.ErrRoleLabelNotFound)
	})
}
