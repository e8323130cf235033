package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/mocks"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconcileMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	joined := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	t.Run("marker advances over a contiguous itemized run", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)

		marker := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		user := &model.User{ID: 20, CreatedAt: joined, LastPaidPeriod: &marker}

		userRepo.EXPECT().FindBatch(gomock.Any(), uint(0), 100).Return([]*model.User{user}, nil)
		contributionRepo.EXPECT().FindByUser(gomock.Any(), uint(20)).
			Return([]*model.Contribution{
				{UserID: 20, Year: 2025, Month: 3},
				{UserID: 20, Year: 2025, Month: 4},
				{UserID: 20, Year: 2025, Month: 6}, // gap at May, must not be covered
			}, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), *u.LastPaidPeriod)
				return nil
			})
		userRepo.EXPECT().FindBatch(gomock.Any(), uint(20), 100).Return(nil, nil)

		svc := service.NewReconciliationService(userRepo, contributionRepo, nil)
		stats, err := svc.ReconcileMarkers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Scanned)
		assert.Equal(t, 1, stats.Drifted)
		assert.Equal(t, 1, stats.Repaired)
	})

	t.Run("marker already covering the rows is untouched", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)

		marker := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		user := &model.User{ID: 20, CreatedAt: joined, LastPaidPeriod: &marker}

		userRepo.EXPECT().FindBatch(gomock.Any(), uint(0), 100).Return([]*model.User{user}, nil)
		contributionRepo.EXPECT().FindByUser(gomock.Any(), uint(20)).
			Return([]*model.Contribution{
				{UserID: 20, Year: 2025, Month: 3},
				{UserID: 20, Year: 2025, Month: 4},
			}, nil)
		userRepo.EXPECT().FindBatch(gomock.Any(), uint(20), 100).Return(nil, nil)

		svc := service.NewReconciliationService(userRepo, contributionRepo, nil)
		stats, err := svc.ReconcileMarkers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.Drifted)
	})

	t.Run("nil marker starts from the join period", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)

		user := &model.User{ID: 21, CreatedAt: joined}

		userRepo.EXPECT().FindBatch(gomock.Any(), uint(0), 100).Return([]*model.User{user}, nil)
		contributionRepo.EXPECT().FindByUser(gomock.Any(), uint(21)).
			Return([]*model.Contribution{
				{UserID: 21, Year: 2025, Month: 2},
				{UserID: 21, Year: 2025, Month: 3},
			}, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), *u.LastPaidPeriod)
				return nil
			})
		userRepo.EXPECT().FindBatch(gomock.Any(), uint(21), 100).Return(nil, nil)

		svc := service.NewReconciliationService(userRepo, contributionRepo, nil)
		stats, err := svc.ReconcileMarkers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Repaired)
	})

	t.Run("dry run reports drift without writing", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)

		user := &model.User{ID: 22, CreatedAt: joined}

		userRepo.EXPECT().FindBatch(gomock.Any(), uint(0), 100).Return([]*model.User{user}, nil)
		contributionRepo.EXPECT().FindByUser(gomock.Any(), uint(22)).
			Return([]*model.Contribution{{UserID: 22, Year: 2025, Month: 2}}, nil)
		userRepo.EXPECT().FindBatch(gomock.Any(), uint(22), 100).Return(nil, nil)

		svc := service.NewReconciliationService(userRepo, contributionRepo, nil)
		svc.SetDryRun(true)
		stats, err := svc.ReconcileMarkers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Drifted)
		assert.Equal(t, 0, stats.Repaired)
	})

	t.Run("user without contributions is skipped", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)

		user := &model.User{ID: 23, CreatedAt: joined}

		userRepo.EXPECT().FindBatch(gomock.Any(), uint(0), 100).Return([]*model.User{user}, nil)
		contributionRepo.EXPECT().FindByUser(gomock.Any(), uint(23)).Return(nil, nil)
		userRepo.EXPECT().FindBatch(gomock.Any(), uint(23), 100).Return(nil, nil)

		svc := service.NewReconciliationService(userRepo, contributionRepo, nil)
		stats, err := svc.ReconcileMarkers(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Scanned)
		assert.Equal(t, 0, stats.Drifted)
	})
}

type stubStatusChecker struct {
	responses map[string]*gateway.StatusResponse
	err       error
}

func (c *stubStatusChecker) Status(_ context.Context, orderRef string) (*gateway.StatusResponse, error) {
	if resp, ok := c.responses[orderRef]; ok {
		return resp, nil
	}
	return nil, c.err
}

func TestReconcilePayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stalePending := func(id uint, orderRef string) *model.PaymentTransaction {
		return &model.PaymentTransaction{
			ID:       id,
			OrderRef: orderRef,
			UserID:   20,
			Status:   model.PaymentStatusPending,
		}
	}

	newSweep := func(f *paymentFixture, status service.StatusChecker) *service.ReconciliationService {
		svc := service.NewReconciliationService(f.users, f.contributions, nil)
		svc.EnablePaymentSweep(f.payments, status, f.svc)
		return svc
	}

	t.Run("expired transaction is closed from a status poll", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := stalePending(7, "order-777")

		f.payments.EXPECT().FindStalePending(gomock.Any(), gomock.Any()).
			Return([]*model.PaymentTransaction{tx}, nil)
		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(tx, nil)
		f.payments.EXPECT().UpdateStatus(gomock.Any(), uint(7), model.PaymentStatusExpired).Return(nil)

		status := &stubStatusChecker{responses: map[string]*gateway.StatusResponse{
			"order-777": {OrderRef: "order-777", TransactionStatus: "expire"},
		}}

		stats, err := newSweep(f, status).ReconcilePayments(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Polled)
		assert.Equal(t, 1, stats.Applied)
		assert.Equal(t, 0, stats.Failed)
	})

	t.Run("transaction still in flight at the gateway is left alone", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := stalePending(8, "order-888")

		f.payments.EXPECT().FindStalePending(gomock.Any(), gomock.Any()).
			Return([]*model.PaymentTransaction{tx}, nil)

		status := &stubStatusChecker{responses: map[string]*gateway.StatusResponse{
			"order-888": {OrderRef: "order-888", TransactionStatus: "pending"},
		}}

		stats, err := newSweep(f, status).ReconcilePayments(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Polled)
		assert.Equal(t, 0, stats.Applied)
	})

	t.Run("dry run polls but applies nothing", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := stalePending(9, "order-999")

		f.payments.EXPECT().FindStalePending(gomock.Any(), gomock.Any()).
			Return([]*model.PaymentTransaction{tx}, nil)

		status := &stubStatusChecker{responses: map[string]*gateway.StatusResponse{
			"order-999": {OrderRef: "order-999", TransactionStatus: "expire"},
		}}

		sweep := newSweep(f, status)
		sweep.SetDryRun(true)
		stats, err := sweep.ReconcilePayments(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, 1, stats.Polled)
		assert.Equal(t, 0, stats.Applied)
	})

	t.Run("poll failure does not stop the sweep", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		broken := stalePending(10, "order-down")
		canceled := stalePending(11, "order-111")

		f.payments.EXPECT().FindStalePending(gomock.Any(), gomock.Any()).
			Return([]*model.PaymentTransaction{broken, canceled}, nil)
		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-111").Return(canceled, nil)
		f.payments.EXPECT().UpdateStatus(gomock.Any(), uint(11), model.PaymentStatusCanceled).Return(nil)

		status := &stubStatusChecker{
			responses: map[string]*gateway.StatusResponse{
				"order-111": {OrderRef: "order-111", TransactionStatus: "cancel"},
			},
			err: errors.New("gateway unreachable"),
		}

		stats, err := newSweep(f, status).ReconcilePayments(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, 2, stats.Polled)
		assert.Equal(t, 1, stats.Applied)
		assert.Equal(t, 1, stats.Failed)
	})
}
