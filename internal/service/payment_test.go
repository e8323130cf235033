package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/mocks"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/period"
	"github.com/rukunhub/rukunhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubCharger struct {
	response *gateway.ChargeResponse
	err      error
	requests []*gateway.ChargeRequest
}

func (c *stubCharger) Charge(_ context.Context, req *gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	c.requests = append(c.requests, req)
	return c.response, c.err
}

type paymentFixture struct {
	payments      *mocks.MockPaymentRepositoryIface
	contributions *mocks.MockContributionRepositoryIface
	users         *mocks.MockUserRepositoryIface
	rules         *mocks.MockDuesRuleRepositoryIface
	groups        *mocks.MockGroupRepositoryIface
	charger       *stubCharger
	svc           *service.PaymentService
}

func newPaymentFixture(ctrl *gomock.Controller, now func() time.Time) *paymentFixture {
	f := &paymentFixture{
		payments:      mocks.NewMockPaymentRepositoryIface(ctrl),
		contributions: mocks.NewMockContributionRepositoryIface(ctrl),
		users:         mocks.NewMockUserRepositoryIface(ctrl),
		rules:         mocks.NewMockDuesRuleRepositoryIface(ctrl),
		groups:        mocks.NewMockGroupRepositoryIface(ctrl),
		charger:       &stubCharger{response: &gateway.ChargeResponse{RedirectURL: "https://pay.example/redirect"}},
	}
	hierarchy := service.NewHierarchyService(f.groups)
	dues := service.NewDuesService(f.rules, f.groups, hierarchy, &audit.NoOpLogger{})
	f.svc = service.NewPaymentService(
		f.payments,
		f.contributions,
		f.users,
		dues,
		hierarchy,
		f.charger,
		nil,
		&audit.NoOpLogger{},
		now,
	)
	return f
}

func TestBuildPaymentRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	joined := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	marker := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	member := &model.User{
		ID:               20,
		Role:             model.RoleResident,
		CommunityGroupID: 2,
		CreatedAt:        joined,
		LastPaidPeriod:   &marker,
	}
	rt := &model.CommunityGroup{ID: 2, Type: model.GroupTypeRT, ParentID: uintPtr(1)}

	t.Run("amount is months times the effective rule", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(20)).
			Return(nil, domain.ErrPaymentNotFound)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(2)).
			Return(&model.DuesRule{GroupID: 2, Amount: 50000, DueDay: 1, IsActive: true}, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return(&model.DuesRule{GroupID: 1, Amount: 50000, DueDay: 10, IsActive: true}, nil)

		quote, err := f.svc.BuildRequest(context.Background(), member, 20, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(150000), quote.Amount)
		assert.Equal(t, 3, quote.Months)
		assert.False(t, quote.Pending)
		assert.Equal(t, period.Period{Year: 2025, Month: 4}, quote.Baseline)
		assert.Equal(t, period.Period{Year: 2025, Month: 7}, quote.TargetPeriod)
	})

	t.Run("baseline falls back to the join period", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		fresh := &model.User{ID: 21, CommunityGroupID: 2, CreatedAt: joined}
		f.users.EXPECT().FindByID(gomock.Any(), uint(21)).Return(fresh, nil)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(21)).
			Return(nil, domain.ErrPaymentNotFound)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(2)).
			Return(&model.DuesRule{GroupID: 2, Amount: 50000, DueDay: 1, IsActive: true}, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return(nil, domain.ErrDuesRuleNotFound)

		quote, err := f.svc.BuildRequest(context.Background(), fresh, 21, 2)

		assert.NoError(t, err)
		assert.Equal(t, period.Period{Year: 2025, Month: 1}, quote.Baseline)
		assert.Equal(t, period.Period{Year: 2025, Month: 3}, quote.TargetPeriod)
	})

	t.Run("pending transaction is resumed and months ignored", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		pending := &model.PaymentTransaction{
			OrderRef:       "order-123",
			UserID:         20,
			Amount:         100000,
			Months:         2,
			BaselinePeriod: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			TargetPeriod:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			Status:         model.PaymentStatusPending,
		}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(20)).Return(pending, nil)

		quote, err := f.svc.BuildRequest(context.Background(), member, 20, 6)

		assert.NoError(t, err)
		assert.True(t, quote.Pending)
		assert.Equal(t, "order-123", quote.OrderRef)
		assert.Equal(t, 2, quote.Months)
		assert.Equal(t, int64(100000), quote.Amount)
	})

	t.Run("months outside 1..12 are rejected", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		_, err := f.svc.BuildRequest(context.Background(), member, 20, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidMonths)

		_, err = f.svc.BuildRequest(context.Background(), member, 20, 13)
		assert.ErrorIs(t, err, domain.ErrInvalidMonths)
	})

	t.Run("unconfigured dues surface as invalid input", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		rw := &model.CommunityGroup{ID: 1, Type: model.GroupTypeRW}
		lonely := &model.User{ID: 22, CommunityGroupID: 1, CreatedAt: joined}
		f.users.EXPECT().FindByID(gomock.Any(), uint(22)).Return(lonely, nil)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(22)).
			Return(nil, domain.ErrPaymentNotFound)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return(nil, domain.ErrDuesRuleNotFound)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(1)).Return(rw, nil)

		_, err := f.svc.BuildRequest(context.Background(), lonely, 22, 3)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cross-tenant quote is rejected", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		outsider := &model.User{ID: 30, Role: model.RoleLeader, CommunityGroupID: 99}
		rwOther := &model.CommunityGroup{ID: 99, Type: model.GroupTypeRW}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(99)).Return(rwOther, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)

		_, err := f.svc.BuildRequest(context.Background(), outsider, 20, 3)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("officer in the same tree may quote for a member", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		treasurer := &model.User{ID: 11, Role: model.RoleTreasurer, CommunityGroupID: 2}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil).Times(3)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(20)).
			Return(nil, domain.ErrPaymentNotFound)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(2)).
			Return(&model.DuesRule{GroupID: 2, Amount: 50000, DueDay: 1, IsActive: true}, nil)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return(nil, domain.ErrDuesRuleNotFound)

		quote, err := f.svc.BuildRequest(context.Background(), treasurer, 20, 2)

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), quote.Amount)
	})
}

func TestCreatePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	joined := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	member := &model.User{ID: 20, Role: model.RoleResident, CommunityGroupID: 2, CreatedAt: joined}

	t.Run("creates a pending transaction and charges the gateway", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		rt := &model.CommunityGroup{ID: 2, Type: model.GroupTypeRT, ParentID: uintPtr(1)}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil).Times(2)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(20)).
			Return(nil, domain.ErrPaymentNotFound)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(2)).
			Return(&model.DuesRule{GroupID: 2, Amount: 50000, DueDay: 1, IsActive: true}, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)
		f.rules.EXPECT().FindByGroup(gomock.Any(), uint(1)).
			Return(nil, domain.ErrDuesRuleNotFound)
		f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *model.PaymentTransaction) error {
				assert.NotEmpty(t, tx.OrderRef)
				assert.Equal(t, int64(100000), tx.Amount)
				assert.Equal(t, model.PaymentStatusPending, tx.Status)
				return nil
			})

		tx, err := f.svc.Create(context.Background(), member, 20, 2)

		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/redirect", tx.RedirectURL)
		assert.Len(t, f.charger.requests, 1)
		assert.Equal(t, int64(100000), f.charger.requests[0].GrossAmount)
	})

	t.Run("existing pending transaction is returned unchanged", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		pending := &model.PaymentTransaction{
			ID:       7,
			OrderRef: "order-777",
			UserID:   20,
			Amount:   100000,
			Months:   2,
			Status:   model.PaymentStatusPending,
		}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.payments.EXPECT().FindPendingByUser(gomock.Any(), uint(20)).Return(pending, nil)
		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(pending, nil)

		tx, err := f.svc.Create(context.Background(), member, 20, 5)

		assert.NoError(t, err)
		assert.Equal(t, "order-777", tx.OrderRef)
		assert.Empty(t, f.charger.requests)
	})

	t.Run("cross-tenant officer is rejected", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)

		outsider := &model.User{ID: 30, Role: model.RoleLeader, CommunityGroupID: 99}
		rwOther := &model.CommunityGroup{ID: 99, Type: model.GroupTypeRW}
		rt := &model.CommunityGroup{ID: 2, Type: model.GroupTypeRT, ParentID: uintPtr(1)}

		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(99)).Return(rwOther, nil)
		f.groups.EXPECT().FindByID(gomock.Any(), uint(2)).Return(rt, nil)

		_, err := f.svc.Create(context.Background(), outsider, 20, 2)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestHandlePaymentNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	joined := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	member := &model.User{ID: 20, Role: model.RoleResident, CommunityGroupID: 2, CreatedAt: joined}

	pending := func() *model.PaymentTransaction {
		return &model.PaymentTransaction{
			ID:             7,
			OrderRef:       "order-777",
			UserID:         20,
			Amount:         150000,
			Months:         3,
			BaselinePeriod: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			TargetPeriod:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			Status:         model.PaymentStatusPending,
		}
	}

	t.Run("settlement writes one contribution per covered month", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := pending()

		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(tx, nil)
		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 5).Return(false, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 6).Return(false, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 7).Return(false, nil)
		f.payments.EXPECT().Settle(gomock.Any(), tx, gomock.Any(), time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)).
			DoAndReturn(func(_ context.Context, _ *model.PaymentTransaction, contributions []*model.Contribution, _ time.Time) error {
				assert.Len(t, contributions, 3)
				assert.Equal(t, 5, contributions[0].Month)
				assert.Equal(t, 7, contributions[2].Month)
				assert.Equal(t, int64(50000), contributions[0].Amount)
				return nil
			})

		err := f.svc.HandleNotification(context.Background(), gateway.Notification{
			OrderRef:          "order-777",
			TransactionStatus: "settlement",
		})

		assert.NoError(t, err)
	})

	t.Run("months already itemized are skipped", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := pending()

		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(tx, nil)
		f.users.EXPECT().FindByID(gomock.Any(), uint(20)).Return(member, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 5).Return(true, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 6).Return(false, nil)
		f.contributions.EXPECT().Exists(gomock.Any(), uint(20), 2025, 7).Return(false, nil)
		f.payments.EXPECT().Settle(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *model.PaymentTransaction, contributions []*model.Contribution, _ time.Time) error {
				assert.Len(t, contributions, 2)
				return nil
			})

		err := f.svc.HandleNotification(context.Background(), gateway.Notification{
			OrderRef:          "order-777",
			TransactionStatus: "settlement",
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate settlement of a settled transaction is a no-op", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := pending()
		tx.Status = model.PaymentStatusSettled

		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(tx, nil)

		err := f.svc.HandleNotification(context.Background(), gateway.Notification{
			OrderRef:          "order-777",
			TransactionStatus: "settlement",
		})

		assert.NoError(t, err)
	})

	t.Run("expiry closes the transaction", func(t *testing.T) {
		f := newPaymentFixture(ctrl, nil)
		tx := pending()

		f.payments.EXPECT().FindByOrderRef(gomock.Any(), "order-777").Return(tx, nil)
		f.payments.EXPECT().UpdateStatus(gomock.Any(), uint(7), model.PaymentStatusExpired).Return(nil)

		err := f.svc.HandleNotification(context.Background(), gateway.Notification{
			OrderRef:          "order-777",
			TransactionStatus: "expire",
		})

		assert.NoError(t, err)
	})
}
