// internal/service/fund_request.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// FundRequestService handles RT officers requesting community funds and the
// RW LEADER deciding those requests.
type FundRequestService struct {
	requests  repository.FundRequestRepositoryIface
	hierarchy *HierarchyService
	audit     audit.Logger
	validate  *validator.Validate
}

func NewFundRequestService(
	requests repository.FundRequestRepositoryIface,
	hierarchy *HierarchyService,
	auditLogger audit.Logger,
) *FundRequestService {
	return &FundRequestService{
		requests:  requests,
		hierarchy: hierarchy,
		audit:     auditLogger,
		validate:  validator.New(),
	}
}

type SubmitFundRequestInput struct {
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Purpose string `json:"purpose" validate:"required,min=3"`
}

// Submit files a fund request against the actor's own group.
func (s *FundRequestService) Submit(ctx context.Context, actor *model.User, input SubmitFundRequestInput) (*model.FundRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if !authz.Can(actor.Role, authz.CapSubmitFundRequest) {
		return nil, fmt.Errorf("%w: role %s may not submit fund requests", domain.ErrForbidden, actor.Role)
	}

	request := &model.FundRequest{
		GroupID:       actor.CommunityGroupID,
		RequestedByID: actor.ID,
		Amount:        input.Amount,
		Purpose:       input.Purpose,
		Status:        model.FundRequestPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "fund_request.submit", fmt.Sprintf("group:%d", actor.CommunityGroupID),
		slog.Int64("amount", input.Amount),
	)

	return request, nil
}

// List returns the fund requests visible to the actor: every request in
// their RW tree.
func (s *FundRequestService) List(ctx context.Context, actor *model.User) ([]*model.FundRequest, error) {
	if !authz.Can(actor.Role, authz.CapViewGroupFinances) {
		return nil, fmt.Errorf("%w: role %s may not view fund requests", domain.ErrForbidden, actor.Role)
	}

	groupIDs, err := s.hierarchy.TreeGroupIDs(ctx, actor.CommunityGroupID)
	if err != nil {
		return nil, err
	}
	return s.requests.FindByGroups(ctx, groupIDs)
}

// Decide approves or rejects a pending request. Only the LEADER of the RW
// owning the request's group may decide, and a decided request stays
// decided.
func (s *FundRequestService) Decide(ctx context.Context, actor *model.User, requestID uint, approve bool, note string) (*model.FundRequest, error) {
	if !authz.Can(actor.Role, authz.CapDecideFundRequest) {
		return nil, fmt.Errorf("%w: only the community LEADER may decide fund requests", domain.ErrForbidden)
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, request.GroupID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return nil, err
	}

	status := model.FundRequestRejected
	if approve {
		status = model.FundRequestApproved
	}

	decided, err := s.requests.Decide(ctx, requestID, status, actor.ID, note)
	if err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "fund_request.decide", fmt.Sprintf("fund_request:%d", requestID),
		slog.String("status", string(status)),
	)

	return decided, nil
}
