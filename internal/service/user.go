// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rukunhub/rukunhub/internal/audit"
	"github.com/rukunhub/rukunhub/internal/auth"
	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/email"
	"github.com/rukunhub/rukunhub/internal/email/mailer"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/repository"
)

// UserService manages the resident registry. Officers create accounts;
// residents never self-register.
type UserService struct {
	repo           repository.UserRepositoryIface
	groups         repository.GroupRepositoryIface
	hierarchy      *HierarchyService
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	audit          audit.Logger
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	groups repository.GroupRepositoryIface,
	hierarchy *HierarchyService,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	auditLogger audit.Logger,
) *UserService {
	return &UserService{
		repo:           repo,
		groups:         groups,
		hierarchy:      hierarchy,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		audit:          auditLogger,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and returns a signed token.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type RegisterInput struct {
	Email            string         `json:"email" validate:"required,email"`
	FullName         string         `json:"full_name" validate:"required"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	Password         string         `json:"password" validate:"required,min=8"`
	Role             model.RoleType `json:"role" validate:"required"`
	CommunityGroupID uint           `json:"community_group_id" validate:"required"`
}

// Register creates a member account inside the actor's tree. LEADERs may
// register into any group of their RW; ADMINs only into their own RT.
// Role/group pairing follows the hierarchy invariants: RESIDENTs (and RT
// officers) live in an RT, a LEADER's home group is the RW itself.
func (s *UserService) Register(ctx context.Context, actor *model.User, input RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if !model.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRoleType, input.Role)
	}

	if !authz.Can(actor.Role, authz.CapManageUsers) {
		return nil, fmt.Errorf("%w: role %s may not register members", domain.ErrForbidden, actor.Role)
	}

	target, err := s.groups.FindByID(ctx, input.CommunityGroupID)
	if err != nil {
		return nil, err
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, target.ID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return nil, err
	}

	// ADMINs manage their own sub-group only.
	if actor.Role == model.RoleAdmin && actor.CommunityGroupID != target.ID {
		return nil, fmt.Errorf("%w: sub-group admins may only register members of their own group", domain.ErrForbidden)
	}

	switch input.Role {
	case model.RoleLeader:
		if !target.IsTopLevel() {
			return nil, fmt.Errorf("%w: a LEADER's home group must be the top-level group", domain.ErrInvalidInput)
		}
	default:
		if target.IsTopLevel() {
			return nil, fmt.Errorf("%w", domain.ErrNotResidentGroup)
		}
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:            input.Email,
		PasswordHash:     hash,
		FullName:         input.FullName,
		Phone:            input.Phone,
		Address:          input.Address,
		Role:             input.Role,
		CommunityGroupID: input.CommunityGroupID,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "user.register", fmt.Sprintf("user:%d", user.ID),
		slog.String("role", string(user.Role)),
		slog.Uint64("group_id", uint64(user.CommunityGroupID)),
	)

	if s.emailService != nil {
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.FullName, target.Name); err != nil {
			slog.ErrorContext(ctx, "sending welcome email", "user_id", user.ID, "error", err)
		}
	}

	return user, nil
}

// Get returns a user in the actor's tree.
func (s *UserService) Get(ctx context.Context, actor *model.User, userID uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actor.ID != userID {
		if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, user.CommunityGroupID); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
	}
	return user, nil
}

type UpdateUserInput struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// Update edits profile fields. Users edit themselves; officers edit members
// of their scope.
func (s *UserService) Update(ctx context.Context, actor *model.User, userID uint, input UpdateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeManage(ctx, actor, user); err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Event(ctx, actor.ID, "user.update", fmt.Sprintf("user:%d", user.ID))
	return user, nil
}

// Deactivate disables an account without deleting its payment history.
func (s *UserService) Deactivate(ctx context.Context, actor *model.User, userID uint) error {
	if !authz.Can(actor.Role, authz.CapManageUsers) {
		return fmt.Errorf("%w: role %s may not deactivate members", domain.ErrForbidden, actor.Role)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.authorizeManage(ctx, actor, user); err != nil {
		return err
	}

	user.IsActive = false
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.Event(ctx, actor.ID, "user.deactivate", fmt.Sprintf("user:%d", user.ID))
	return nil
}

// ListGroupMembers returns a page of the members of a group in the actor's
// tree.
func (s *UserService) ListGroupMembers(ctx context.Context, actor *model.User, groupID uint, offset, limit int) ([]*model.User, int64, error) {
	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, groupID); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.FindByGroup(ctx, groupID, offset, limit)
}

// authorizeManage checks that actor may mutate target: self-service, or an
// officer of the right scope. Scope is evaluated fresh on every call; there
// is no session-level cache of these decisions.
func (s *UserService) authorizeManage(ctx context.Context, actor, target *model.User) error {
	if actor.ID == target.ID {
		return nil
	}

	if !authz.Can(actor.Role, authz.CapManageUsers) {
		return fmt.Errorf("%w: role %s may not manage other members", domain.ErrForbidden, actor.Role)
	}

	if err := s.hierarchy.EnsureSameTenant(ctx, actor.CommunityGroupID, target.CommunityGroupID); err != nil {
		if errors.Is(err, domain.ErrWrongTenant) {
			return fmt.Errorf("%w: %s", domain.ErrForbidden, err.Error())
		}
		return err
	}

	if actor.Role == model.RoleAdmin && actor.CommunityGroupID != target.CommunityGroupID {
		return fmt.Errorf("%w: sub-group admins may only manage members of their own group", domain.ErrForbidden)
	}

	return nil
}
