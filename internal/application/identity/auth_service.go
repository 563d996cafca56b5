package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated users.
// Implemented by the JWT service in infrastructure/auth.
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// Login throttling
const (
	maxFailedAttempts = 5
	lockDuration      = 15 * time.Minute
)

// AuthService handles registration, login, and profile/role management
type AuthService struct {
	userRepo identity.UserRepository
	issuer   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, issuer TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// RegisterOrLogin signs in an existing account or creates a new customer
// account on first sight of the email address.
func (s *AuthService) RegisterOrLogin(ctx context.Context, req RegisterOrLoginRequest, ip string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		return s.register(ctx, req, ip)
	}
	return s.login(ctx, user, req.Password, ip)
}

func (s *AuthService) register(ctx context.Context, req RegisterOrLoginRequest, ip string) (*AuthResponse, error) {
	user, err := identity.NewUser(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user.RecordLoginSuccess(ip)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("new account registered", zap.String("email", user.Email))

	return s.issueFor(user, true)
}

func (s *AuthService) login(ctx context.Context, user *identity.User, password, ip string) (*AuthResponse, error) {
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "This account is temporarily locked")
	}

	if !user.VerifyPassword(password) {
		locked := user.RecordLoginFailure(maxFailedAttempts, lockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Warn("failed to record login failure", zap.Error(err))
		}
		if locked {
			s.logger.Warn("account locked after repeated failures", zap.String("email", user.Email))
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Email or password is incorrect")
	}

	user.RecordLoginSuccess(ip)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.issueFor(user, false)
}

func (s *AuthService) issueFor(user *identity.User, created bool) (*AuthResponse, error) {
	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
		Created:   created,
	}, nil
}

// GetProfile returns the caller's profile
func (s *AuthService) GetProfile(ctx context.Context, caller authctx.Caller) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile saves the caller's profile edits
func (s *AuthService) UpdateProfile(ctx context.Context, caller authctx.Caller, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if err := user.SetDisplayName(*req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Bio != nil {
		user.SetBio(*req.Bio)
	}
	if req.AvatarKey != nil {
		if err := user.SetAvatarKey(*req.AvatarKey); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// GetRole returns the caller's current role, read from the stored account
// rather than the token claims.
func (s *AuthService) GetRole(ctx context.Context, caller authctx.Caller) (identity.Role, error) {
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsAdmin reports whether the caller holds the admin role
func (s *AuthService) IsAdmin(ctx context.Context, caller authctx.Caller) (bool, error) {
	role, err := s.GetRole(ctx, caller)
	if err != nil {
		return false, err
	}
	return role == identity.RoleAdmin, nil
}

// AssignRole changes another user's role. Admin only.
func (s *AuthService) AssignRole(ctx context.Context, caller authctx.Caller, targetID uuid.UUID, req AssignRoleRequest) (*UserResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := user.AssignRole(identity.Role(req.Role)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("role assigned",
		zap.String("target", user.Email),
		zap.String("role", req.Role),
		zap.String("assigned_by", caller.Identity()))

	resp := ToUserResponse(user)
	return &resp, nil
}

// ListUsers returns all accounts. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, caller authctx.Caller, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, ToUserResponse(&users[i]))
	}

	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}
