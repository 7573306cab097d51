package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/apperror"
	"helpdesk/internal/auth"
	"helpdesk/internal/config"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
	"helpdesk/pkg/timer"
	"helpdesk/pkg/util"
)

// AuthService handles signup and login
type AuthService struct {
	users repository.IUserRepository
	otp   *OTPService
	cfg   *config.Config
}

func NewAuthService(users repository.IUserRepository, otp *OTPService, cfg *config.Config) *AuthService {
	return &AuthService{users: users, otp: otp, cfg: cfg}
}

// SignupRequest carries the registration fields; Username is the
// verified email address.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
	Role     string `json:"role"`
	Branch   string `json:"branch"`
}

// LoginResult is what a successful authentication yields
type LoginResult struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

// Signup verifies the OTP and creates the account. The stored
// credential is always a fresh bcrypt hash.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*model.User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))

	ok, err := s.otp.Verify(ctx, username, req.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrInvalidOTP
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists
	}

	role := model.NormalizeRole(req.Role)
	if role == "" {
		role = model.RoleCustomer
	}
	if !model.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrInvalidInput, req.Role)
	}
	branch := req.Branch
	if branch == "" {
		branch = model.DefaultCustomerBranch
	}

	hash, err := util.HashPassword(req.Password, s.cfg.BCryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Username: username,
		Password: hash,
		Role:     role,
		Branch:   branch,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}

	if err := s.otp.Consume(ctx, username); err != nil {
		// The account exists; a stale OTP record only wastes space.
		return user, nil
	}
	return user, nil
}

// Login authenticates the user and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	defer timer.Track("Login")()

	username = strings.TrimSpace(strings.ToLower(username))

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	// Hash comparison first, then the legacy plaintext bridge for
	// pre-hashing accounts. The legacy record is not upgraded on
	// success; see DESIGN.md.
	if !util.VerifyPassword(password, user.Password) {
		return nil, apperror.ErrInvalidCredential
	}

	user.Role = model.NormalizeRole(user.Role)

	ttl := time.Duration(s.cfg.JWT.TTLHours) * time.Hour
	token, err := auth.GenerateToken(s.cfg.JWT.Secret, ttl, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{Token: token, User: user.ToResponse()}, nil
}
