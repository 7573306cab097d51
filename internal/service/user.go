package service

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/apperror"
	"helpdesk/internal/config"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
	"helpdesk/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService covers the identity store operations: admin user
// creation, listing and partial updates.
type UserService struct {
	users repository.IUserRepository
	cfg   *config.Config
}

func NewUserService(users repository.IUserRepository, cfg *config.Config) *UserService {
	return &UserService{users: users, cfg: cfg}
}

// CreateUserRequest is the administrative creation form (no OTP
// verification).
type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	PersonName   string `json:"personName"`
	Role         string `json:"role"`
	Branch       string `json:"branch"`
	Department   string `json:"department"`
	MobileNumber string `json:"mobileNumber"`
	IsAdmin      bool   `json:"isAdmin"`
}

// UpdateUserRequest carries the admin-editable fields; nil leaves a
// field untouched.
type UpdateUserRequest struct {
	PersonName   *string `json:"personName"`
	MobileNumber *string `json:"mobileNumber"`
	Role         *string `json:"role"`
	IsAdmin      *bool   `json:"isAdmin"`
	Branch       *string `json:"branch"`
	Department   *string `json:"department"`
}

// Create inserts a user on behalf of an administrator. The password
// is always hashed; this path never stores plaintext.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username required", apperror.ErrInvalidInput)
	}

	role := model.NormalizeRole(req.Role)
	if role == "" {
		role = model.RoleStaff
	}
	if !model.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrInvalidInput, req.Role)
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists
	}

	hash, err := util.HashPassword(req.Password, s.cfg.BCryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Username:     username,
		Password:     hash,
		PersonName:   req.PersonName,
		Role:         role,
		Branch:       req.Branch,
		Department:   req.Department,
		MobileNumber: req.MobileNumber,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return user, nil
}

// GetByID resolves a user or reports UserNotFound
func (s *UserService) GetByID(ctx context.Context, idHex string) (*model.User, error) {
	objID, err := util.ParseObjectID(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
	}
	user, err := s.users.FindByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}

// List returns every user, newest first, credentials elided
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	responses := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}

// Update applies the provided fields and returns the updated record
func (s *UserService) Update(ctx context.Context, idHex string, req *UpdateUserRequest) (*model.User, error) {
	objID, err := util.ParseObjectID(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
	}

	fields := bson.M{}
	if req.PersonName != nil {
		fields["personName"] = *req.PersonName
	}
	if req.MobileNumber != nil {
		fields["mobileNumber"] = *req.MobileNumber
	}
	if req.Role != nil {
		role := model.NormalizeRole(*req.Role)
		if !model.IsValidRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrInvalidInput, *req.Role)
		}
		fields["role"] = role
	}
	if req.IsAdmin != nil {
		fields["isAdmin"] = *req.IsAdmin
	}
	if req.Branch != nil {
		fields["branch"] = *req.Branch
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", apperror.ErrInvalidInput)
	}

	user, err := s.users.UpdateByID(ctx, objID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}
