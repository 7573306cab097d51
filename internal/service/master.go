package service

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/apperror"
	"helpdesk/internal/model"
	"helpdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
)

// MasterService manages the reference data: branches, categories and
// departments. Pure data entry; the only invariant is name
// uniqueness.
type MasterService struct {
	branches    generic.BaseRepository[*model.Branch]
	categories  generic.BaseRepository[*model.Category]
	departments generic.BaseRepository[*model.Department]
}

func NewMasterService(
	branches generic.BaseRepository[*model.Branch],
	categories generic.BaseRepository[*model.Category],
	departments generic.BaseRepository[*model.Department],
) *MasterService {
	return &MasterService{branches: branches, categories: categories, departments: departments}
}

// Branch request forms

type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Active   *bool  `json:"active"`
}

type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Type     *string `json:"type"`
	Active   *bool   `json:"active"`
}

func (s *MasterService) ListBranches(ctx context.Context) ([]*model.Branch, error) {
	branches, err := s.branches.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return branches, nil
}

func (s *MasterService) CreateBranch(ctx context.Context, req *CreateBranchRequest) (*model.Branch, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: branch name required", apperror.ErrInvalidInput)
	}
	if !model.IsValidBranchType(req.Type) {
		return nil, fmt.Errorf("%w: unknown branch type %q", apperror.ErrInvalidInput, req.Type)
	}

	_, exists, err := s.branches.FindOne(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: branch %q", apperror.ErrAlreadyExists, name)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	branch := &model.Branch{
		Name:     name,
		Location: req.Location,
		Type:     req.Type,
		Active:   active,
	}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return branch, nil
}

func (s *MasterService) UpdateBranch(ctx context.Context, id string, req *UpdateBranchRequest) (*model.Branch, error) {
	fields := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: branch name required", apperror.ErrInvalidInput)
		}
		fields["name"] = name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Type != nil {
		if !model.IsValidBranchType(*req.Type) {
			return nil, fmt.Errorf("%w: unknown branch type %q", apperror.ErrInvalidInput, *req.Type)
		}
		fields["type"] = *req.Type
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", apperror.ErrInvalidInput)
	}

	branch, err := s.branches.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: branch %s", apperror.ErrNotFound, id)
	}
	return branch, nil
}

// Category operations

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

func (s *MasterService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categories.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return categories, nil
}

func (s *MasterService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", apperror.ErrInvalidInput)
	}

	_, exists, err := s.categories.FindOne(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: category %q", apperror.ErrAlreadyExists, name)
	}

	catType := req.Type
	if catType == "" {
		catType = "General"
	}
	category := &model.Category{Name: name, Type: catType}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return category, nil
}

// Department operations

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *MasterService) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	departments, err := s.departments.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return departments, nil
}

func (s *MasterService) CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*model.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name required", apperror.ErrInvalidInput)
	}

	_, exists, err := s.departments.FindOne(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: department %q", apperror.ErrAlreadyExists, name)
	}

	department := &model.Department{Name: name}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return department, nil
}
