package handler

import (
	"net/http"

	"helpdesk/internal/model"
	"helpdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// MasterHandler serves the reference data: branches, categories,
// departments and the assignment user list
type MasterHandler struct {
	master *service.MasterService
	users  *service.UserService
}

func NewMasterHandler(master *service.MasterService, users *service.UserService) *MasterHandler {
	return &MasterHandler{master: master, users: users}
}

// ListBranches handles GET /api/master/branches
func (h *MasterHandler) ListBranches(c *gin.Context) {
	branches, err := h.master.ListBranches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", branches))
}

// CreateBranch handles POST /api/master/branches
func (h *MasterHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	branch, err := h.master.CreateBranch(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Branch created", branch))
}

// UpdateBranch handles PUT /api/master/branches/:id
func (h *MasterHandler) UpdateBranch(c *gin.Context) {
	var req service.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	branch, err := h.master.UpdateBranch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Branch updated", branch))
}

// ListCategories handles GET /api/master/categories
func (h *MasterHandler) ListCategories(c *gin.Context) {
	categories, err := h.master.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", categories))
}

// CreateCategory handles POST /api/master/categories
func (h *MasterHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	category, err := h.master.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Category created", category))
}

// ListDepartments handles GET /api/master/departments
func (h *MasterHandler) ListDepartments(c *gin.Context) {
	departments, err := h.master.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", departments))
}

// CreateDepartment handles POST /api/master/departments
func (h *MasterHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	department, err := h.master.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Department created", department))
}

// ListUsers handles GET /api/master/users, the assignment picker
// source. Safe fields only.
func (h *MasterHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	refs := make([]gin.H, 0, len(users))
	for _, u := range users {
		refs = append(refs, gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"personName": u.PersonName,
			"branch":     u.Branch,
			"role":       u.Role,
		})
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", refs))
}
