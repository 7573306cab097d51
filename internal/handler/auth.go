package handler

import (
	"net/http"
	"strings"

	"helpdesk/internal/config"
	"helpdesk/internal/model"
	"helpdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles OTP issuance, signup and login
type AuthHandler struct {
	auth *service.AuthService
	otp  *service.OTPService
}

func NewAuthHandler(auth *service.AuthService, otp *service.OTPService) *AuthHandler {
	return &AuthHandler{auth: auth, otp: otp}
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.Email) > config.MaxEmailLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email exceeds maximum length", ""))
		return
	}

	// The code travels by mail only; the response never carries it.
	if _, err := h.otp.Issue(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("OTP sent to email. Check your inbox.", nil))
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("User created successfully", user.ToResponse()))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Login successful", result))
}
