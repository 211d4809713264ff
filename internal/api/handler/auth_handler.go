package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// AuthHandler account and session endpoints
type AuthHandler struct {
	authSvc service.AuthService
	errorResponder
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService, e errorResponder) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, errorResponder: e}
}

// Register creates an account and signs it in
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "User registered successfully", result)
}

// Login signs in with email, password and role
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Login successful", result)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the bearer token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := tokenIdentity(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Logged out successfully", nil)
}

// Verify echoes the identity behind the bearer token
// GET /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	// empty for accounts whose role has no canonical form
	role := c.GetString(ctxRole)

	response.OK(c, dto.VerifyResponse{ID: userID, Name: c.GetString(ctxUserName), Role: role})
}

// GetProfile GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateProfile PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Profile updated successfully", user)
}

// ChangePassword PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Password changed successfully", nil)
}
