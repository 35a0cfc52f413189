package handler

import (
	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/responses"
	"sensor-ops/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login
// @Summary Sign in with a Users_DB account
// @Description Matches the credentials against the Users_DB tab and issues a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "login form"
// @Success 200 {object} dto.LoginResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Refresh
// @Summary Exchange a refresh token for a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "refresh request"
// @Success 200 {object} dto.LoginResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// GetMe
// @Summary Current identity from the access token
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userInfo, exists := c.Get("user")
	if !exists {
		responses.ErrorWithCode(c, responses.CodeUnauthorized, "not signed in")
		return
	}

	responses.Success(c, userInfo)
}

// GetViews
// @Summary Menu entries available to the caller's role
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ViewsResponse
// @Router /api/v1/auth/views [get]
func (h *AuthHandler) GetViews(c *gin.Context) {
	role := c.GetString("role")
	responses.Success(c, &dto.ViewsResponse{
		Role:  role,
		Views: h.authService.ViewsFor(role),
	})
}
