// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/middleware"
	"github.com/wkalungi/sponsorbase/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	jwtService  *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login handles administrator sign-in
// @Summary Sign in
// @Description Authenticates an administrator and returns a Bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Signed in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, token, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{
			Token:     token,
			ExpiresIn: int64(c.jwtService.AccessTokenTTL().Seconds()),
			FullName:  user.FullName,
			Email:     user.Email,
		},
		Timestamp: time.Now(),
	})
}
