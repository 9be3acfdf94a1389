package api

import (
	"errors"
	"net/http"

	"corral-store/internal/handler/dto/request"
	resdto "corral-store/internal/handler/dto/response"
	"corral-store/internal/handler/middleware"
	"corral-store/internal/pkg/config"
	"corral-store/internal/pkg/cookie"
	"corral-store/internal/pkg/jwt"
	"corral-store/internal/state"
	"corral-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth       commands.AuthCommands
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
	sessions   *state.Registry
}

func NewAuthHandler(auth commands.AuthCommands, jwtService *jwt.Service, cookieCfg config.CookieConfig, sessions *state.Registry) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		jwtService: jwtService,
		cookieCfg:  cookieCfg,
		sessions:   sessions,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrUserNotFound),
			errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	// Discard the storefront session too; the next login starts from a
	// fresh catalog and an empty cart.
	if userID, ok := middleware.GetUserID(c); ok {
		h.sessions.Drop(userID)
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	rm, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, rm)
}
