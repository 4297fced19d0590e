package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
	"github.com/vendorkhata/vendor_khata_app/internal/utils"
)

// googleOAuthHandler handles Google sign-in for the mobile client.
type googleOAuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleOAuthSvcFacade
}

// registerGoogleOAuthRoutes registers Google sign-in routes under the auth
// group with the same rate limit as credential login.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, limitMiddleware gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		userService:   services.User,
		tokenService:  services.Token,
		googleService: services.GoogleOAuth,
	}

	google := auth.Group("/google")
	{
		google.POST("/exchange-code", limitMiddleware, h.exchangeCode)
		google.POST("/id-token", limitMiddleware, h.signInWithIDToken)
	}
}

// exchangeCode godoc
// @Summary Sign in with a Google authorization code
// @Description Exchanges an OAuth authorization code for an application token pair, provisioning the user if needed.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.googleService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	userInfo, err := h.googleService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Warn("Google userinfo fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}
	if !userInfo.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	h.completeSignIn(c, userInfo.Email, userInfo.Name)
}

// signInWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates a Google ID token obtained client side and returns an application token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/id-token [post]
func (h *googleOAuthHandler) signInWithIDToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.googleService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); !verified || email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	h.completeSignIn(c, email, name)
}

func (h *googleOAuthHandler) completeSignIn(c *gin.Context, email, name string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), email, name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in with Google")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	if err := h.userService.UpdateRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(*user),
	})
}
