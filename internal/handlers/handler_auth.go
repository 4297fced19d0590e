package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
	"github.com/vendorkhata/vendor_khata_app/internal/platform/config"
	"github.com/vendorkhata/vendor_khata_app/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	jwtSecret    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		jwtSecret:    cfg.JWTSecret,
	}
}

// registerAuthRoutes sets up the public authentication routes with per-IP
// rate limiting on the credential endpoints.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", limitMiddleware, h.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.Logout)
	}

	registerGoogleOAuthRoutes(auth, limitMiddleware, services)
}

// issueTokenPair generates an access/refresh token pair and persists the
// refresh token hash.
func (h *AuthHandler) issueTokenPair(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(*user),
	}, nil
}

// Register godoc
// @Summary Register a new account
// @Description Self-registers a login and returns an access/refresh token pair. Branch or vendor access is granted later by an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	resp, err := h.issueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	resp, err := h.issueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Refresh an access token
// @Description Exchanges a valid refresh token for a new token pair. The old refresh token is rotated out.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	// The access token may be expired; we only need its subject claim to
	// know which user's stored refresh hash to compare against.
	userID, ok := subjectFromBearer(c, h.jwtSecret)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to validate refresh token")
		return
	}

	resp, err := h.issueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}

	logger.Info("Tokens refreshed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token for the authenticated user.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to log out")
		return
	}

	logger.Info("User logged out", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}

// subjectFromBearer extracts the subject claim from the bearer token without
// enforcing expiry. The signature is still verified.
func subjectFromBearer(c *gin.Context, secret string) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(authHeader[7:], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
