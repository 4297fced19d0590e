package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes. Management routes
// are restricted to super admins; a user may always read themselves.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	adminOnly := middleware.RequireRole(userService, domain.RoleSuperAdmin)

	users := rg.Group("/users")
	{
		users.GET("", adminOnly, h.listUsers)
		users.POST("", adminOnly, h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", adminOnly, h.updateUser)
		users.DELETE("/:id", adminOnly, h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a login. BRANCH users need a branchName, VENDOR users a vendorID. Super admins only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdUser, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(*createdUser))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Users may read their own record; super admins may read anyone.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if loggedInUserID != targetID {
		requester, err := h.userService.GetUserByID(c.Request.Context(), loggedInUserID)
		if err != nil || requester.Role != domain.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// updateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
