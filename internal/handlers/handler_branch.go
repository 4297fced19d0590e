package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// branchHandler handles HTTP requests for branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes registers branch routes.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:name", h.getBranch)
		branches.DELETE("/:name", h.deactivateBranch)
	}
}

// createBranch godoc
// @Summary Create a branch
// @Description Registers a new shop branch. Super admins only.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create branch")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBranchResponse(*branch))
}

// listBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Param includeInactive query bool false "Include deactivated branches"
// @Success 200 {array} dto.BranchResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	branches, err := h.branchService.ListBranches(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list branches")
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponses(branches))
}

// getBranch godoc
// @Summary Get a branch by name
// @Tags branches
// @Produce json
// @Param name path string true "Branch name"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{name} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branch, err := h.branchService.GetBranchByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve branch")
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(*branch))
}

// deactivateBranch godoc
// @Summary Deactivate a branch
// @Tags branches
// @Param name path string true "Branch name"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{name} [delete]
func (h *branchHandler) deactivateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.branchService.DeactivateBranch(c.Request.Context(), c.Param("name"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate branch")
		return
	}

	c.Status(http.StatusNoContent)
}
