package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// purchaseHandler handles HTTP requests for purchase records.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers purchase routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a stock purchase from a vendor at a branch.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record purchase")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(*purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Description Lists purchases newest first with optional branch and vendor filters.
// @Tags purchases
// @Produce json
// @Param branchName query string false "Branch name filter"
// @Param vendorID query string false "Vendor ID filter"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	purchases, next, err := h.purchaseService.ListPurchases(c.Request.Context(), c.Query("branchName"), c.Query("vendorID"), limit, nextToken, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, dto.ListPurchasesResponse{
		Purchases: dto.ToPurchaseResponses(purchases),
		NextToken: next,
	})
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(*purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes a purchase record. Super admins only.
// @Tags purchases
// @Param id path string true "Purchase ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete purchase")
		return
	}

	c.Status(http.StatusNoContent)
}
