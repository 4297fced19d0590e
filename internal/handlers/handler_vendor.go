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

// vendorHandler handles HTTP requests for vendors and their transactions.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

// registerVendorRoutes registers vendor routes.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deactivateVendor)

		vendors.POST("/:id/payments", h.recordPayment)
		vendors.POST("/:id/adjustments", h.recordAdjustment)
		vendors.GET("/:id/transactions", h.listTransactions)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Description Registers a new supplier. Super admins only.
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create vendor")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(*vendor))
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param includeInactive query bool false "Include deactivated vendors"
// @Success 200 {array} dto.VendorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vendors")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponses(vendors))
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(*vendor))
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(*vendor))
}

// deactivateVendor godoc
// @Summary Deactivate a vendor
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deactivateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.vendorService.DeactivateVendor(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate vendor")
		return
	}

	c.Status(http.StatusNoContent)
}

// recordPayment godoc
// @Summary Record a payment to a vendor
// @Description Records money paid out to the vendor, reducing the branch's outstanding balance.
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.VendorTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/payments [post]
func (h *vendorHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.vendorService.RecordPayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToVendorTransactionResponse(*txn))
}

// recordAdjustment godoc
// @Summary Record a balance adjustment for a vendor
// @Description Records a correction that increases what is owed to the vendor. The amount is supplied positive.
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param adjustment body dto.RecordAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.VendorTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/adjustments [post]
func (h *vendorHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.vendorService.RecordAdjustment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record adjustment")
		return
	}

	logger.Info("Adjustment recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToVendorTransactionResponse(*txn))
}

// listTransactions godoc
// @Summary List a vendor's transactions
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Param branchName query string false "Branch name filter"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListVendorTransactionsResponse
// @Security BearerAuth
// @Router /vendors/{id}/transactions [get]
func (h *vendorHandler) listTransactions(c *gin.Context) {
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

	txns, next, err := h.vendorService.ListVendorTransactions(c.Request.Context(), c.Param("id"), c.Query("branchName"), limit, nextToken, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vendor transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListVendorTransactionsResponse{
		Transactions: dto.ToVendorTransactionResponses(txns),
		NextToken:    next,
	})
}
