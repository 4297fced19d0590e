package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// ledgerHandler serves the computed vendor ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/vendor/:vendorID", h.getVendorLedger)
	}
}

// getVendorLedger godoc
// @Summary Get the ledger for a vendor at a branch
// @Description Merges the vendor's purchases and transactions for the given branch into a date-sorted ledger with the outstanding balance.
// @Tags ledger
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param branchName query string true "Branch name"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/vendor/{vendorID} [get]
func (h *ledgerHandler) getVendorLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendorID := c.Param("vendorID")
	branchName := c.Query("branchName")
	if branchName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "branchName query parameter is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.ledgerService.VendorLedger(c.Request.Context(), vendorID, branchName, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute vendor ledger")
		return
	}

	logger.Info("Vendor ledger served",
		slog.String("vendor_id", vendorID),
		slog.String("branch_name", branchName),
		slog.Int("line_count", len(result.Ledger)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToLedgerResponse(*result),
	})
}
