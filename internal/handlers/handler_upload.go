package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// uploadHandler handles purchase photo uploads.
type uploadHandler struct {
	uploadService portssvc.UploadSvcFacade
}

// registerUploadRoutes registers upload routes.
func registerUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade) {
	h := &uploadHandler{uploadService: uploadService}

	uploads := rg.Group("/uploads")
	{
		uploads.POST("/purchase-photo", h.uploadPurchasePhoto)
		uploads.DELETE("/purchase-photo/*objectKey", h.deletePurchasePhoto)
	}
}

// uploadPurchasePhoto godoc
// @Summary Upload a purchase photo
// @Description Stores a jpeg/png photo (max 5 MB) and returns its public URL plus a thumbnail URL.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo file"
// @Success 201 {object} dto.UploadPhotoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /uploads/purchase-photo [post]
func (h *uploadHandler) uploadPurchasePhoto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo form file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.UploadPurchasePhoto(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upload photo")
		return
	}

	c.JSON(http.StatusCreated, dto.UploadPhotoResponse{
		PhotoURL:     result.PhotoURL,
		ThumbnailURL: result.ThumbnailURL,
		ObjectKey:    result.ObjectKey,
	})
}

// deletePurchasePhoto godoc
// @Summary Delete a purchase photo
// @Tags uploads
// @Param objectKey path string true "Object key"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /uploads/purchase-photo/{objectKey} [delete]
func (h *uploadHandler) deletePurchasePhoto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Wildcard params carry a leading slash.
	objectKey := c.Param("objectKey")
	if len(objectKey) > 0 && objectKey[0] == '/' {
		objectKey = objectKey[1:]
	}
	if objectKey == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "objectKey is required"})
		return
	}

	if err := h.uploadService.DeletePurchasePhoto(c.Request.Context(), objectKey); err != nil {
		respondServiceError(c, logger, err, "Failed to delete photo")
		return
	}

	c.Status(http.StatusNoContent)
}
