package services

import (
	"context"
	"io"
)

// UploadResult describes a stored purchase photo.
type UploadResult struct {
	PhotoURL     string `json:"photoUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ObjectKey    string `json:"objectKey"`
}

// UploadSvcFacade proxies purchase-photo storage to the external file store.
type UploadSvcFacade interface {
	// UploadPurchasePhoto stores an image (jpeg/png, max 5 MB) and returns
	// its public URL plus a generated thumbnail URL.
	UploadPurchasePhoto(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*UploadResult, error)
	// DeletePurchasePhoto removes a previously uploaded object by key.
	DeletePurchasePhoto(ctx context.Context, objectKey string) error
}
