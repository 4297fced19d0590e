package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
)

const maxUploadSizeBytes int64 = 5 * 1024 * 1024

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// uploadService stores purchase photos in Google Cloud Storage and generates
// a jpeg thumbnail alongside each upload.
type uploadService struct {
	BaseService
	client     *storage.Client
	bucketName string
}

// NewUploadService creates a new upload service around an existing GCS client.
func NewUploadService(client *storage.Client, bucketName string) portssvc.UploadSvcFacade {
	return &uploadService{
		client:     client,
		bucketName: bucketName,
	}
}

var _ portssvc.UploadSvcFacade = (*uploadService)(nil)

// UploadPurchasePhoto stores an image and returns its public URL plus a
// thumbnail URL. The photo is read fully into memory; uploads are capped at
// 5 MB so this is bounded.
func (s *uploadService) UploadPurchasePhoto(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*portssvc.UploadResult, error) {
	if s.client == nil || s.bucketName == "" {
		return nil, apperrors.NewAppError(503, "photo storage is not configured", nil)
	}
	if !imageMimeTypes[contentType] {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unsupported file type: %s", contentType), apperrors.ErrValidation)
	}
	if size > maxUploadSizeBytes {
		return nil, apperrors.NewAppError(400, "file exceeds the 5 MB upload limit", apperrors.ErrValidation)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxUploadSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body: %w", err)
	}
	if int64(len(data)) > maxUploadSizeBytes {
		return nil, apperrors.NewAppError(400, "file exceeds the 5 MB upload limit", apperrors.ErrValidation)
	}

	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("purchases/%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)

	if err := s.writeObject(ctx, objectKey, contentType, data); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	result := &portssvc.UploadResult{
		PhotoURL:  s.publicURL(objectKey),
		ObjectKey: objectKey,
	}

	// Thumbnail failures are non-fatal; the full-size photo is already stored.
	thumbKey, err := s.writeThumbnail(ctx, objectKey, data)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate thumbnail", slog.String("object_key", objectKey))
	} else {
		result.ThumbnailURL = s.publicURL(thumbKey)
	}

	s.LogInfo(ctx, "Purchase photo uploaded", slog.String("object_key", objectKey), slog.Int("bytes", len(data)))
	return result, nil
}

// DeletePurchasePhoto removes a stored object and its thumbnail by key.
func (s *uploadService) DeletePurchasePhoto(ctx context.Context, objectKey string) error {
	if s.client == nil || s.bucketName == "" {
		return apperrors.NewAppError(503, "photo storage is not configured", nil)
	}

	if err := s.client.Bucket(s.bucketName).Object(objectKey).Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	// Thumbnail absence is fine, it may never have been generated.
	_ = s.client.Bucket(s.bucketName).Object(thumbnailKey(objectKey)).Delete(ctx)

	return nil
}

func (s *uploadService) writeObject(ctx context.Context, objectKey, contentType string, data []byte) error {
	wc := s.client.Bucket(s.bucketName).Object(objectKey).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return err
	}
	return wc.Close()
}

func (s *uploadService) writeThumbnail(ctx context.Context, objectKey string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	thumbKey := thumbnailKey(objectKey)
	if err := s.writeObject(ctx, thumbKey, "image/jpeg", buf.Bytes()); err != nil {
		return "", err
	}
	return thumbKey, nil
}

func (s *uploadService) publicURL(objectKey string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectKey)
}

func thumbnailKey(objectKey string) string {
	ext := path.Ext(objectKey)
	return strings.TrimSuffix(objectKey, ext) + "_thumb.jpg"
}
