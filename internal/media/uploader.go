// Package media uploads images to the external media host and hands back the
// stable URL the backend stores on the user or post record. Two backends:
// a hosted upload endpoint (the default) and direct S3-compatible object
// storage for self-hosted deployments.
package media

import (
	"context"
	"fmt"

	"socialnet-client/internal/config"
	"socialnet-client/internal/model"
)

// Uploader pushes an image to the media host and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, folder, filename string, data []byte, contentType string) (*model.UploadResult, error)
}

// NewUploader picks the upload backend from configuration: object storage
// when the R2 settings are complete, the hosted endpoint otherwise. With
// neither configured the client still runs; uploads fail with a clear error.
func NewUploader(ctx context.Context, cfg *config.Config) (Uploader, error) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" && cfg.R2PublicURL != "" {
		return NewObjectUploader(ctx, cfg)
	}
	if cfg.UploadURL != "" {
		return NewHostUploader(cfg.UploadURL, cfg.UploadPreset), nil
	}
	return disabledUploader{}, nil
}

type disabledUploader struct{}

func (disabledUploader) UploadImage(context.Context, string, string, []byte, string) (*model.UploadResult, error) {
	return nil, fmt.Errorf("no media upload backend configured")
}
