package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"socialnet-client/internal/config"
	"socialnet-client/internal/model"
)

// ObjectUploader puts images straight into S3-compatible storage
// (Cloudflare R2) for deployments that host their own media.
type ObjectUploader struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

func NewObjectUploader(ctx context.Context, cfg *config.Config) (*ObjectUploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for R2: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &ObjectUploader{
		s3Client:  s3Client,
		bucket:    cfg.R2BucketName,
		publicURL: strings.TrimSuffix(cfg.R2PublicURL, "/"),
	}, nil
}

// UploadImage stores the image under a fresh key in the given folder and
// returns the public URL.
func (u *ObjectUploader) UploadImage(ctx context.Context, folder, filename string, data []byte, contentType string) (*model.UploadResult, error) {
	ext := extensionFor(contentType)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := u.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(model.AvatarCacheControl),
	})
	if err != nil {
		return nil, fmt.Errorf("upload to object storage: %w", err)
	}

	return &model.UploadResult{
		URL: fmt.Sprintf("%s/%s", u.publicURL, key),
		Key: key,
	}, nil
}

// DeleteObject removes an uploaded object by key. Hosted uploads have no
// key, so callers skip empty ones.
func (u *ObjectUploader) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := u.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from object storage: %w", err)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return model.AvatarExt
	}
}
