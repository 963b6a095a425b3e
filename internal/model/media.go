package model

import "errors"

// UploadResult is returned by the media uploader after a successful upload.
// Key is empty for hosted uploads where the client holds no object handle.
type UploadResult struct {
	URL string
	Key string
}

// Avatar normalization targets. Avatars are downscaled client-side before
// leaving the machine so the media host never sees the original.
const (
	AvatarWidth        = 200
	AvatarHeight       = 200
	AvatarExt          = ".jpg"
	AvatarFolder       = "avatars"
	PostImageFolder    = "posts"
	ContentTypeJPEG    = "image/jpeg"
	AvatarCacheControl = "public, max-age=31536000"

	MaxAvatarSizeBytes = 5 * 1024 * 1024
	MaxImageSizeBytes  = 10 * 1024 * 1024
)

// IsAllowedImageType reports whether the content type may be uploaded.
func IsAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// Media errors
var (
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidImageType = errors.New("unsupported image type")
)
