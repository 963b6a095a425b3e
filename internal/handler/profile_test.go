package handler

import (
	"errors"
	"fmt"
	"testing"

	"socialnet-client/internal/model"
)

func TestUploadErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"too large", model.ErrFileTooLarge, "The image is too large."},
		{"too large wrapped", fmt.Errorf("reading avatar: %w", model.ErrFileTooLarge), "The image is too large."},
		{"bad type", model.ErrInvalidImageType, "Only JPEG, PNG, GIF and WebP images are supported."},
		{"bad type wrapped", fmt.Errorf("reading avatar: %w", model.ErrInvalidImageType), "Only JPEG, PNG, GIF and WebP images are supported."},
		{"unknown", errors.New("disk on fire"), "Could not read the uploaded file."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uploadErrorMessage(tt.err); got != tt.want {
				t.Errorf("uploadErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
