package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"socialnet-client/internal/model"
)

// encodePNG builds a solid-color test image in memory.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

// =============================================================================
// READ TESTS
// =============================================================================

func TestReadImage_AcceptsDeclaredType(t *testing.T) {
	data := encodePNG(t, 10, 10)

	got, contentType, err := ReadImage(bytes.NewReader(data), "image/png", model.MaxImageSizeBytes)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q, want image/png", contentType)
	}
	if len(got) != len(data) {
		t.Errorf("read %d bytes, want %d", len(got), len(data))
	}
}

func TestReadImage_SniffsWhenNoDeclaredType(t *testing.T) {
	data := encodePNG(t, 10, 10)

	_, contentType, err := ReadImage(bytes.NewReader(data), "", model.MaxImageSizeBytes)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("sniffed content type = %q, want image/png", contentType)
	}
}

func TestReadImage_StripsTypeParameters(t *testing.T) {
	data := encodePNG(t, 10, 10)

	_, contentType, err := ReadImage(bytes.NewReader(data), "image/png; charset=binary", model.MaxImageSizeBytes)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q, want parameters stripped", contentType)
	}
}

func TestReadImage_RejectsOversizedUpload(t *testing.T) {
	data := strings.Repeat("x", 100)

	_, _, err := ReadImage(strings.NewReader(data), "image/png", 50)

	if !errors.Is(err, model.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got: %v", err)
	}
}

func TestReadImage_RejectsNonImageType(t *testing.T) {
	_, _, err := ReadImage(strings.NewReader("<html></html>"), "text/html", model.MaxImageSizeBytes)

	if !errors.Is(err, model.ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got: %v", err)
	}
}

// =============================================================================
// AVATAR NORMALIZATION TESTS
// =============================================================================

func TestNormalizeAvatar_ProducesAvatarSizedJPEG(t *testing.T) {
	// ARRANGE: a non-square source larger than the target
	data := encodePNG(t, 640, 480)

	// ACT
	out, err := NormalizeAvatar(data)

	// ASSERT
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != model.AvatarWidth || bounds.Dy() != model.AvatarHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), model.AvatarWidth, model.AvatarHeight)
	}
	if !bytes.HasPrefix(out, []byte{0xFF, 0xD8}) {
		t.Error("output is not a JPEG")
	}
}

func TestNormalizeAvatar_RejectsGarbage(t *testing.T) {
	_, err := NormalizeAvatar([]byte("definitely not an image"))

	if err == nil {
		t.Fatal("expected decode error for non-image data")
	}
}
