package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHostUploader_PostsMultipartAndReadsSecureURL(t *testing.T) {
	// ARRANGE: a fake hosted endpoint capturing the multipart payload
	var gotFile, gotPreset string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		if _, header, err := r.FormFile("file"); err == nil {
			gotFile = header.Filename
		}
		gotPreset = r.FormValue("upload_preset")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/img.jpg","url":"http://cdn.example.com/img.jpg"}`))
	}))
	defer srv.Close()

	uploader := NewHostUploader(srv.URL, "preset-1")
	defer uploader.Close()

	// ACT
	result, err := uploader.UploadImage(context.Background(), "avatars", "me.jpg", []byte("fake-bytes"), "image/jpeg")

	// ASSERT
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.URL != "https://cdn.example.com/img.jpg" {
		t.Errorf("url = %q, want the secure variant", result.URL)
	}
	if gotFile != "me.jpg" {
		t.Errorf("uploaded filename = %q, want me.jpg", gotFile)
	}
	if gotPreset != "preset-1" {
		t.Errorf("upload_preset = %q, want preset-1", gotPreset)
	}
}

func TestHostUploader_FallsBackToPlainURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"http://cdn.example.com/img.jpg"}`))
	}))
	defer srv.Close()

	uploader := NewHostUploader(srv.URL, "")
	defer uploader.Close()

	result, err := uploader.UploadImage(context.Background(), "posts", "p.jpg", []byte("x"), "image/jpeg")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.URL != "http://cdn.example.com/img.jpg" {
		t.Errorf("url = %q, want plain url fallback", result.URL)
	}
}

func TestHostUploader_RejectedUploadSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid preset"))
	}))
	defer srv.Close()

	uploader := NewHostUploader(srv.URL, "bad")
	defer uploader.Close()

	_, err := uploader.UploadImage(context.Background(), "posts", "p.jpg", []byte("x"), "image/jpeg")

	if err == nil {
		t.Fatal("expected error for rejected upload")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "invalid preset") {
		t.Errorf("error = %v, want status and server message", err)
	}
}
