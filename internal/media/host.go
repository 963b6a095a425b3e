package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"socialnet-client/internal/model"
)

// HostUploader posts the file to a hosted upload endpoint (Cloudinary-style)
// and reads the stable URL out of the response.
type HostUploader struct {
	http   *resty.Client
	url    string
	preset string
}

func NewHostUploader(uploadURL, preset string) *HostUploader {
	return &HostUploader{
		http:   resty.New().SetTimeout(60 * time.Second),
		url:    uploadURL,
		preset: preset,
	}
}

func (u *HostUploader) Close() error {
	return u.http.Close()
}

type hostUploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// UploadImage sends the image as multipart form data. The folder is folded
// into the file name; hosted endpoints organize by preset, not by key.
func (u *HostUploader) UploadImage(ctx context.Context, folder, filename string, data []byte, contentType string) (*model.UploadResult, error) {
	req := u.http.R().
		WithContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetResult(&hostUploadResponse{})

	if u.preset != "" {
		req.SetFormData(map[string]string{"upload_preset": u.preset})
	}

	res, err := req.Post(u.url)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("upload rejected with status %d: %s", res.StatusCode(), strings.TrimSpace(res.String()))
	}

	result := res.Result().(*hostUploadResponse)
	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return nil, fmt.Errorf("upload response carried no URL")
	}

	return &model.UploadResult{URL: url}, nil
}
