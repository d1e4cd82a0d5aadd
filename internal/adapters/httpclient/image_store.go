package httpclient

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CloudinaryStore uploads images through Cloudinary's signed upload API.
type CloudinaryStore struct {
	http      *http.Client
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload stores content under folder and returns its https URL.
func (s *CloudinaryStore) Upload(ctx context.Context, folder, filename string, content io.Reader) (string, error) {
	u, err := url.JoinPath(s.baseURL, "v1_1", s.cloudName, "image", "upload")
	if err != nil {
		return "", fmt.Errorf("failed to build upload URL: %w", err)
	}

	timestamp := strconv.FormatInt(s.now().Unix(), 10)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"api_key", s.apiKey},
		{"folder", folder},
		{"timestamp", timestamp},
		{"signature", s.sign(folder, timestamp)},
	}
	for _, f := range fields {
		if err = mw.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err = io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to copy image %q: %w", filename, err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var body uploadResponse
	if err = doJSON(s.http, req, &body, fmt.Sprintf("image %q", filename)); err != nil {
		return "", err
	}
	if body.SecureURL == "" {
		return "", errors.New("upload response has no secure_url")
	}
	return body.SecureURL, nil
}

// sign follows Cloudinary's scheme: sorted params joined by '&', then the secret, sha1 hex.
func (s *CloudinaryStore) sign(folder, timestamp string) string {
	sum := sha1.Sum([]byte("folder=" + folder + "&timestamp=" + timestamp + s.apiSecret))
	return hex.EncodeToString(sum[:])
}

func NewCloudinaryStore(httpClient *http.Client, baseURL, cloudName, apiKey, apiSecret string) *CloudinaryStore {
	return &CloudinaryStore{
		http:      httpClient,
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}
