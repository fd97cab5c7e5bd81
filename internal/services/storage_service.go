package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/config"
)

// StorageService 把上传的图片转存到 Supabase Storage，
// 返回的公开URL在新闻/评论里当作不透明的 image 字符串使用
type StorageService struct {
	cfg    config.StorageConfig
	client *http.Client
}

func NewStorageService() *StorageService {
	return &StorageService{
		cfg: config.AppConfig.Storage,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadImage 上传文件内容，返回公开访问的URL
func (s *StorageService) UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	if s.cfg.ProjectURL == "" || s.cfg.Bucket == "" {
		return "", errors.New("storage is not configured")
	}

	// 文件名加时间戳前缀避免覆盖
	objectPath := fmt.Sprintf("%d_%s", time.Now().UnixNano(), path.Base(filename))
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.cfg.ProjectURL, s.cfg.Bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, content)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ServiceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage responded with %d: %s", resp.StatusCode, string(body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.cfg.ProjectURL, s.cfg.Bucket, objectPath)
	return publicURL, nil
}
