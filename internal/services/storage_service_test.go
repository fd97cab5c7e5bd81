package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestUploadImage(t *testing.T) {
	// 1. 模拟 Supabase Storage 的上传接口
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.URL.Path, "/storage/v1/object/news-images/"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	// 2. 指向模拟服务器
	s := &StorageService{
		cfg: config.StorageConfig{
			ProjectURL: mockServer.URL,
			Bucket:     "news-images",
			ServiceKey: "test-key",
		},
		client: &http.Client{Timeout: 5 * time.Second},
	}

	// 3. 上传并断言返回的公开URL
	url, err := s.UploadImage(context.Background(), "photo.png", "image/png", strings.NewReader("fake image bytes"))
	assert.NoError(t, err)
	assert.Contains(t, url, mockServer.URL+"/storage/v1/object/public/news-images/")
	assert.Contains(t, url, "photo.png")
}

func TestUploadImageServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer mockServer.Close()

	s := &StorageService{
		cfg: config.StorageConfig{
			ProjectURL: mockServer.URL,
			Bucket:     "missing",
			ServiceKey: "test-key",
		},
		client: &http.Client{Timeout: 5 * time.Second},
	}

	_, err := s.UploadImage(context.Background(), "photo.png", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestUploadImageNotConfigured(t *testing.T) {
	s := &StorageService{cfg: config.StorageConfig{}}

	_, err := s.UploadImage(context.Background(), "photo.png", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
}
