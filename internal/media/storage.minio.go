// Package media là ranh giới với kho lưu trữ media bên ngoài (MinIO).
// Upload thất bại sẽ chặn thao tác gọi nó; xóa file là best-effort.
package media

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"video_tube/config"
	"video_tube/internal/common"
	"video_tube/internal/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage bao bọc MinIO client cùng thông tin bucket và base URL public
type Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// StoreResult là kết quả upload một file media
type StoreResult struct {
	URL      string  // URL public của file
	Duration float64 // Thời lượng (giây), chỉ có với video
}

// NewStorage khởi tạo kết nối tới MinIO và đảm bảo bucket tồn tại
func NewStorage(cfg *config.Configuration) (*Storage, error) {
	client, err := minio.New(cfg.MinIO_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO_AccessKey, cfg.MinIO_SecretKey, ""),
		Secure: cfg.MinIO_UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO_Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIO_Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO_Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIO_Bucket, err)
		}
		logger.GetAppLogger().Infof("Đã tạo bucket media: %s", cfg.MinIO_Bucket)
	}

	publicURL := cfg.MinIO_PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIO_UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIO_Endpoint)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.MinIO_Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Store upload một file local lên kho lưu trữ và trả về URL public.
// Với video (probeDuration=true) sẽ probe thêm thời lượng bằng ffmpeg.
// Lỗi upload trả về common.ErrMediaUpload để handler chuyển thành 502.
func (s *Storage) Store(ctx context.Context, localFile string, probeDuration bool) (*StoreResult, error) {
	if localFile == "" {
		return nil, common.ErrInvalidInput
	}

	ext := filepath.Ext(localFile)
	objectKey := fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result := &StoreResult{}

	// Probe thời lượng trước khi upload: file hỏng thì khỏi tốn băng thông
	if probeDuration {
		duration, err := ProbeDuration(localFile)
		if err != nil {
			logger.GetAppLogger().WithError(err).Warnf("Không probe được thời lượng video: %s", localFile)
		} else {
			result.Duration = duration
		}
	}

	_, err := s.client.FPutObject(ctx, s.bucket, objectKey, localFile, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.GetAppLogger().WithError(err).Errorf("Upload media thất bại: %s", localFile)
		return nil, common.NewError(common.ErrCodeMediaUpstream, common.MsgMediaUpload, common.StatusBadGateway, err.Error())
	}

	result.URL = fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey)
	return result, nil
}

// Remove xóa một file media theo URL public. Best-effort: lỗi chỉ log warn,
// trả về false và không chặn thao tác gọi nó.
func (s *Storage) Remove(ctx context.Context, fileURL string) bool {
	objectKey := s.objectKeyFromURL(fileURL)
	if objectKey == "" {
		return false
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Xóa media thất bại: %s", fileURL)
		return false
	}
	return true
}

// objectKeyFromURL trích xuất object key từ URL public của media
func (s *Storage) objectKeyFromURL(fileURL string) string {
	prefix := fmt.Sprintf("%s/%s/", s.publicURL, s.bucket)
	if !strings.HasPrefix(fileURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(fileURL, prefix)
}
