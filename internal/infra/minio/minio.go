package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Storage 基于 MinIO/S3 的媒体存储，所有对象放在同一个 Bucket 下按目录区分
type Storage struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	now    func() time.Time
}

// New 创建 MinIO 客户端并确保 Bucket 存在
func New(cfg *config.MinIOConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.Bucket))
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
		zap.Duration("presign_expiry", cfg.PresignDuration()),
	)

	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		expiry: cfg.PresignDuration(),
		now:    time.Now,
	}, nil
}

// Put 上传文件到 dir 目录，返回对象键
func (s *Storage) Put(ctx context.Context, dir, filename, contentType string, size int64, r io.Reader) (string, error) {
	key := ObjectKey(dir, filename, s.now())
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	logger.Debug("Object uploaded", zap.String("key", key), zap.Int64("size", size))
	return key, nil
}

// SignedURL 生成预签名下载 URL
func (s *Storage) SignedURL(ctx context.Context, key string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expiry, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned url: %w", err)
	}
	return presigned.String(), nil
}

// ObjectKey 生成 dir/<毫秒时间戳>-<随机串>-<文件名>，同名文件同一毫秒上传也不会覆盖
func ObjectKey(dir, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s/%d-%s-%s", dir, now.UnixMilli(), uuid.NewString()[:8], name)
}
