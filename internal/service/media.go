package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

// 对象存储目录
const (
	DirProfile = "profile"
	DirBanner  = "banner"
	DirCover   = "cover"
	DirVideos  = "videos"
)

var (
	ErrInvalidImage     = errors.New("Only image files are allowed")
	ErrInvalidVideoFile = errors.New("Only video files are allowed")
)

// ObjectStorage 媒体对象存储：上传返回对象键，读取时对键签名得到临时 URL
type ObjectStorage interface {
	Put(ctx context.Context, dir, filename, contentType string, size int64, r io.Reader) (string, error)
	SignedURL(ctx context.Context, key string) (string, error)
}

// FileUpload 一个待上传的文件
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// IsImage 按 MIME 大类判断
func (f *FileUpload) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.ContentType), "image/")
}

// IsVideo 按 MIME 大类判断
func (f *FileUpload) IsVideo() bool {
	return strings.HasPrefix(strings.ToLower(f.ContentType), "video/")
}

// media 负责上传与 URL 解析，读路径上签名失败降级为 nil
type media struct {
	storage ObjectStorage
}

func (m media) upload(ctx context.Context, dir string, f *FileUpload) (string, error) {
	return m.storage.Put(ctx, dir, f.Filename, f.ContentType, f.Size, f.Reader)
}

// url 空键返回 nil；签名失败记录警告并返回 nil
func (m media) url(ctx context.Context, key string) *string {
	if key == "" {
		return nil
	}
	signed, err := m.storage.SignedURL(ctx, key)
	if err != nil {
		logger.Warn("Resolve object url failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &signed
}

func (m media) urlPtr(ctx context.Context, key *string) *string {
	if key == nil {
		return nil
	}
	return m.url(ctx, *key)
}

func checkImage(f *FileUpload) error {
	if f != nil && !f.IsImage() {
		return ErrInvalidImage
	}
	return nil
}

func checkVideo(f *FileUpload) error {
	if f != nil && !f.IsVideo() {
		return ErrInvalidVideoFile
	}
	return nil
}
