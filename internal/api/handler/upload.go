package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"

	"github.com/gin-gonic/gin"
)

var errBadUpload = errors.New("Invalid multipart upload")

// formFile 读取可选的上传文件；字段缺失或请求不是 multipart 时返回 nil
func formFile(c *gin.Context, field string) (*service.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &service.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, nil
}

// formFiles 按字段顺序读取多个可选文件
func formFiles(c *gin.Context, fields ...string) ([]*service.FileUpload, error) {
	files := make([]*service.FileUpload, 0, len(fields))
	for _, field := range fields {
		f, err := formFile(c, field)
		if err != nil {
			closeUploads(files...)
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func closeUploads(files ...*service.FileUpload) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if closer, ok := f.Reader.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}

// bindOptional 绑定 JSON 或表单，空请求体视为未提供任何字段
func bindOptional(c *gin.Context, obj interface{}) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// bodyTooLarge 判断错误是否来自 MaxBytesReader；multipart 解析有时只保留错误文本
func bodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// handleBindError 绑定失败：超限返回 413，其余 400
func handleBindError(c *gin.Context, err error) {
	if bodyTooLarge(err) {
		response.Fail(c, http.StatusRequestEntityTooLarge, middleware.BodyLimitMessage)
		return
	}
	response.BadRequest(c, "Invalid request body")
}

func handleUploadError(c *gin.Context, err error) {
	if bodyTooLarge(err) {
		response.Fail(c, http.StatusRequestEntityTooLarge, middleware.BodyLimitMessage)
		return
	}
	response.BadRequest(c, errBadUpload.Error())
}
