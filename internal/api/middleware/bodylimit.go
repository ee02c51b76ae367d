package middleware

import (
	"net/http"

	"vidshare-go/internal/api/response"

	"github.com/gin-gonic/gin"
)

// BodyLimitMessage 请求体超限时的错误信息
const BodyLimitMessage = "Uploaded file is too large"

// BodyLimit 限制请求体大小：声明的 Content-Length 超限直接 413，其余在读取时由 MaxBytesReader 报错
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Fail(c, http.StatusRequestEntityTooLarge, BodyLimitMessage)
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
