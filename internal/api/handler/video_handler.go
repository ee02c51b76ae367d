package handler

import (
	"errors"
	"net/http"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List 视频列表
// @Summary 视频列表
// @Description 全部视频，search 参数按标题大小写不敏感匹配
// @Tags 视频
// @Produce json
// @Param search query string false "标题关键字"
// @Success 200 {array} dto.VideoInfo "获取成功"
// @Failure 404 {object} response.ErrorResponse "没有视频"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	items, err := h.videoService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, items)
}

// GetDetail 视频详情，播放量 +1
// @Summary 视频详情
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} dto.VideoInfo "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	info, err := h.videoService.Get(c.Request.Context(), videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, info)
}

// ListByChannel GET /api/videos/channel/:id
func (h *VideoHandler) ListByChannel(c *gin.Context) {
	channelID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid channel ID")
		return
	}

	items, err := h.videoService.ListByChannel(c.Request.Context(), channelID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, items)
}

// Create 上传视频
// @Summary 上传视频
// @Description multipart/form-data：video 为视频文件，cover 为封面图片
// @Tags 视频
// @Accept mpfd
// @Produce json
// @Security CookieAuth
// @Param title formData string true "标题"
// @Param desc formData string false "描述"
// @Param video formData file true "视频文件"
// @Param cover formData file true "封面图片"
// @Success 201 {object} dto.VideoInfo "上传成功"
// @Failure 400 {object} response.ErrorResponse "缺少文件"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := bindOptional(c, &req); err != nil {
		handleBindError(c, err)
		return
	}

	files, err := formFiles(c, "video", "cover")
	if err != nil {
		handleUploadError(c, err)
		return
	}
	defer closeUploads(files...)

	channelID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Create(c.Request.Context(), channelID, &req, files[0], files[1])
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, info)
}

// Update PUT /api/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := bindOptional(c, &req); err != nil {
		handleBindError(c, err)
		return
	}

	files, err := formFiles(c, "video", "cover")
	if err != nil {
		handleUploadError(c, err)
		return
	}
	defer closeUploads(files...)

	callerID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Update(c.Request.Context(), videoID, callerID, &req, files[0], files[1])
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, info)
}

// Delete DELETE /api/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(c.Request.Context(), videoID, callerID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Video has been deleted.")
}

// Like PUT /api/videos/like/:videoId
func (h *VideoHandler) Like(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Like(videoID, callerID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Video liked.")
}

// Dislike PUT /api/videos/dislike/:videoId
func (h *VideoHandler) Dislike(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Dislike(videoID, callerID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Video disliked.")
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrNoVideos),
		errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoUpdateForbidden), errors.Is(err, service.ErrVideoDeleteForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoFileRequired),
		errors.Is(err, service.ErrCoverRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidVideoFile),
		errors.Is(err, service.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "Something went wrong, please try again later")
	}
}
