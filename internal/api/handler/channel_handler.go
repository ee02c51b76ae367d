package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChannelHandler struct {
	channelService      *service.ChannelService
	subscriptionService *service.SubscriptionService
}

func NewChannelHandler(channelService *service.ChannelService, subscriptionService *service.SubscriptionService) *ChannelHandler {
	return &ChannelHandler{
		channelService:      channelService,
		subscriptionService: subscriptionService,
	}
}

// GetChannel 获取频道信息
// @Summary 获取频道信息
// @Description 频道公开信息，头像与横幅为临时签名 URL
// @Tags 频道
// @Produce json
// @Param id path int true "频道ID"
// @Success 200 {object} dto.ChannelInfo "获取成功"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /channels/{id} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid channel ID")
		return
	}

	info, err := h.channelService.Get(c.Request.Context(), id)
	if err != nil {
		handleChannelError(c, err)
		return
	}

	response.OK(c, info)
}

// UpdateChannel 更新频道资料
// @Summary 更新频道资料
// @Description 支持 JSON 或 multipart（profile、banner 图片字段），只能修改自己的频道
// @Tags 频道
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path int true "频道ID"
// @Success 200 {object} dto.ChannelInfo "更新成功"
// @Failure 403 {object} response.ErrorResponse "无权限"
// @Router /channels/{id} [put]
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid channel ID")
		return
	}

	var req dto.ChannelUpdateRequest
	if err := bindOptional(c, &req); err != nil {
		handleBindError(c, err)
		return
	}

	files, err := formFiles(c, "profile", "banner")
	if err != nil {
		handleUploadError(c, err)
		return
	}
	defer closeUploads(files...)

	callerID, _ := middleware.GetCurrentUserID(c)

	info, err := h.channelService.Update(c.Request.Context(), id, callerID, &req, files[0], files[1])
	if err != nil {
		handleChannelError(c, err)
		return
	}

	response.OK(c, info)
}

// Subscribe PUT /api/channels/subscribe/:id
func (h *ChannelHandler) Subscribe(c *gin.Context) {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid channel ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.subscriptionService.Subscribe(callerID, targetID); err != nil {
		handleChannelError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Subscription successful.")
}

// Unsubscribe PUT /api/channels/unsubscribe/:id
func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid channel ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.subscriptionService.Unsubscribe(callerID, targetID); err != nil {
		handleChannelError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Unsubscription successful.")
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func handleChannelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrChannelNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrChannelExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrCannotSubscribeSelf), errors.Is(err, service.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Channel operation failed", zap.Error(err))
		response.InternalError(c, "Something went wrong, please try again later")
	}
}
