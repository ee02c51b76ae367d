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

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// Add 记录观看
// @Summary 记录观看
// @Description 同一视频重复观看只刷新观看时间
// @Tags 观看记录
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.HistoryAddRequest true "视频ID"
// @Success 201 {object} dto.HistoryAddResponse "新建记录"
// @Success 200 {object} dto.HistoryAddResponse "刷新记录"
// @Failure 400 {object} response.ErrorResponse "缺少视频ID"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /history/add [post]
func (h *HistoryHandler) Add(c *gin.Context) {
	var req dto.HistoryAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrVideoIDRequired.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	entry, created, err := h.historyService.Add(userID, req.VideoID)
	if err != nil {
		handleHistoryError(c, err)
		return
	}

	if created {
		response.Created(c, dto.HistoryAddResponse{Message: "Video added to watch history", Data: entry})
		return
	}
	response.OK(c, dto.HistoryAddResponse{Message: "Watch history updated", Data: entry})
}

// List GET /api/history/get
func (h *HistoryHandler) List(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	items, err := h.historyService.List(c.Request.Context(), userID)
	if err != nil {
		handleHistoryError(c, err)
		return
	}

	response.OK(c, items)
}

// Clear DELETE /api/history/clear
func (h *HistoryHandler) Clear(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	deleted, err := h.historyService.Clear(userID)
	if err != nil {
		handleHistoryError(c, err)
		return
	}

	if deleted == 0 {
		response.Message(c, http.StatusOK, "No watch history to clear")
		return
	}
	response.Message(c, http.StatusOK, "Watch history cleared")
}

// DeleteOne DELETE /api/history/delete/:historyId
func (h *HistoryHandler) DeleteOne(c *gin.Context) {
	historyID, err := parseIDParam(c, "historyId")
	if err != nil {
		response.BadRequest(c, "Invalid history ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.historyService.DeleteOne(historyID, userID); err != nil {
		handleHistoryError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Watch history entry deleted")
}

func handleHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoIDRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound), errors.Is(err, service.ErrHistoryNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Watch history operation failed", zap.Error(err))
		response.InternalError(c, "Something went wrong, please try again later")
	}
}
