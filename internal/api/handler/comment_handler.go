package handler

import (
	"context"
	"errors"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param videoId path int true "视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} dto.CommentResponse "发表成功"
// @Failure 400 {object} response.ErrorResponse "缺少字段"
// @Failure 403 {object} response.ErrorResponse "频道不匹配"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comments/video/{videoId} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrCommentMissingFields.Error())
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(c.Request.Context(), videoID, callerID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, dto.CommentResponse{Success: true, Comment: info})
}

// ListByVideo GET /api/comments/video/:videoId
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "Invalid video ID")
		return
	}

	items, err := h.commentService.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, dto.CommentListResponse{Success: true, Comments: items})
}

// Update PUT /api/comments/:commentId
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrCommentMissingFields.Error())
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Update(c.Request.Context(), commentID, callerID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, dto.CommentResponse{Success: true, Comment: info})
}

// Delete DELETE /api/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(commentID, callerID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, dto.CommentDeleteResponse{Success: true, Message: "Comment deleted successfully"})
}

// Like POST /api/comments/:commentId/like
func (h *CommentHandler) Like(c *gin.Context) {
	h.react(c, h.commentService.Like)
}

// Dislike POST /api/comments/:commentId/dislike，只撤销点赞
func (h *CommentHandler) Dislike(c *gin.Context) {
	h.react(c, h.commentService.Dislike)
}

func (h *CommentHandler) react(c *gin.Context, fn func(ctx context.Context, commentID, callerID int64) (*dto.CommentInfo, error)) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	callerID, _ := middleware.GetCurrentUserID(c)

	info, err := fn(c.Request.Context(), commentID, callerID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, dto.CommentResponse{Success: true, Comment: info})
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentChannelMismatch),
		errors.Is(err, service.ErrCommentUpdateForbidden),
		errors.Is(err, service.ErrCommentDeleteForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrCommentMissingFields):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "Something went wrong, please try again later")
	}
}
