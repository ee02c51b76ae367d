package service

import (
	"context"
	"errors"
	"strings"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentMissingFields   = errors.New("Missing required fields")
	ErrCommentNotFound        = errors.New("Comment not found")
	ErrCommentChannelMismatch = errors.New("You can only comment as your own channel")
	ErrCommentUpdateForbidden = errors.New("You can only update your own comments")
	ErrCommentDeleteForbidden = errors.New("You can only delete your own comments")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	media       media
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository, storage ObjectStorage) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		media:       media{storage: storage},
	}
}

// Create 发表评论，作者为当前登录频道
func (s *CommentService) Create(ctx context.Context, videoID, callerID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	desc := strings.TrimSpace(req.Desc)
	if req.ChannelID == 0 || desc == "" {
		return nil, ErrCommentMissingFields
	}
	if req.ChannelID != callerID {
		return nil, ErrCommentChannelMismatch
	}

	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	comment := &model.Comment{
		VideoID:   videoID,
		ChannelID: req.ChannelID,
		UserID:    callerID,
		Desc:      desc,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.load(ctx, comment.ID)
}

// ListByVideo 视频的评论（新评论在前）
func (s *CommentService) ListByVideo(ctx context.Context, videoID int64) ([]dto.CommentInfo, error) {
	comments, err := s.commentRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}
	likes, err := s.commentRepo.LikesByComments(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		items = append(items, *s.toCommentInfo(ctx, &comments[i], likes[comments[i].ID]))
	}
	return items, nil
}

// Update 修改评论内容（仅作者）
func (s *CommentService) Update(ctx context.Context, commentID, callerID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	desc := strings.TrimSpace(req.Desc)
	if desc == "" {
		return nil, ErrCommentMissingFields
	}

	comment, err := s.get(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, ErrCommentUpdateForbidden
	}

	if err := s.commentRepo.UpdateDesc(commentID, desc); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.load(ctx, commentID)
}

// Delete 删除评论（仅作者）
func (s *CommentService) Delete(commentID, callerID int64) error {
	comment, err := s.get(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		return ErrCommentDeleteForbidden
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

// Like 点赞评论
func (s *CommentService) Like(ctx context.Context, commentID, callerID int64) (*dto.CommentInfo, error) {
	if _, err := s.get(commentID); err != nil {
		return nil, err
	}
	if err := s.commentRepo.AddLike(commentID, callerID); err != nil {
		return nil, err
	}
	return s.load(ctx, commentID)
}

// Dislike 取消点赞；评论没有单独的点踩集合
func (s *CommentService) Dislike(ctx context.Context, commentID, callerID int64) (*dto.CommentInfo, error) {
	if _, err := s.get(commentID); err != nil {
		return nil, err
	}
	if err := s.commentRepo.RemoveLike(commentID, callerID); err != nil {
		return nil, err
	}
	return s.load(ctx, commentID)
}

func (s *CommentService) get(commentID int64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) load(ctx context.Context, commentID int64) (*dto.CommentInfo, error) {
	comment, err := s.commentRepo.GetByIDWithUser(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	likes, err := s.commentRepo.LikesByComments([]int64{commentID})
	if err != nil {
		return nil, err
	}
	return s.toCommentInfo(ctx, comment, likes[commentID]), nil
}

func (s *CommentService) toCommentInfo(ctx context.Context, c *model.Comment, likes []int64) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        c.ID,
		VideoID:   c.VideoID,
		ChannelID: c.ChannelID,
		Desc:      c.Desc,
		Likes:     nonNil(likes),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.User.ID != 0 {
		info.UserInfo = &dto.UserInfo{
			ID:      c.User.ID,
			Name:    c.User.Name,
			Profile: s.media.urlPtr(ctx, c.User.Profile),
		}
	}
	return info
}
