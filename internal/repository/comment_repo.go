package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithUser 查询评论并带出作者频道
func (r *CommentRepository) GetByIDWithUser(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByVideo 视频的评论列表（新评论在前）
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// UpdateDesc 更新评论内容
func (r *CommentRepository) UpdateDesc(id int64, desc string) error {
	result := r.db.Model(&model.Comment{}).Where("id = ?", id).Update("description", desc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除评论及其点赞记录
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Comment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddLike 点赞，重复点赞不产生新记录
func (r *CommentRepository) AddLike(commentID, channelID int64) error {
	like := &model.CommentLike{CommentID: commentID, ChannelID: channelID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// RemoveLike 取消点赞
func (r *CommentRepository) RemoveLike(commentID, channelID int64) error {
	return r.db.Where("comment_id = ? AND channel_id = ?", commentID, channelID).
		Delete(&model.CommentLike{}).Error
}

// LikesByComments 批量获取评论的点赞频道
func (r *CommentRepository) LikesByComments(commentIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(commentIDs))
	for _, id := range commentIDs {
		result[id] = []int64{}
	}
	if len(commentIDs) == 0 {
		return result, nil
	}

	var likes []model.CommentLike
	if err := r.db.Where("comment_id IN ?", commentIDs).Order("id").Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.CommentID] = append(result[l.CommentID], l.ChannelID)
	}
	return result, nil
}
