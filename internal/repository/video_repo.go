package repository

import (
	"strings"

	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Exists 检查视频是否存在
func (r *VideoRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// IncrementViewsAndGet 播放量 +1 并读回最新记录
func (r *VideoRepository) IncrementViewsAndGet(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Video{}).Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&video, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List 全部视频（新视频在前）
func (r *VideoRepository) List() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Order("created_at DESC, id DESC").Find(&videos).Error
	return videos, err
}

// ListByChannel 某频道的视频
func (r *VideoRepository) ListByChannel(channelID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("channel_id = ?", channelID).
		Order("created_at DESC, id DESC").
		Find(&videos).Error
	return videos, err
}

// SearchByTitle 标题大小写不敏感子串匹配
func (r *VideoRepository) SearchByTitle(term string) ([]model.Video, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	var videos []model.Video
	err := r.db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern).
		Order("created_at DESC, id DESC").
		Find(&videos).Error
	return videos, err
}

// GetByIDs 批量获取视频，按 ids 的顺序返回，已删除的视频被跳过
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}

	var videos []model.Video
	if err := r.db.Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	ordered := make([]model.Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, *v)
			delete(byID, id)
		}
	}
	return ordered, nil
}

// IDsByChannel 频道拥有的视频 ID
func (r *VideoRepository) IDsByChannel(channelID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.Model(&model.Video{}).
		Where("channel_id = ?", channelID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// Update 部分更新视频字段
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	if len(updates) > 0 {
		result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}

// Delete 在同一事务中删除视频及其赞/踩记录
func (r *VideoRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoReaction{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Video{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindInBatches 分批遍历全部视频（重建索引用）
func (r *VideoRepository) FindInBatches(batchSize int, fn func(videos []model.Video) error) error {
	var batch []model.Video
	return r.db.FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
		return fn(batch)
	}).Error
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
