package repository

import (
	"errors"
	"time"

	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Upsert 记录观看：已有记录则刷新 watched_at，否则新建；created 表示是否新建
func (r *HistoryRepository) Upsert(userID, videoID int64, watchedAt time.Time) (*model.WatchHistory, bool, error) {
	entry, created, err := r.upsert(userID, videoID, watchedAt)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发插入同一对记录时，另一方已建好，重试一次即走刷新分支
		entry, created, err = r.upsert(userID, videoID, watchedAt)
	}
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

func (r *HistoryRepository) upsert(userID, videoID int64, watchedAt time.Time) (*model.WatchHistory, bool, error) {
	var (
		entry   model.WatchHistory
		created bool
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).First(&entry).Error
		if err == nil {
			entry.WatchedAt = watchedAt
			return tx.Model(&entry).Update("watched_at", watchedAt).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		entry = model.WatchHistory{UserID: userID, VideoID: videoID, WatchedAt: watchedAt}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return &entry, created, err
}

// PurgeOrphans 删除用户指向已不存在视频的记录
func (r *HistoryRepository) PurgeOrphans(userID int64) (int64, error) {
	result := r.db.
		Where("user_id = ? AND video_id NOT IN (?)", userID, r.db.Model(&model.Video{}).Select("id")).
		Delete(&model.WatchHistory{})
	return result.RowsAffected, result.Error
}

// ListByUser 用户的观看记录（最近观看在前），带出视频
func (r *HistoryRepository) ListByUser(userID int64) ([]model.WatchHistory, error) {
	var entries []model.WatchHistory
	err := r.db.Preload("Video").
		Where("user_id = ?", userID).
		Order("watched_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// DeleteByUser 清空用户的观看记录，返回删除条数
func (r *HistoryRepository) DeleteByUser(userID int64) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&model.WatchHistory{})
	return result.RowsAffected, result.Error
}

// DeleteOne 删除属于该用户的单条记录
func (r *HistoryRepository) DeleteOne(id, userID int64) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.WatchHistory{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
