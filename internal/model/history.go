package model

import "time"

// WatchHistory 观看记录，每个 (user_id, video_id) 只保留一条
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_watch_histories_pair;index:idx_watch_histories_user_watched,priority:1;comment:观看者频道ID" json:"userId"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_watch_histories_pair;comment:视频ID" json:"videoId"`
	WatchedAt time.Time `gorm:"not null;index:idx_watch_histories_user_watched,priority:2;comment:最近观看时间" json:"watchedAt"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`

	// 关联关系
	Video *Video `gorm:"foreignKey:VideoID" json:"-"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
