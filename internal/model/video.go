package model

import "time"

// Video 视频模型，cover / video_url 保存对象存储键，读取时再签名
type Video struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	ChannelID int64     `gorm:"not null;index:idx_videos_channel_id;comment:所属频道ID" json:"channelId"`
	Title     string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Desc      string    `gorm:"column:description;type:text;comment:视频描述" json:"desc"`
	Cover     string    `gorm:"size:500;comment:封面对象键" json:"cover"`
	VideoURL  string    `gorm:"size:500;comment:视频对象键" json:"videoUrl"`
	Views     int64     `gorm:"not null;default:0;comment:播放量" json:"views"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// VideoReaction 视频赞/踩，(video_id, channel_id) 唯一，同一频道对同一视频只能处于一种状态
type VideoReaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_video_reactions_pair;comment:视频ID" json:"videoId"`
	ChannelID int64     `gorm:"not null;uniqueIndex:uq_video_reactions_pair;index:idx_video_reactions_channel_id;comment:频道ID" json:"channelId"`
	Kind      string    `gorm:"size:10;not null;comment:like 或 dislike" json:"kind"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

func (VideoReaction) TableName() string {
	return "video_reactions"
}
