package model

import "time"

// Comment 评论模型，UserID 为作者，ChannelID 为请求体提交的频道 ID
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	VideoID   int64     `gorm:"not null;index:idx_comments_video_created,priority:1;comment:被评论视频ID" json:"videoId"`
	ChannelID int64     `gorm:"not null;comment:频道ID" json:"channelId"`
	UserID    int64     `gorm:"not null;index:idx_comments_user_id;comment:评论作者ID" json:"userId"`
	Desc      string    `gorm:"column:description;type:text;not null;comment:评论内容" json:"desc"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_video_created,priority:2;comment:评论时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`

	// 关联关系
	User Channel `gorm:"foreignKey:UserID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike 评论点赞
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	CommentID int64     `gorm:"not null;uniqueIndex:uq_comment_likes_pair;comment:评论ID" json:"commentId"`
	ChannelID int64     `gorm:"not null;uniqueIndex:uq_comment_likes_pair;comment:点赞频道ID" json:"channelId"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"createdAt"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
