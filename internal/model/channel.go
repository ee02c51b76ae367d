package model

import "time"

// Channel 频道（账号）模型，订阅关系与视频列表由 subscriptions / videos 表派生
type Channel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:频道标识" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:uq_channels_name;comment:频道名（首字母大写）" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:uq_channels_email;comment:邮箱" json:"email"`
	Password  string    `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	Profile   *string   `gorm:"size:500;comment:头像对象键" json:"profile"`
	Banner    *string   `gorm:"size:500;comment:横幅对象键" json:"banner"`
	Desc      string    `gorm:"column:description;type:text;comment:频道简介" json:"desc"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

func (Channel) TableName() string {
	return "channels"
}

// All 返回需要迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&Channel{},
		&Subscription{},
		&Video{},
		&VideoReaction{},
		&Comment{},
		&CommentLike{},
		&WatchHistory{},
	}
}
