package model

import "time"

// Subscription 订阅关系，一行同时表示订阅者的 subscriptions 与被订阅者的 subscribers
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	SubscriberID int64     `gorm:"not null;uniqueIndex:uq_subscriptions_pair;index:idx_subscriptions_subscriber_id;comment:订阅者频道ID" json:"subscriberId"`
	ChannelID    int64     `gorm:"not null;uniqueIndex:uq_subscriptions_pair;index:idx_subscriptions_channel_id;comment:被订阅频道ID" json:"channelId"`
	CreatedAt    time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
