package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe 建立订阅关系，已存在时不做任何事
func (r *SubscriptionRepository) Subscribe(subscriberID, channelID int64) error {
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub).Error
}

// Unsubscribe 删除订阅关系，不存在时不做任何事
func (r *SubscriptionRepository) Unsubscribe(subscriberID, channelID int64) error {
	return r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{}).Error
}

// SubscriberIDs 订阅了 channelID 的频道
func (r *SubscriptionRepository) SubscriberIDs(channelID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Order("id").
		Pluck("subscriber_id", &ids).Error
	return ids, err
}

// SubscriptionIDs subscriberID 订阅的频道
func (r *SubscriptionRepository) SubscriptionIDs(subscriberID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Order("id").
		Pluck("channel_id", &ids).Error
	return ids, err
}

// SubscribersByChannels 批量获取多个频道的订阅者
func (r *SubscriptionRepository) SubscribersByChannels(channelIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(channelIDs))
	if len(channelIDs) == 0 {
		return result, nil
	}

	var subs []model.Subscription
	err := r.db.Where("channel_id IN ?", channelIDs).Order("id").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	for _, s := range subs {
		result[s.ChannelID] = append(result[s.ChannelID], s.SubscriberID)
	}
	return result, nil
}
