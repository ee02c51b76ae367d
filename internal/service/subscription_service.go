package service

import (
	"errors"

	"vidshare-go/internal/repository"

	"gorm.io/gorm"
)

var ErrCannotSubscribeSelf = errors.New("You cannot subscribe to your own channel")

type SubscriptionService struct {
	subRepo     *repository.SubscriptionRepository
	channelRepo *repository.ChannelRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, channelRepo *repository.ChannelRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, channelRepo: channelRepo}
}

// Subscribe 订阅频道，重复订阅无副作用
func (s *SubscriptionService) Subscribe(callerID, targetID int64) error {
	if err := s.checkTarget(callerID, targetID); err != nil {
		return err
	}
	return s.subRepo.Subscribe(callerID, targetID)
}

// Unsubscribe 取消订阅，未订阅时无副作用
func (s *SubscriptionService) Unsubscribe(callerID, targetID int64) error {
	if err := s.checkTarget(callerID, targetID); err != nil {
		return err
	}
	return s.subRepo.Unsubscribe(callerID, targetID)
}

func (s *SubscriptionService) checkTarget(callerID, targetID int64) error {
	if callerID == targetID {
		return ErrCannotSubscribeSelf
	}
	if _, err := s.channelRepo.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChannelNotFound
		}
		return err
	}
	return nil
}
