package service

import (
	"context"
	"errors"
	"strings"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/pkg/logger"
	"vidshare-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrChannelNoPermission = errors.New("Modifying other channels' info is not allowed!")

type ChannelService struct {
	channelRepo *repository.ChannelRepository
	subRepo     *repository.SubscriptionRepository
	videoRepo   *repository.VideoRepository
	media       media
}

func NewChannelService(
	channelRepo *repository.ChannelRepository,
	subRepo *repository.SubscriptionRepository,
	videoRepo *repository.VideoRepository,
	storage ObjectStorage,
) *ChannelService {
	return &ChannelService{
		channelRepo: channelRepo,
		subRepo:     subRepo,
		videoRepo:   videoRepo,
		media:       media{storage: storage},
	}
}

// Get 获取频道公开信息，profile / banner 解析为临时 URL
func (s *ChannelService) Get(ctx context.Context, id int64) (*dto.ChannelInfo, error) {
	channel, err := s.channelRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return s.buildInfo(ctx, channel)
}

// Update 更新频道资料（仅本人）。头像、横幅先上传到对象存储，再与其余字段一起部分更新
func (s *ChannelService) Update(ctx context.Context, id, callerID int64, req *dto.ChannelUpdateRequest, profile, banner *FileUpload) (*dto.ChannelInfo, error) {
	if id != callerID {
		return nil, ErrChannelNoPermission
	}
	if err := checkImage(profile); err != nil {
		return nil, err
	}
	if err := checkImage(banner); err != nil {
		return nil, err
	}

	if _, err := s.channelRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if profile != nil {
		key, err := s.media.upload(ctx, DirProfile, profile)
		if err != nil {
			return nil, err
		}
		updates["profile"] = key
	}
	if banner != nil {
		key, err := s.media.upload(ctx, DirBanner, banner)
		if err != nil {
			return nil, err
		}
		updates["banner"] = key
	}

	if req != nil {
		if req.Name != nil {
			if name := utils.NormalizeName(*req.Name); name != "" {
				updates["name"] = name
			}
		}
		if req.Email != nil {
			if email := strings.TrimSpace(*req.Email); email != "" {
				updates["email"] = email
			}
		}
		if req.Desc != nil {
			updates["description"] = *req.Desc
		}
	}

	channel, err := s.channelRepo.Update(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrChannelNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrChannelExists
		}
		return nil, err
	}

	logger.Info("Channel updated", zap.Int64("channel_id", id), zap.Int("fields", len(updates)))

	return s.buildInfo(ctx, channel)
}

func (s *ChannelService) buildInfo(ctx context.Context, channel *model.Channel) (*dto.ChannelInfo, error) {
	subscribers, err := s.subRepo.SubscriberIDs(channel.ID)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subRepo.SubscriptionIDs(channel.ID)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.IDsByChannel(channel.ID)
	if err != nil {
		return nil, err
	}
	return toChannelInfo(ctx, s.media, channel, subscribers, subscriptions, videos), nil
}

func toChannelInfo(ctx context.Context, m media, channel *model.Channel, subscribers, subscriptions, videos []int64) *dto.ChannelInfo {
	return &dto.ChannelInfo{
		ID:            channel.ID,
		Name:          channel.Name,
		Email:         channel.Email,
		Profile:       m.urlPtr(ctx, channel.Profile),
		Banner:        m.urlPtr(ctx, channel.Banner),
		Desc:          channel.Desc,
		Subscribers:   nonNil(subscribers),
		Subscriptions: nonNil(subscriptions),
		Videos:        nonNil(videos),
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
