package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidshare-go/internal/api/dto"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound        = errors.New("Video not found")
	ErrNoVideos             = errors.New("No video record found.")
	ErrVideoFileRequired    = errors.New("Upload video file")
	ErrCoverRequired        = errors.New("Upload cover image")
	ErrTitleRequired        = errors.New("Title is required")
	ErrVideoUpdateForbidden = errors.New("Update videos from other channels not allowed.")
	ErrVideoDeleteForbidden = errors.New("Delete videos from other channels not allowed.")
	// ErrVideoOwnerMissing 视频指向的频道不存在，属于数据不一致，按服务端错误处理
	ErrVideoOwnerMissing = errors.New("video owner channel missing")
)

// VideoEventPublisher 视频变更事件发布
type VideoEventPublisher interface {
	PublishVideoEvent(ctx context.Context, event *infraKafka.VideoEvent) error
}

// VideoSearcher 标题搜索，返回匹配的视频 ID
type VideoSearcher interface {
	SearchVideoIDs(ctx context.Context, term string) ([]int64, error)
}

type VideoService struct {
	videoRepo    *repository.VideoRepository
	channelRepo  *repository.ChannelRepository
	subRepo      *repository.SubscriptionRepository
	reactionRepo *repository.ReactionRepository
	media        media
	publisher    VideoEventPublisher
	searcher     VideoSearcher
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	channelRepo *repository.ChannelRepository,
	subRepo *repository.SubscriptionRepository,
	reactionRepo *repository.ReactionRepository,
	storage ObjectStorage,
) *VideoService {
	return &VideoService{
		videoRepo:    videoRepo,
		channelRepo:  channelRepo,
		subRepo:      subRepo,
		reactionRepo: reactionRepo,
		media:        media{storage: storage},
	}
}

// WithPublisher 开启视频事件发布
func (s *VideoService) WithPublisher(p VideoEventPublisher) *VideoService {
	s.publisher = p
	return s
}

// WithSearcher 开启 ES 标题搜索，失败时回落到数据库
func (s *VideoService) WithSearcher(searcher VideoSearcher) *VideoService {
	s.searcher = searcher
	return s
}

// List 全部视频；search 非空时按标题大小写不敏感子串匹配
func (s *VideoService) List(ctx context.Context, search string) ([]dto.VideoInfo, error) {
	var (
		videos []model.Video
		err    error
	)
	search = strings.TrimSpace(search)
	if search != "" {
		videos, err = s.search(ctx, search)
	} else {
		videos, err = s.videoRepo.List()
	}
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, ErrNoVideos
	}
	return s.enrich(ctx, videos)
}

// ListByChannel 某频道的全部视频
func (s *VideoService) ListByChannel(ctx context.Context, channelID int64) ([]dto.VideoInfo, error) {
	videos, err := s.videoRepo.ListByChannel(channelID)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, ErrNoVideos
	}
	return s.enrich(ctx, videos)
}

// Get 视频详情，播放量 +1
func (s *VideoService) Get(ctx context.Context, id int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.IncrementViewsAndGet(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if _, err := s.channelRepo.GetByID(video.ChannelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video %d: %w", video.ID, ErrVideoOwnerMissing)
		}
		return nil, err
	}

	infos, err := s.enrich(ctx, []model.Video{*video})
	if err != nil {
		return nil, err
	}
	return &infos[0], nil
}

// Create 上传封面与视频文件后创建记录
func (s *VideoService) Create(ctx context.Context, channelID int64, req *dto.VideoCreateRequest, video, cover *FileUpload) (*dto.VideoInfo, error) {
	if video == nil {
		return nil, ErrVideoFileRequired
	}
	if cover == nil {
		return nil, ErrCoverRequired
	}
	if err := checkVideo(video); err != nil {
		return nil, err
	}
	if err := checkImage(cover); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.channelRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	coverKey, err := s.media.upload(ctx, DirCover, cover)
	if err != nil {
		return nil, err
	}
	videoKey, err := s.media.upload(ctx, DirVideos, video)
	if err != nil {
		return nil, err
	}

	record := &model.Video{
		ChannelID: channelID,
		Title:     title,
		Desc:      req.Desc,
		Cover:     coverKey,
		VideoURL:  videoKey,
	}
	if err := s.videoRepo.Create(record); err != nil {
		return nil, err
	}

	logger.Info("Video created", zap.Int64("video_id", record.ID), zap.Int64("channel_id", channelID))
	s.publish(ctx, infraKafka.EventVideoCreated, record)

	infos, err := s.enrich(ctx, []model.Video{*record})
	if err != nil {
		return nil, err
	}
	return &infos[0], nil
}

// Update 更新视频（仅所属频道），新文件替换原对象键
func (s *VideoService) Update(ctx context.Context, id, callerID int64, req *dto.VideoUpdateRequest, video, cover *FileUpload) (*dto.VideoInfo, error) {
	existing, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if existing.ChannelID != callerID {
		return nil, ErrVideoUpdateForbidden
	}
	if err := checkVideo(video); err != nil {
		return nil, err
	}
	if err := checkImage(cover); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req != nil {
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return nil, ErrTitleRequired
			}
			updates["title"] = title
		}
		if req.Desc != nil {
			updates["description"] = *req.Desc
		}
	}
	if video != nil {
		key, err := s.media.upload(ctx, DirVideos, video)
		if err != nil {
			return nil, err
		}
		updates["video_url"] = key
	}
	if cover != nil {
		key, err := s.media.upload(ctx, DirCover, cover)
		if err != nil {
			return nil, err
		}
		updates["cover"] = key
	}

	updated, err := s.videoRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.publish(ctx, infraKafka.EventVideoUpdated, updated)

	infos, err := s.enrich(ctx, []model.Video{*updated})
	if err != nil {
		return nil, err
	}
	return &infos[0], nil
}

// Delete 删除视频（仅所属频道），赞/踩记录在同一事务中删除
func (s *VideoService) Delete(ctx context.Context, id, callerID int64) error {
	video, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if video.ChannelID != callerID {
		return ErrVideoDeleteForbidden
	}

	if _, err := s.channelRepo.GetByID(video.ChannelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("video %d: %w", video.ID, ErrVideoOwnerMissing)
		}
		return err
	}

	if err := s.videoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	logger.Info("Video deleted", zap.Int64("video_id", id), zap.Int64("channel_id", callerID))
	s.publish(ctx, infraKafka.EventVideoDeleted, video)
	return nil
}

// Like 点赞，同时撤销该频道的点踩
func (s *VideoService) Like(videoID, callerID int64) error {
	return s.react(videoID, callerID, model.ReactionLike)
}

// Dislike 点踩，同时撤销该频道的点赞
func (s *VideoService) Dislike(videoID, callerID int64) error {
	return s.react(videoID, callerID, model.ReactionDislike)
}

func (s *VideoService) react(videoID, callerID int64, kind string) error {
	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVideoNotFound
	}
	return s.reactionRepo.Set(videoID, callerID, kind)
}

func (s *VideoService) search(ctx context.Context, term string) ([]model.Video, error) {
	if s.searcher != nil {
		ids, err := s.searcher.SearchVideoIDs(ctx, term)
		if err == nil {
			return s.videoRepo.GetByIDs(ids)
		}
		logger.Warn("ES search failed, fallback to DB", zap.String("term", term), zap.Error(err))
	}
	return s.videoRepo.SearchByTitle(term)
}

// enrich 批量带出所属频道、订阅者与赞/踩集合，并解析媒体 URL
func (s *VideoService) enrich(ctx context.Context, videos []model.Video) ([]dto.VideoInfo, error) {
	channelIDs := make([]int64, 0, len(videos))
	videoIDs := make([]int64, 0, len(videos))
	seen := make(map[int64]bool, len(videos))
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
		if !seen[videos[i].ChannelID] {
			seen[videos[i].ChannelID] = true
			channelIDs = append(channelIDs, videos[i].ChannelID)
		}
	}

	channels, err := s.channelRepo.GetByIDs(channelIDs)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subRepo.SubscribersByChannels(channelIDs)
	if err != nil {
		return nil, err
	}
	reactions, err := s.reactionRepo.ByVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		info := dto.VideoInfo{
			ID:        v.ID,
			ChannelID: v.ChannelID,
			Title:     v.Title,
			Desc:      v.Desc,
			Cover:     s.media.url(ctx, v.Cover),
			VideoURL:  s.media.url(ctx, v.VideoURL),
			Views:     v.Views,
			Likes:     reactions[v.ID].Likes,
			Dislikes:  reactions[v.ID].Dislikes,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}
		if ch, ok := channels[v.ChannelID]; ok {
			info.Name = ch.Name
			info.Profile = s.media.urlPtr(ctx, ch.Profile)
			info.Subscribers = nonNil(subscribers[v.ChannelID])
		} else {
			logger.Warn("Channel not found for video", zap.Int64("video_id", v.ID), zap.Int64("channel_id", v.ChannelID))
		}
		items = append(items, info)
	}
	return items, nil
}

func (s *VideoService) publish(ctx context.Context, eventType string, video *model.Video) {
	if s.publisher == nil {
		return
	}
	event := &infraKafka.VideoEvent{
		Type:       eventType,
		VideoID:    video.ID,
		ChannelID:  video.ChannelID,
		Title:      video.Title,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishVideoEvent(ctx, event); err != nil {
		logger.Warn("Publish video event failed",
			zap.String("type", eventType),
			zap.Int64("video_id", video.ID),
			zap.Error(err),
		)
	}
}
