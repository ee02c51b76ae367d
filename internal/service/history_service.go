package service

import (
	"context"
	"errors"
	"time"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrVideoIDRequired = errors.New("Video ID is required")
	ErrHistoryNotFound = errors.New("Watch history entry not found")
)

type HistoryService struct {
	historyRepo *repository.HistoryRepository
	videoRepo   *repository.VideoRepository
	media       media
	now         func() time.Time
}

func NewHistoryService(historyRepo *repository.HistoryRepository, videoRepo *repository.VideoRepository, storage ObjectStorage) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		videoRepo:   videoRepo,
		media:       media{storage: storage},
		now:         time.Now,
	}
}

// WithClock 替换时间源
func (s *HistoryService) WithClock(now func() time.Time) *HistoryService {
	s.now = now
	return s
}

// Add 记录观看，同一视频重复观看只刷新时间；created 表示是否新建
func (s *HistoryService) Add(userID, videoID int64) (*dto.HistoryEntry, bool, error) {
	if videoID == 0 {
		return nil, false, ErrVideoIDRequired
	}

	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, ErrVideoNotFound
	}

	entry, created, err := s.historyRepo.Upsert(userID, videoID, s.now().UTC())
	if err != nil {
		return nil, false, err
	}
	return toHistoryEntry(entry), created, nil
}

// List 观看记录（最近在前）。先清理指向已删除视频的记录，单条 URL 解析失败时置空
func (s *HistoryService) List(ctx context.Context, userID int64) ([]dto.HistoryEntry, error) {
	purged, err := s.historyRepo.PurgeOrphans(userID)
	if err != nil {
		return nil, err
	}
	if purged > 0 {
		logger.Info("Purged orphaned watch history", zap.Int64("user_id", userID), zap.Int64("count", purged))
	}

	entries, err := s.historyRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HistoryEntry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Video == nil {
			continue
		}
		item := toHistoryEntry(e)
		item.Video = &dto.HistoryVideo{
			ID:       e.Video.ID,
			Title:    e.Video.Title,
			Cover:    s.media.url(ctx, e.Video.Cover),
			VideoURL: s.media.url(ctx, e.Video.VideoURL),
		}
		items = append(items, *item)
	}
	return items, nil
}

// Clear 清空观看记录，返回删除条数
func (s *HistoryService) Clear(userID int64) (int64, error) {
	return s.historyRepo.DeleteByUser(userID)
}

// DeleteOne 删除一条属于当前用户的记录
func (s *HistoryService) DeleteOne(historyID, userID int64) error {
	deleted, err := s.historyRepo.DeleteOne(historyID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHistoryNotFound
	}
	return nil
}

func toHistoryEntry(e *model.WatchHistory) *dto.HistoryEntry {
	return &dto.HistoryEntry{
		ID:        e.ID,
		UserID:    e.UserID,
		VideoID:   e.VideoID,
		WatchedAt: e.WatchedAt,
	}
}
