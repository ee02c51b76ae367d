package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Set 设置频道对视频的赞/踩，同一条记录原地切换，保证 likes 与 dislikes 互斥
func (r *ReactionRepository) Set(videoID, channelID int64, kind string) error {
	reaction := &model.VideoReaction{VideoID: videoID, ChannelID: channelID, Kind: kind}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
	}).Create(reaction).Error
}

// Reactions 视频的点赞、点踩频道 ID
type Reactions struct {
	Likes    []int64
	Dislikes []int64
}

// ByVideos 批量获取视频的赞/踩集合，没有记录的视频返回空集合
func (r *ReactionRepository) ByVideos(videoIDs []int64) (map[int64]*Reactions, error) {
	result := make(map[int64]*Reactions, len(videoIDs))
	for _, id := range videoIDs {
		result[id] = &Reactions{Likes: []int64{}, Dislikes: []int64{}}
	}
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []model.VideoReaction
	if err := r.db.Where("video_id IN ?", videoIDs).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		set := result[row.VideoID]
		if set == nil {
			continue
		}
		switch row.Kind {
		case model.ReactionLike:
			set.Likes = append(set.Likes, row.ChannelID)
		case model.ReactionDislike:
			set.Dislikes = append(set.Dislikes, row.ChannelID)
		}
	}
	return result, nil
}
