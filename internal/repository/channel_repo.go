package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

type ChannelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create 创建频道，name / email 冲突返回 gorm.ErrDuplicatedKey
func (r *ChannelRepository) Create(channel *model.Channel) error {
	return r.db.Create(channel).Error
}

// GetByID 根据 ID 查询频道
func (r *ChannelRepository) GetByID(id int64) (*model.Channel, error) {
	var channel model.Channel
	err := r.db.First(&channel, id).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetByIDs 批量查询频道，返回 id -> 频道
func (r *ChannelRepository) GetByIDs(ids []int64) (map[int64]*model.Channel, error) {
	result := make(map[int64]*model.Channel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var channels []model.Channel
	if err := r.db.Where("id IN ?", ids).Find(&channels).Error; err != nil {
		return nil, err
	}
	for i := range channels {
		result[channels[i].ID] = &channels[i]
	}
	return result, nil
}

// FindForLogin 按规范化后的频道名或原始邮箱查找
func (r *ChannelRepository) FindForLogin(name, email string) (*model.Channel, error) {
	var channel model.Channel
	err := r.db.Where("name = ? OR email = ?", name, email).Order("id").First(&channel).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// ExistsByNameOrEmail 检查频道名或邮箱是否已被占用
func (r *ChannelRepository) ExistsByNameOrEmail(name, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Channel{}).
		Where("name = ? OR email = ?", name, email).
		Count(&count).Error
	return count > 0, err
}

// Update 部分更新频道字段
func (r *ChannelRepository) Update(id int64, updates map[string]interface{}) (*model.Channel, error) {
	if len(updates) > 0 {
		result := r.db.Model(&model.Channel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(id)
}
