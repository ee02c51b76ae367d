package dto

import "time"

// VideoCreateRequest 视频上传请求（multipart/form-data，文件字段为 video 与 cover）
type VideoCreateRequest struct {
	Title string `form:"title"`
	Desc  string `form:"desc"`
}

// VideoUpdateRequest 视频更新请求，未提供的字段保持不变
type VideoUpdateRequest struct {
	Title *string `json:"title" form:"title"`
	Desc  *string `json:"desc" form:"desc"`
}

// VideoInfo 视频信息，所属频道的 name / profile / subscribers 平铺在同一层
type VideoInfo struct {
	ID          int64     `json:"id"`
	ChannelID   int64     `json:"channelId"`
	Title       string    `json:"title"`
	Desc        string    `json:"desc"`
	Cover       *string   `json:"cover"`
	VideoURL    *string   `json:"videoUrl"`
	Views       int64     `json:"views"`
	Likes       []int64   `json:"likes"`
	Dislikes    []int64   `json:"dislikes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name,omitempty"`
	Profile     *string   `json:"profile"`
	Subscribers []int64   `json:"subscribers"`
}
