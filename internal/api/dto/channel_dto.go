package dto

// ChannelUpdateRequest 频道资料更新（JSON 或 multipart 表单），未提供的字段保持不变
type ChannelUpdateRequest struct {
	Name  *string `json:"name" form:"name"`
	Email *string `json:"email" form:"email"`
	Desc  *string `json:"desc" form:"desc"`
}

// ChannelInfo 频道公开信息（不含密码与时间戳）
type ChannelInfo struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Profile       *string `json:"profile"`
	Banner        *string `json:"banner"`
	Desc          string  `json:"desc"`
	Subscribers   []int64 `json:"subscribers"`
	Subscriptions []int64 `json:"subscriptions"`
	Videos        []int64 `json:"videos"`
}
