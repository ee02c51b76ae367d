package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	ChannelID int64  `json:"channelId"`
	Desc      string `json:"desc"`
}

// CommentUpdateRequest 更新评论请求
type CommentUpdateRequest struct {
	Desc string `json:"desc"`
}

// UserInfo 评论作者信息
type UserInfo struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Profile *string `json:"profile"`
}

// CommentInfo 评论信息
type CommentInfo struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"videoId"`
	ChannelID int64     `json:"channelId"`
	Desc      string    `json:"desc"`
	Likes     []int64   `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserInfo  *UserInfo `json:"userInfo"`
}

// CommentResponse 单条评论响应
type CommentResponse struct {
	Success bool         `json:"success"`
	Comment *CommentInfo `json:"comment"`
}

// CommentListResponse 评论列表响应
type CommentListResponse struct {
	Success  bool          `json:"success"`
	Comments []CommentInfo `json:"comments"`
}

// CommentDeleteResponse 删除评论响应
type CommentDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
