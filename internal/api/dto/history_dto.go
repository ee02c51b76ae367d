package dto

import "time"

// HistoryAddRequest 添加观看记录请求
type HistoryAddRequest struct {
	VideoID int64 `json:"videoId"`
}

// HistoryVideo 观看记录中的视频摘要
type HistoryVideo struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Cover    *string `json:"cover"`
	VideoURL *string `json:"videoUrl"`
}

// HistoryEntry 观看记录
type HistoryEntry struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	VideoID   int64         `json:"videoId"`
	WatchedAt time.Time     `json:"watchedAt"`
	Video     *HistoryVideo `json:"video,omitempty"`
}

// HistoryAddResponse 添加观看记录响应
type HistoryAddResponse struct {
	Message string        `json:"message"`
	Data    *HistoryEntry `json:"data"`
}
