package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
	Desc     string `json:"desc"`
}

// LoginRequest 登录请求，name 字段可以是频道名或邮箱
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录成功返回的频道公开信息
type LoginResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Profile *string `json:"profile"`
}
