package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/pkg/logger"
	"vidshare-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrChannelNotFound    = errors.New("Channel not found!")
	ErrChannelExists      = errors.New("Channel name or email already exists")
	ErrWrongPassword      = errors.New("Wrong password or channel name!")
	ErrMissingCredentials = errors.New("Name, email and password are required")
)

// TokenRevoker 登出时吊销 token
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// LoginResult 登录结果：token 交给 handler 写入 Cookie，Channel 作为响应体
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Channel   *dto.LoginResponse
}

type AuthService struct {
	channelRepo *repository.ChannelRepository
	tokens      *utils.TokenManager
	revoker     TokenRevoker
	media       media
	now         func() time.Time
}

func NewAuthService(channelRepo *repository.ChannelRepository, tokens *utils.TokenManager, revoker TokenRevoker, storage ObjectStorage) *AuthService {
	return &AuthService{
		channelRepo: channelRepo,
		tokens:      tokens,
		revoker:     revoker,
		media:       media{storage: storage},
		now:         time.Now,
	}
}

// Register 注册频道：频道名首字母大写，密码 bcrypt 加盐哈希
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ChannelInfo, error) {
	name := utils.NormalizeName(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	exists, err := s.channelRepo.ExistsByNameOrEmail(name, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrChannelExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	channel := &model.Channel{
		Name:     name,
		Email:    email,
		Password: hashed,
		Desc:     req.Desc,
	}
	if err := s.channelRepo.Create(channel); err != nil {
		// 并发注册时唯一约束兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChannelExists
		}
		return nil, err
	}

	logger.Info("Channel registered", zap.Int64("channel_id", channel.ID), zap.String("name", channel.Name))

	return toChannelInfo(ctx, s.media, channel, nil, nil, nil), nil
}

// Login 按频道名（规范化后）或邮箱查找频道并校验密码
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	raw := strings.TrimSpace(req.Name)
	channel, err := s.channelRepo.FindForLogin(utils.NormalizeName(raw), raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, channel.Password) {
		return nil, ErrWrongPassword
	}

	token, claims, err := s.tokens.Generate(channel.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Channel: &dto.LoginResponse{
			ID:      channel.ID,
			Name:    channel.Name,
			Profile: s.media.urlPtr(ctx, channel.Profile),
		},
	}, nil
}

// Logout 吊销当前 token，有效期内不能再使用
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	if s.revoker == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}

// TokenTTL 会话有效期，用于设置 Cookie Max-Age
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
