package handler

import (
	"errors"
	"net/http"
	"strings"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/config"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService    *service.AuthService
	channelService *service.ChannelService
	cookie         config.CookieConfig
}

func NewAuthHandler(authService *service.AuthService, channelService *service.ChannelService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		channelService: channelService,
		cookie:         cookie,
	}
}

// Register 频道注册
// @Summary 频道注册
// @Description 注册新频道，频道名首字母自动大写
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} dto.ChannelInfo "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "频道名或邮箱已存在"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrMissingCredentials.Error())
		return
	}

	info, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, info)
}

// Login 频道登录
// @Summary 频道登录
// @Description 使用频道名或邮箱登录，token 写入 accessToken Cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.LoginResponse "登录成功"
// @Failure 400 {object} response.ErrorResponse "密码错误"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	h.setCookie(c, result.Token, int(h.authService.TokenTTL().Seconds()))
	response.OK(c, result.Channel)
}

// Logout 登出
// @Summary 登出
// @Description 吊销当前 token 并清除 Cookie
// @Tags 认证
// @Produce json
// @Security CookieAuth
// @Success 200 {object} response.MessageResponse "登出成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		response.InternalError(c, "Logout failed")
		return
	}

	h.setCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out successfully.")
}

// Me 当前登录频道
// @Summary 当前登录频道
// @Tags 认证
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.ChannelInfo "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	channelID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "You are not authenticated!")
		return
	}

	info, err := h.channelService.Get(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, service.ErrChannelNotFound) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Get current channel failed", zap.Error(err), zap.Int64("channel_id", channelID))
		response.InternalError(c, "Failed to get channel info")
		return
	}

	response.OK(c, info)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: parseSameSite(h.cookie.SameSite),
	})
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials), errors.Is(err, service.ErrWrongPassword):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrChannelExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "Something went wrong, please try again later")
	}
}
