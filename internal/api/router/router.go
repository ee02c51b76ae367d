package router

import (
	"vidshare-go/internal/api/handler"
	"vidshare-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由。authLimit 为 nil 时登录注册不限流
func Setup(
	r *gin.Engine,
	authn *middleware.Authenticator,
	authLimit gin.HandlerFunc,
	maxUploadBytes int64,
	authHandler *handler.AuthHandler,
	channelHandler *handler.ChannelHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	historyHandler *handler.HistoryHandler,
) {
	api := r.Group("/api")
	authRequired := authn.Required()
	upload := middleware.BodyLimit(maxUploadBytes)

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		limited := auth.Group("")
		if authLimit != nil {
			limited.Use(authLimit)
		}
		limited.POST("/register", authHandler.Register)
		limited.POST("/login", authHandler.Login)

		auth.POST("/logout", authRequired, authHandler.Logout)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	// --- 频道模块 ---
	channels := api.Group("/channels")
	{
		channels.GET("/:id", channelHandler.GetChannel)

		channelsAuth := channels.Group("", authRequired)
		{
			channelsAuth.PUT("/:id", upload, channelHandler.UpdateChannel)
			channelsAuth.PUT("/subscribe/:id", channelHandler.Subscribe)
			channelsAuth.PUT("/unsubscribe/:id", channelHandler.Unsubscribe)
		}
	}

	// --- 视频模块 ---
	videos := api.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.GET("/:id", videoHandler.GetDetail)
		videos.GET("/channel/:id", videoHandler.ListByChannel)

		videosAuth := videos.Group("", authRequired)
		{
			videosAuth.POST("", upload, videoHandler.Create)
			videosAuth.PUT("/:id", upload, videoHandler.Update)
			videosAuth.DELETE("/:id", videoHandler.Delete)
			videosAuth.PUT("/like/:videoId", videoHandler.Like)
			videosAuth.PUT("/dislike/:videoId", videoHandler.Dislike)
		}
	}

	// --- 评论模块 ---
	comments := api.Group("/comments")
	{
		comments.GET("/video/:videoId", commentHandler.ListByVideo)

		commentsAuth := comments.Group("", authRequired)
		{
			commentsAuth.POST("/video/:videoId", commentHandler.Create)
			commentsAuth.PUT("/:commentId", commentHandler.Update)
			commentsAuth.DELETE("/:commentId", commentHandler.Delete)
			commentsAuth.POST("/:commentId/like", commentHandler.Like)
			commentsAuth.POST("/:commentId/dislike", commentHandler.Dislike)
		}
	}

	// --- 观看记录模块 ---
	history := api.Group("/history", authRequired)
	{
		history.POST("/add", historyHandler.Add)
		history.GET("/get", historyHandler.List)
		history.DELETE("/clear", historyHandler.Clear)
		history.DELETE("/delete/:historyId", historyHandler.DeleteOne)
	}
}
