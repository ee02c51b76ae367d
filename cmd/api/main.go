package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidshare-go/internal/api/handler"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/router"
	"vidshare-go/internal/config"
	"vidshare-go/internal/infra/database"
	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	infraMinio "vidshare-go/internal/infra/minio"
	infraRedis "vidshare-go/internal/infra/redis"
	"vidshare-go/internal/repository"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"
	"vidshare-go/pkg/utils"

	_ "vidshare-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title VidShare API
// @version 1.0
// @description 视频分享平台 API 服务：频道、视频、评论、订阅与观看记录

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:5001
// @BasePath /api

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name accessToken
// @description 登录后写入的会话 Cookie，也可使用 Authorization: Bearer {token}

func main() {
	configPath := flag.String("config", envOr("VIDSHARE_CONFIG", "configs/config.yaml"), "配置文件路径")
	flag.Parse()

	// 加载配置文件
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	redisClient, err := infraRedis.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close(redisClient)

	// 初始化MinIO
	storage, err := infraMinio.New(&cfg.MinIO)
	if err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化依赖（Repository -> Service -> Handler）
	channelRepo := repository.NewChannelRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireDuration(), cfg.App.Name)
	denylist := infraRedis.NewTokenDenylist(redisClient)

	authService := service.NewAuthService(channelRepo, tokens, denylist, storage)
	channelService := service.NewChannelService(channelRepo, subRepo, videoRepo, storage)
	subscriptionService := service.NewSubscriptionService(subRepo, channelRepo)
	videoService := service.NewVideoService(videoRepo, channelRepo, subRepo, reactionRepo, storage)
	commentService := service.NewCommentService(commentRepo, videoRepo, storage)
	historyService := service.NewHistoryService(historyRepo, videoRepo, storage)

	// Kafka 视频事件（可选，供搜索索引 worker 消费）
	if cfg.Kafka.Enabled {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		videoService.WithPublisher(producer)
	}

	// Elasticsearch 标题搜索（可选，失败则搜索降级到 DB）
	if cfg.Elasticsearch.Enabled {
		esClient, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			videoService.WithSearcher(infraES.NewVideoIndex(esClient, cfg.Elasticsearch.VideosIndex()))
		}
	}

	authHandler := handler.NewAuthHandler(authService, channelService, cfg.Cookie)
	channelHandler := handler.NewChannelHandler(channelService, subscriptionService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	historyHandler := handler.NewHistoryHandler(historyService)

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	if cfg.Metrics.Enabled {
		metrics := middleware.NewMetrics("vidshare")
		r.Use(metrics.Middleware())
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	var authLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := infraRedis.NewRateLimiter(redisClient, cfg.RateLimit.Max, cfg.RateLimit.WindowDuration())
		authLimit = middleware.RateLimit(limiter)
	}

	// 注册基础路由
	app := appInfo{name: cfg.App.Name, version: cfg.App.Version, mode: cfg.App.Mode}
	r.GET("/healthz", app.healthCheck)
	r.GET("/", app.root)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r,
		middleware.NewAuthenticator(tokens, denylist, cfg.Cookie.Name),
		authLimit,
		cfg.App.MaxUploadMB<<20,
		authHandler,
		channelHandler,
		videoHandler,
		commentHandler,
		historyHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Bool("kafka", cfg.Kafka.Enabled),
		zap.Bool("elasticsearch", cfg.Elasticsearch.Enabled),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownDuration())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

type appInfo struct {
	name    string
	version string
	mode    string
}

// healthCheck 健康检查接口
func (a appInfo) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   a.name,
		"version":   a.version,
		"mode":      a.mode,
	})
}

// root 根路径处理器
func (a appInfo) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", a.name),
		"project": a.name,
		"version": a.version,
		"mode":    a.mode,
		"docs":    "/swagger/index.html",
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
