package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidshare-go/internal/config"
	"vidshare-go/internal/infra/database"
	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const reindexBatchSize = 500

// 搜索索引 worker：启动时全量重建视频索引，然后消费 video.* 事件增量同步
func main() {
	configPath := flag.String("config", envOr("VIDSHARE_CONFIG", "configs/config.yaml"), "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if !cfg.Elasticsearch.Enabled || !cfg.Kafka.Enabled {
		logger.Fatal("Search index worker requires both kafka and elasticsearch to be enabled")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	esClient, err := infraES.New(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	index := infraES.NewVideoIndex(esClient, cfg.Elasticsearch.VideosIndex())
	videoRepo := repository.NewVideoRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := index.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure videos index", zap.Error(err))
	}

	if err := reindex(ctx, videoRepo, index); err != nil {
		logger.Error("Full reindex failed", zap.Error(err))
	}

	topic := cfg.Kafka.Topic("video_events")
	logger.Info("Search index worker started",
		zap.String("topic", topic),
		zap.String("group", cfg.Kafka.GroupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, topic, cfg.Kafka.GroupID, eventHandler(videoRepo, index))
	logger.Info("Search index worker stopped")
}

// reindex 分批把数据库中的视频写入索引
func reindex(ctx context.Context, videoRepo *repository.VideoRepository, index *infraES.VideoIndex) error {
	var total, failed int
	err := videoRepo.FindInBatches(reindexBatchSize, func(videos []model.Video) error {
		ok, bad, err := index.BulkIndex(ctx, videos)
		total += ok
		failed += bad
		return err
	})
	logger.Info("Full reindex finished", zap.Int("indexed", total), zap.Int("failed", failed))
	return err
}

func eventHandler(videoRepo *repository.VideoRepository, index *infraES.VideoIndex) infraKafka.EventHandler {
	return func(ctx context.Context, event *infraKafka.VideoEvent) error {
		switch event.Type {
		case infraKafka.EventVideoCreated, infraKafka.EventVideoUpdated:
			video, err := videoRepo.GetByID(event.VideoID)
			if err != nil {
				// 事件到达前视频已被删除
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return index.DeleteVideo(ctx, event.VideoID)
				}
				return err
			}
			return index.IndexVideo(ctx, video)
		case infraKafka.EventVideoDeleted:
			return index.DeleteVideo(ctx, event.VideoID)
		default:
			logger.Warn("Unknown video event type", zap.String("type", event.Type))
			return nil
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
