package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vidshare-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理视频事件的回调函数
type EventHandler func(ctx context.Context, event *VideoEvent) error

// StartVideoEventConsumer 启动视频事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartVideoEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka video event consumer stopped")
	}()

	logger.Info("Kafka video event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		HandleMessage(ctx, msg.Value, handler)
	}
}

// HandleMessage 解码单条消息并交给 handler，解码或处理失败只记录日志
func HandleMessage(ctx context.Context, value []byte, handler EventHandler) {
	var event VideoEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logger.Error("Failed to unmarshal video event",
			zap.Error(err),
			zap.ByteString("value", value),
		)
		return
	}

	if err := handler(ctx, &event); err != nil {
		logger.Error("Failed to handle video event",
			zap.String("type", event.Type),
			zap.Int64("video_id", event.VideoID),
			zap.Error(err),
		)
	}
}
