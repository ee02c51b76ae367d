package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventVideoCreated = "video.created"
	EventVideoUpdated = "video.updated"
	EventVideoDeleted = "video.deleted"
)

// VideoEvent 视频变更事件，搜索索引 worker 据此同步 ES
type VideoEvent struct {
	Type       string    `json:"type"`
	VideoID    int64     `json:"video_id"`
	ChannelID  int64     `json:"channel_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageWriter kafka.Writer 的最小接口，便于测试替换
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer 视频事件生产者
type Producer struct {
	writer MessageWriter
	topic  string
}

// NewProducer 创建 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic("video_events")),
	)

	return NewProducerWithWriter(writer, cfg.Topic("video_events"))
}

func NewProducerWithWriter(writer MessageWriter, topic string) *Producer {
	return &Producer{writer: writer, topic: topic}
}

// PublishVideoEvent 发送视频事件，同一视频的事件使用相同 key 保证分区内有序
func (p *Producer) PublishVideoEvent(ctx context.Context, event *VideoEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video event: %w", err)
	}

	logger.Debug("Video event sent",
		zap.String("type", event.Type),
		zap.Int64("video_id", event.VideoID),
	)
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
