package elasticsearch

import (
	"context"
	"fmt"
	"strings"

	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

// videosIndexMapping title 同时建 text 与 keyword 子字段，keyword 用于大小写不敏感的子串匹配
const videosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"channel_id": {"type": "long"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
			},
			"desc": {"type": "text"},
			"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureIndex 确保 videos 索引存在，不存在则创建
func (v *VideoIndex) EnsureIndex(ctx context.Context) error {
	resp, err := v.client.Indices.Exists(
		[]string{v.index},
		v.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", v.index))
		return nil
	}

	resp, err = v.client.Indices.Create(
		v.index,
		v.client.Indices.Create.WithContext(ctx),
		v.client.Indices.Create.WithBody(strings.NewReader(videosIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", v.index))
	return nil
}
