package elasticsearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// New 创建 Elasticsearch 客户端并测试连接
func New(cfg *config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	hosts := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := newClient(hosts, nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return es, nil
}

func newClient(hosts []string, transport http.RoundTripper) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		Transport:     transport,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return es, nil
}
