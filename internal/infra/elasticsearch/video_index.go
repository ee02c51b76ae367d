package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vidshare-go/internal/model"
	"vidshare-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// searchPageSize 单次 _search 请求拉取的命中数
const searchPageSize = 500

// VideoDoc ES 视频文档结构
type VideoDoc struct {
	ID        int64  `json:"id"`
	ChannelID int64  `json:"channel_id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	CreatedAt string `json:"created_at"`
}

func videoToDoc(v *model.Video) *VideoDoc {
	return &VideoDoc{
		ID:        v.ID,
		ChannelID: v.ChannelID,
		Title:     v.Title,
		Desc:      v.Desc,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// VideoIndex 视频标题索引
type VideoIndex struct {
	client   *elasticsearch.Client
	index    string
	pageSize int
}

func NewVideoIndex(client *elasticsearch.Client, index string) *VideoIndex {
	if index == "" {
		index = "videos"
	}
	return &VideoIndex{client: client, index: index, pageSize: searchPageSize}
}

// SearchVideoIDs 按标题做大小写不敏感的子串匹配，返回全部命中的视频 ID（新视频在前）
// 结果用 search_after 逐页拉取，与数据库 LIKE 查询的结果集一致
func (v *VideoIndex) SearchVideoIDs(ctx context.Context, term string) ([]int64, error) {
	var (
		ids   []int64
		after json.RawMessage
	)
	for {
		page, last, err := v.searchPage(ctx, term, after)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page...)
		if len(page) < v.pageSize || last == nil {
			break
		}
		after = last
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (v *VideoIndex) searchPage(ctx context.Context, term string, after json.RawMessage) ([]int64, json.RawMessage, error) {
	query := map[string]interface{}{
		"size":    v.pageSize,
		"_source": []string{"id"},
		"query": map[string]interface{}{
			"wildcard": map[string]interface{}{
				"title.keyword": map[string]interface{}{
					"value":            "*" + escapeWildcard(term) + "*",
					"case_insensitive": true,
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
			map[string]interface{}{"id": map[string]string{"order": "desc"}},
		},
	}
	if after != nil {
		query["search_after"] = after
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, nil, err
	}

	resp, err := v.client.Search(
		v.client.Search.WithContext(ctx),
		v.client.Search.WithIndex(v.index),
		v.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
				Sort json.RawMessage `json:"sort"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, nil, err
	}

	hits := esResp.Hits.Hits
	ids := make([]int64, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.Source.ID)
	}
	var last json.RawMessage
	if len(hits) > 0 {
		last = hits[len(hits)-1].Sort
	}
	return ids, last, nil
}

// IndexVideo 写入或覆盖单个视频文档
func (v *VideoIndex) IndexVideo(ctx context.Context, video *model.Video) error {
	body, err := json.Marshal(videoToDoc(video))
	if err != nil {
		return err
	}

	resp, err := v.client.Index(
		v.index,
		bytes.NewReader(body),
		v.client.Index.WithContext(ctx),
		v.client.Index.WithDocumentID(strconv.FormatInt(video.ID, 10)),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", video.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频，文档不存在视为成功
func (v *VideoIndex) DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := v.client.Delete(
		v.index,
		strconv.FormatInt(videoID, 10),
		v.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkIndex 批量写入视频文档
func (v *VideoIndex) BulkIndex(ctx context.Context, videos []model.Video) (success, failed int, err error) {
	var buf strings.Builder
	for i := range videos {
		docBody, err := json.Marshal(videoToDoc(&videos[i]))
		if err != nil {
			return 0, len(videos), err
		}
		fmt.Fprintf(&buf, `{"index":{"_index":%q,"_id":"%d"}}`, v.index, videos[i].ID)
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := v.client.Bulk(
		strings.NewReader(buf.String()),
		v.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return 0, len(videos), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(videos), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return 0, len(videos), fmt.Errorf("decode bulk response: %w", err)
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

func escapeWildcard(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(term)
}
