package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/internal/testutil"
	"vidshare-go/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	storage *testutil.FakeStorage
	revoker *fakeRevoker
	tokens  *utils.TokenManager

	channelRepo  *repository.ChannelRepository
	subRepo      *repository.SubscriptionRepository
	videoRepo    *repository.VideoRepository
	reactionRepo *repository.ReactionRepository
	commentRepo  *repository.CommentRepository
	historyRepo  *repository.HistoryRepository

	auth     *AuthService
	channels *ChannelService
	subs     *SubscriptionService
	videos   *VideoService
	comments *CommentService
	history  *HistoryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:      testutil.NewTestDB(t),
		storage: testutil.NewFakeStorage(),
		revoker: &fakeRevoker{},
		tokens:  utils.NewTokenManager("test-secret", 24*time.Hour, "vidshare"),
	}
	f.channelRepo = repository.NewChannelRepository(f.db)
	f.subRepo = repository.NewSubscriptionRepository(f.db)
	f.videoRepo = repository.NewVideoRepository(f.db)
	f.reactionRepo = repository.NewReactionRepository(f.db)
	f.commentRepo = repository.NewCommentRepository(f.db)
	f.historyRepo = repository.NewHistoryRepository(f.db)

	f.auth = NewAuthService(f.channelRepo, f.tokens, f.revoker, f.storage)
	f.channels = NewChannelService(f.channelRepo, f.subRepo, f.videoRepo, f.storage)
	f.subs = NewSubscriptionService(f.subRepo, f.channelRepo)
	f.videos = NewVideoService(f.videoRepo, f.channelRepo, f.subRepo, f.reactionRepo, f.storage)
	f.comments = NewCommentService(f.commentRepo, f.videoRepo, f.storage)
	f.history = NewHistoryService(f.historyRepo, f.videoRepo, f.storage)
	return f
}

func (f *fixture) channel(t *testing.T, name string) *model.Channel {
	t.Helper()
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	ch := &model.Channel{Name: name, Email: strings.ToLower(name) + "@x.com", Password: hash}
	require.NoError(t, f.channelRepo.Create(ch))
	return ch
}

func (f *fixture) video(t *testing.T, channelID int64, title string) *model.Video {
	t.Helper()
	v := &model.Video{ChannelID: channelID, Title: title, Cover: "cover/c.png", VideoURL: "videos/v.mp4"}
	require.NoError(t, f.videoRepo.Create(v))
	return v
}

func file(name, contentType string) *FileUpload {
	return &FileUpload{Filename: name, ContentType: contentType, Size: 4, Reader: strings.NewReader("data")}
}

type fakeRevoker struct {
	jti string
	ttl time.Duration
}

func (r *fakeRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.jti = jti
	r.ttl = ttl
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*infraKafka.VideoEvent
	err    error
}

func (p *fakePublisher) PublishVideoEvent(_ context.Context, event *infraKafka.VideoEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeSearcher struct {
	ids []int64
	err error
}

func (s *fakeSearcher) SearchVideoIDs(_ context.Context, _ string) ([]int64, error) {
	return s.ids, s.err
}

func strPtr(s string) *string { return &s }
