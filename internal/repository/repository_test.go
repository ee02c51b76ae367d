package repository

import (
	"testing"
	"time"

	"vidshare-go/internal/model"
	"vidshare-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createChannel(t *testing.T, db *gorm.DB, name string) *model.Channel {
	t.Helper()
	ch := &model.Channel{Name: name, Email: name + "@x.com", Password: "hash"}
	require.NoError(t, NewChannelRepository(db).Create(ch))
	return ch
}

func createVideo(t *testing.T, db *gorm.DB, channelID int64, title string) *model.Video {
	t.Helper()
	v := &model.Video{ChannelID: channelID, Title: title, Cover: "cover/c.png", VideoURL: "videos/v.mp4"}
	require.NoError(t, NewVideoRepository(db).Create(v))
	return v
}

func TestChannelRepository_UniqueNameAndEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewChannelRepository(db)
	createChannel(t, db, "Alice")

	err := repo.Create(&model.Channel{Name: "Alice", Email: "other@x.com", Password: "h"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = repo.Create(&model.Channel{Name: "Bob", Email: "Alice@x.com", Password: "h"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := repo.ExistsByNameOrEmail("Carol", "Alice@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestChannelRepository_FindForLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewChannelRepository(db)
	alice := createChannel(t, db, "Alice")

	byName, err := repo.FindForLogin("Alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.FindForLogin("Alice@x.com", "Alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, err = repo.FindForLogin("Nobody", "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 邮箱按原始输入匹配：首字母大写后的值只用于频道名
	bob := &model.Channel{Name: "Bob", Email: "bob@x.com", Password: "hash"}
	require.NoError(t, repo.Create(bob))

	byRawEmail, err := repo.FindForLogin("Bob@x.com", "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, byRawEmail.ID)

	_, err = repo.FindForLogin("Bob@x.com", "Bob@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubscriptionRepository_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSubscriptionRepository(db)
	a := createChannel(t, db, "A")
	b := createChannel(t, db, "B")

	require.NoError(t, repo.Subscribe(a.ID, b.ID))
	require.NoError(t, repo.Subscribe(a.ID, b.ID))

	subs, err := repo.SubscriptionIDs(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, subs)

	followers, err := repo.SubscriberIDs(b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, followers)

	require.NoError(t, repo.Unsubscribe(a.ID, b.ID))
	require.NoError(t, repo.Unsubscribe(a.ID, b.ID))

	subs, err = repo.SubscriptionIDs(a.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
	followers, err = repo.SubscriberIDs(b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestReactionRepository_Disjoint(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReactionRepository(db)
	owner := createChannel(t, db, "Owner")
	viewer := createChannel(t, db, "Viewer")
	v := createVideo(t, db, owner.ID, "clip")

	require.NoError(t, repo.Set(v.ID, viewer.ID, model.ReactionDislike))
	require.NoError(t, repo.Set(v.ID, viewer.ID, model.ReactionLike))
	require.NoError(t, repo.Set(v.ID, viewer.ID, model.ReactionLike))

	sets, err := repo.ByVideos([]int64{v.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{viewer.ID}, sets[v.ID].Likes)
	assert.Empty(t, sets[v.ID].Dislikes)

	require.NoError(t, repo.Set(v.ID, viewer.ID, model.ReactionDislike))
	sets, err = repo.ByVideos([]int64{v.ID})
	require.NoError(t, err)
	assert.Empty(t, sets[v.ID].Likes)
	assert.Equal(t, []int64{viewer.ID}, sets[v.ID].Dislikes)
}

func TestVideoRepository_IncrementViewsAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVideoRepository(db)
	owner := createChannel(t, db, "Owner")
	v := createVideo(t, db, owner.ID, "clip")

	got, err := repo.IncrementViewsAndGet(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got, err = repo.IncrementViewsAndGet(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)

	_, err = repo.IncrementViewsAndGet(v.ID + 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVideoRepository_SearchByTitle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVideoRepository(db)
	owner := createChannel(t, db, "Owner")
	createVideo(t, db, owner.ID, "Learning Go")
	createVideo(t, db, owner.ID, "GOLANG tips")
	createVideo(t, db, owner.ID, "100% rust")

	videos, err := repo.SearchByTitle("go")
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	videos, err = repo.SearchByTitle("100%")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "100% rust", videos[0].Title)

	videos, err = repo.SearchByTitle("_")
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestVideoRepository_DeleteRemovesReactions(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVideoRepository(db)
	owner := createChannel(t, db, "Owner")
	v := createVideo(t, db, owner.ID, "clip")
	require.NoError(t, NewReactionRepository(db).Set(v.ID, owner.ID, model.ReactionLike))

	ids, err := repo.IDsByChannel(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{v.ID}, ids)

	require.NoError(t, repo.Delete(v.ID))

	var count int64
	require.NoError(t, db.Model(&model.VideoReaction{}).Count(&count).Error)
	assert.Zero(t, count)

	ids, err = repo.IDsByChannel(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, repo.Delete(v.ID), gorm.ErrRecordNotFound)
}

func TestVideoRepository_GetByIDsKeepsOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVideoRepository(db)
	owner := createChannel(t, db, "Owner")
	a := createVideo(t, db, owner.ID, "a")
	b := createVideo(t, db, owner.ID, "b")

	videos, err := repo.GetByIDs([]int64{b.ID, 999, a.ID})
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, b.ID, videos[0].ID)
	assert.Equal(t, a.ID, videos[1].ID)
}

func TestCommentRepository_Likes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommentRepository(db)
	author := createChannel(t, db, "Author")
	v := createVideo(t, db, author.ID, "clip")

	c := &model.Comment{VideoID: v.ID, ChannelID: author.ID, UserID: author.ID, Desc: "nice"}
	require.NoError(t, repo.Create(c))

	require.NoError(t, repo.AddLike(c.ID, author.ID))
	require.NoError(t, repo.AddLike(c.ID, author.ID))
	likes, err := repo.LikesByComments([]int64{c.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{author.ID}, likes[c.ID])

	require.NoError(t, repo.RemoveLike(c.ID, author.ID))
	likes, err = repo.LikesByComments([]int64{c.ID})
	require.NoError(t, err)
	assert.Empty(t, likes[c.ID])

	loaded, err := repo.GetByIDWithUser(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Author", loaded.User.Name)
	assert.Equal(t, "nice", loaded.Desc)
}

func TestHistoryRepository_UpsertKeepsOneEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHistoryRepository(db)
	user := createChannel(t, db, "User")
	v := createVideo(t, db, user.ID, "clip")

	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	_, created, err := repo.Upsert(user.ID, v.ID, first)
	require.NoError(t, err)
	assert.True(t, created)

	entry, created, err := repo.Upsert(user.ID, v.ID, later)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, entry.WatchedAt.Equal(later))

	entries, err := repo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].WatchedAt.Equal(later))
	require.NotNil(t, entries[0].Video)
	assert.Equal(t, "clip", entries[0].Video.Title)
}

func TestHistoryRepository_PurgeOrphansOnlyForUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHistoryRepository(db)
	videos := NewVideoRepository(db)
	u1 := createChannel(t, db, "U1")
	u2 := createChannel(t, db, "U2")
	kept := createVideo(t, db, u1.ID, "kept")
	gone := createVideo(t, db, u1.ID, "gone")
	now := time.Now().UTC()

	for _, uid := range []int64{u1.ID, u2.ID} {
		_, _, err := repo.Upsert(uid, kept.ID, now)
		require.NoError(t, err)
		_, _, err = repo.Upsert(uid, gone.ID, now)
		require.NoError(t, err)
	}
	require.NoError(t, videos.Delete(gone.ID))

	purged, err := repo.PurgeOrphans(u1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var remaining int64
	require.NoError(t, db.Model(&model.WatchHistory{}).Where("user_id = ?", u2.ID).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}

func TestHistoryRepository_DeleteOneChecksOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHistoryRepository(db)
	u1 := createChannel(t, db, "U1")
	u2 := createChannel(t, db, "U2")
	v := createVideo(t, db, u1.ID, "clip")

	entry, _, err := repo.Upsert(u1.ID, v.ID, time.Now().UTC())
	require.NoError(t, err)

	deleted, err := repo.DeleteOne(entry.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteOne(entry.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err := repo.DeleteByUser(u1.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
