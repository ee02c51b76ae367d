package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"vidshare-go/internal/api/handler"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/router"
	"vidshare-go/internal/config"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/internal/service"
	"vidshare-go/internal/testutil"
	"vidshare-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	engine  *gin.Engine
	db      *gorm.DB
	tokens  *utils.TokenManager
	storage *testutil.FakeStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	storage := testutil.NewFakeStorage()
	tokens := utils.NewTokenManager("test-secret", 24*time.Hour, "vidshare")

	channelRepo := repository.NewChannelRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	channelService := service.NewChannelService(channelRepo, subRepo, videoRepo, storage)
	cookie := config.CookieConfig{Name: "accessToken", Secure: true, SameSite: "none"}

	r := gin.New()
	router.Setup(r,
		middleware.NewAuthenticator(tokens, nil, cookie.Name),
		nil,
		1<<20,
		handler.NewAuthHandler(service.NewAuthService(channelRepo, tokens, nil, storage), channelService, cookie),
		handler.NewChannelHandler(channelService, service.NewSubscriptionService(subRepo, channelRepo)),
		handler.NewVideoHandler(service.NewVideoService(videoRepo, channelRepo, subRepo, reactionRepo, storage)),
		handler.NewCommentHandler(service.NewCommentService(commentRepo, videoRepo, storage)),
		handler.NewHistoryHandler(service.NewHistoryService(historyRepo, videoRepo, storage)),
	)
	return &testServer{engine: r, db: db, tokens: tokens, storage: storage}
}

func (s *testServer) channel(t *testing.T, name string) (*model.Channel, string) {
	t.Helper()
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	ch := &model.Channel{Name: name, Email: strings.ToLower(name) + "@x.com", Password: hash}
	require.NoError(t, s.db.Create(ch).Error)
	token, _, err := s.tokens.Generate(ch.ID)
	require.NoError(t, err)
	return ch, token
}

func (s *testServer) video(t *testing.T, channelID int64) *model.Video {
	t.Helper()
	v := &model.Video{ChannelID: channelID, Title: "t", Cover: "cover/c.png", VideoURL: "videos/v.mp4"}
	require.NoError(t, s.db.Create(v).Error)
	return v
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

type part struct {
	field, filename, contentType string
}

func multipartBody(t *testing.T, fields map[string]string, files ...part) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write([]byte("data"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": "alice", "email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Alice"`)
	assert.NotContains(t, w.Body.String(), "password")

	w = s.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": "Alice", "email": "b@x.com", "password": "pw"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"name": "alice", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Alice", body["name"])
	assert.Contains(t, body, "profile")
	assert.Len(t, body, 3)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "accessToken", c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, 86400, c.MaxAge)

	claims, err := s.tokens.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(body["id"].(float64)), claims.ChannelID)

	w = s.do(http.MethodGet, "/api/auth/me", c.Value, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginErrors(t *testing.T) {
	s := newTestServer(t)
	s.channel(t, "Alice")

	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"name": "alice", "password": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Wrong password or channel name!"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"name": "nobody", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVideo_MissingCover(t *testing.T) {
	s := newTestServer(t)
	_, token := s.channel(t, "Alice")

	body, contentType := multipartBody(t, map[string]string{"title": "t"}, part{"video", "v.mp4", "video/mp4"})
	req := httptest.NewRequest(http.MethodPost, "/api/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Upload cover image"}`, w.Body.String())
	assert.Zero(t, s.storage.Count())
}

func oversizeUpload(t *testing.T, method, path, token, field string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "big"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="big.bin"`, field))
	h.Set("Content-Type", "video/mp4")
	w, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = w.Write(bytes.Repeat([]byte("x"), 2<<20))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	return req
}

func TestUpload_TooLarge(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.channel(t, "Alice")
	v := s.video(t, alice.ID)

	cases := []struct {
		name, method, path, field string
	}{
		{"create video", http.MethodPost, "/api/videos", "video"},
		{"update video", http.MethodPut, fmt.Sprintf("/api/videos/%d", v.ID), "video"},
		{"update channel", http.MethodPut, fmt.Sprintf("/api/channels/%d", alice.ID), "profile"},
	}
	for _, tc := range cases {
		for _, streamed := range []bool{false, true} {
			req := oversizeUpload(t, tc.method, tc.path, token, tc.field)
			if streamed {
				req.ContentLength = -1
			}
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, "%s streamed=%v: %s", tc.name, streamed, w.Body.String())
			assert.JSONEq(t, `{"status":"failed","Error_Message":"Uploaded file is too large"}`, w.Body.String(), tc.name)
		}
	}
	assert.Zero(t, s.storage.Count())
}

func TestCreateVideo(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.channel(t, "Alice")

	body, contentType := multipartBody(t, map[string]string{"title": "Hello", "desc": "d"},
		part{"video", "v.mp4", "video/mp4"}, part{"cover", "c.png", "image/png"})
	req := httptest.NewRequest(http.MethodPost, "/api/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Hello", info["title"])
	assert.Equal(t, float64(alice.ID), info["channelId"])
	assert.True(t, strings.HasPrefix(info["videoUrl"].(string), "signed://videos/"))
	assert.Equal(t, 2, s.storage.Count())
}

func TestCreateVideo_Unauthenticated(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/videos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteVideo_NonOwner(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.channel(t, "Alice")
	_, bobToken := s.channel(t, "Bob")
	v := s.video(t, alice.ID)
	path := fmt.Sprintf("/api/videos/%d", v.ID)

	w := s.do(http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Delete videos from other channels not allowed."}`, w.Body.String())

	var count int64
	require.NoError(t, s.db.Model(&model.Video{}).Where("id = ?", v.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = s.do(http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Video has been deleted."}`, w.Body.String())
}

func TestVideoReadsAndReactions(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.channel(t, "Alice")
	_, bobToken := s.channel(t, "Bob")

	w := s.do(http.MethodGet, "/api/videos", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"No video record found."}`, w.Body.String())

	v := s.video(t, alice.ID)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/videos/like/%d", v.ID), bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Video liked."}`, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/videos/%d", v.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"views":1`)
	assert.Contains(t, w.Body.String(), `"name":"Alice"`)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/videos/channel/%d", alice.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPut, "/api/videos/like/999", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribe(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.channel(t, "Alice")
	bob, _ := s.channel(t, "Bob")

	w := s.do(http.MethodPut, fmt.Sprintf("/api/channels/subscribe/%d", bob.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Subscription successful."}`, w.Body.String())

	w = s.do(http.MethodPut, fmt.Sprintf("/api/channels/subscribe/%d", alice.ID), aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/channels/%d", bob.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"subscribers":[%d]`, alice.ID))
}

func TestUpdateChannel_OtherChannel(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.channel(t, "Alice")
	_, bobToken := s.channel(t, "Bob")

	w := s.do(http.MethodPut, fmt.Sprintf("/api/channels/%d", alice.ID), bobToken, map[string]string{"desc": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Modifying other channels' info is not allowed!"}`, w.Body.String())
}

func TestComments(t *testing.T) {
	s := newTestServer(t)
	alice, aliceToken := s.channel(t, "Alice")
	bob, bobToken := s.channel(t, "Bob")
	v := s.video(t, alice.ID)

	w := s.do(http.MethodPost, fmt.Sprintf("/api/comments/video/%d", v.ID), bobToken,
		map[string]interface{}{"channelId": bob.ID, "desc": "nice"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success bool `json:"success"`
		Comment struct {
			ID       int64 `json:"id"`
			UserInfo struct {
				Name string `json:"name"`
			} `json:"userInfo"`
		} `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Bob", created.Comment.UserInfo.Name)

	path := fmt.Sprintf("/api/comments/%d", created.Comment.ID)
	w = s.do(http.MethodPut, path, aliceToken, map[string]string{"desc": "hacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"You can only update your own comments"}`, w.Body.String())

	w = s.do(http.MethodPost, path+"/like", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"likes":[%d]`, alice.ID))

	w = s.do(http.MethodGet, fmt.Sprintf("/api/comments/video/%d", v.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = s.do(http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Comment deleted successfully"}`, w.Body.String())
}

func TestHistory(t *testing.T) {
	s := newTestServer(t)
	alice, token := s.channel(t, "Alice")
	v := s.video(t, alice.ID)

	w := s.do(http.MethodPost, "/api/history/add", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Video ID is required"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/history/add", token, map[string]interface{}{"videoId": v.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Video added to watch history"`)

	w = s.do(http.MethodPost, "/api/history/add", token, map[string]interface{}{"videoId": v.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Watch history updated"`)

	w = s.do(http.MethodGet, "/api/history/get", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)

	w = s.do(http.MethodDelete, "/api/history/delete/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/history/clear", token, nil)
	assert.JSONEq(t, `{"message":"Watch history cleared"}`, w.Body.String())

	w = s.do(http.MethodDelete, "/api/history/clear", token, nil)
	assert.JSONEq(t, `{"message":"No watch history to clear"}`, w.Body.String())
}
