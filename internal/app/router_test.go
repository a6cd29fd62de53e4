package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mythos_backend/internal/config"
	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}
	store, err := NewStore(&config.Config{Store: config.StoreConfig{Seed: true}})
	require.NoError(t, err)
	return New(cfg, store, service.NopActivityPublisher{})
}

func do(t *testing.T, a *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Status      string         `json:"status"`
		Collections map[string]int `json:"collections"`
	}](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 12, body.Collections["stories"])
	assert.NotEmpty(t, w.Header().Get(util.RequestIDHeader))
}

func TestStories(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/stories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Story](t, w), 12)

	w = do(t, a, http.MethodGet, "/api/stories/featured", nil)
	assert.Len(t, decode[[]model.Story](t, w), 4)

	w = do(t, a, http.MethodGet, "/api/stories/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), decode[model.Story](t, w).ID)

	w = do(t, a, http.MethodGet, "/api/stories/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Story not found"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/stories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid story ID"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/stories/category/shiva", nil)
	for _, s := range decode[[]model.Story](t, w) {
		assert.Equal(t, "Shiva", s.Category)
	}
}

func TestSearch(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Search query is required"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/search?q=%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Search query is required"}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/vr/scenes/search?q=%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodGet, "/api/search?q=ganesh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[[]model.Story](t, w))
}

func TestCreateThread_RejectsShortTitle(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/threads", map[string]any{
		"forumId": 1, "userId": 1, "title": "Hi", "content": "A question about the churning of the ocean",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[util.Response](t, w)
	assert.Equal(t, "Invalid thread data", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "min", body.Errors[0].Tag)

	w = do(t, a, http.MethodPost, "/api/threads", map[string]any{
		"forumId": 1, "userId": 1, "title": "The churning of the ocean", "content": "Who held the serpent's tail?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestComment_TouchesThread(t *testing.T) {
	a := newTestApp(t)
	before, ok := a.Store.ThreadByID(1)
	require.True(t, ok)

	w := do(t, a, http.MethodPost, "/api/comments", map[string]any{
		"threadId": 1, "userId": 2, "content": "Jai Ganesha",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	comment := decode[model.DiscussionComment](t, w)

	w = do(t, a, http.MethodGet, "/api/threads/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	thread := decode[model.DiscussionThread](t, w)

	assert.False(t, thread.LastActivityAt.Before(comment.CreatedAt))
	assert.Equal(t, before.ViewCount+1, thread.ViewCount)

	w = do(t, a, http.MethodGet, "/api/threads/1/comments", nil)
	assert.Contains(t, w.Body.String(), "Jai Ganesha")

	w = do(t, a, http.MethodGet, "/api/threads/999", nil)
	assert.JSONEq(t, `{"message":"Thread not found"}`, w.Body.String())
}

func TestPreferences_Upsert(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/users/1/preferences", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, a, http.MethodPost, "/api/users/1/preferences", map[string]any{"preferredCategories": []string{"Shiva"}})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[model.UserPreference](t, w)

	w = do(t, a, http.MethodPost, "/api/users/1/preferences", map[string]any{"preferredCategories": []string{"Krishna"}})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode[model.UserPreference](t, w)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"Krishna"}, second.PreferredCategories)

	w = do(t, a, http.MethodGet, "/api/users/1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, second.ID, decode[model.UserPreference](t, w).ID)
}

func TestRecommendations(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/users/1/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Story](t, w), repository.DefaultRecommendationLimit)

	w = do(t, a, http.MethodGet, "/api/users/1/recommendations?limit=2", nil)
	assert.Len(t, decode[[]model.Story](t, w), 2)

	w = do(t, a, http.MethodGet, "/api/users/1/recommendations?limit=lots", nil)
	assert.Len(t, decode[[]model.Story](t, w), repository.DefaultRecommendationLimit)

	w = do(t, a, http.MethodGet, "/api/users/1/recommendations?limit=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/interactions", map[string]any{"userId": 1, "storyId": 1, "interactionType": "view"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, a, http.MethodGet, "/api/users/1/recommendations?limit=20", nil)
	stories := decode[[]model.Story](t, w)
	assert.Len(t, stories, 11)
	for _, s := range stories {
		assert.NotEqual(t, uint(1), s.ID)
	}
}

func TestBookmarks(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/bookmarks", map[string]any{"userId": 1, "storyId": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	bookmark := decode[model.Bookmark](t, w)

	w = do(t, a, http.MethodGet, "/api/users/1/bookmarks", nil)
	assert.Len(t, decode[[]model.Bookmark](t, w), 1)

	path := "/api/bookmarks/" + jsonNumber(bookmark.ID)
	w = do(t, a, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, a, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Bookmark not found"}`, w.Body.String())
}

func TestProgress(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPatch, "/api/users/1/progress/2", map[string]any{"progress": 50})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Progress not found"}`, w.Body.String())

	w = do(t, a, http.MethodPatch, "/api/users/x/progress/2", map[string]any{"progress": 50})
	assert.JSONEq(t, `{"message":"Invalid user ID or story ID"}`, w.Body.String())

	w = do(t, a, http.MethodPost, "/api/progress", map[string]any{"userId": 1, "storyId": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	started := decode[model.UserProgress](t, w)
	assert.Nil(t, started.CompletedAt)

	w = do(t, a, http.MethodPatch, "/api/users/1/progress/2", map[string]any{"progress": 101})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodPatch, "/api/users/1/progress/2", map[string]any{"progress": 100})
	require.Equal(t, http.StatusOK, w.Code)
	done := decode[model.UserProgress](t, w)
	assert.Equal(t, started.ID, done.ID)
	assert.NotNil(t, done.CompletedAt)

	w = do(t, a, http.MethodGet, "/api/users/1/progress", nil)
	assert.Len(t, decode[[]model.UserProgress](t, w), 1)
}

func TestPointsAndAchievements(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/points", map[string]any{"userId": 4, "points": 60, "category": "Reading", "source": "story_reading"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, a, http.MethodPost, "/api/points", map[string]any{"userId": 4, "points": 20, "category": "Quiz", "source": "quiz_completion"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, a, http.MethodGet, "/api/users/4/points", nil)
	assert.JSONEq(t, `{"userId":4,"points":80}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/users/4/points/Reading", nil)
	assert.JSONEq(t, `{"userId":4,"category":"Reading","points":60}`, w.Body.String())

	w = do(t, a, http.MethodGet, "/api/users/4/achievements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, s := range decode[[]model.AchievementStatus](t, w) {
		assert.Equal(t, 80 >= s.RequiredPoints, s.Unlocked, s.Title)
	}
}

func TestQuizSubmitEndpoint(t *testing.T) {
	a := newTestApp(t)

	questions := a.Store.QuestionsByQuizID(1)
	require.NotEmpty(t, questions)
	answers := map[string]string{}
	for _, q := range questions {
		answers[jsonNumber(q.ID)] = q.CorrectAnswer
	}

	w := do(t, a, http.MethodPost, "/api/quizzes/1/submit", map[string]any{"userId": 2, "answers": answers})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[service.QuizResult](t, w)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, len(questions)*service.PointsPerCorrect, res.PointsAwarded)

	w = do(t, a, http.MethodPost, "/api/quizzes/999/submit", map[string]any{"answers": answers})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoreAndVR(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/audio", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodGet, "/api/audio?type=background_music", nil)
	assert.Len(t, decode[[]model.AudioAsset](t, w), 2)

	w = do(t, a, http.MethodGet, "/api/characters/1/relationships", nil)
	assert.Len(t, decode[[]model.CharacterRelationship](t, w), 2)

	w = do(t, a, http.MethodGet, "/api/vr/models", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodGet, "/api/vr/scenes/deity/Shiva", nil)
	assert.NotEmpty(t, decode[[]model.VRScene](t, w))

	w = do(t, a, http.MethodGet, "/api/vr/scenes/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodGet, "/api/vr/scenes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"model":`)
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, w.Body.String())
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
