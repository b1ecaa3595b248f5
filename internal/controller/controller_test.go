package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/jsonfile"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full controller surface against a seeded
// flat-file store in a throwaway directory.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	content := service.NewContentService(store)
	progress := service.NewProgressService(store, store)
	recommendation := service.NewRecommendationService(store, store)
	streak := service.NewStreakService(store)
	community := service.NewCommunityService(store)
	practice := service.NewPracticeService(store, store)
	users := service.NewUserService(store, streak)

	contentCtrl := NewContentController(content)
	progressCtrl := NewProgressController(progress, recommendation, streak)
	communityCtrl := NewCommunityController(community)
	practiceCtrl := NewPracticeController(practice)
	userCtrl := NewUserController(users)
	healthCtrl := NewHealthController()

	router := gin.New()
	api := router.Group("/api")
	api.GET("/health", healthCtrl.Check)
	api.POST("/login", userCtrl.Login)
	api.GET("/resources", contentCtrl.ListResources)
	api.GET("/resources/:id", contentCtrl.GetResource)
	api.GET("/projects", contentCtrl.ListProjects)
	api.GET("/users/:username/progress", progressCtrl.GetProgress)
	api.POST("/users/:username/progress/complete", progressCtrl.MarkCompleted)
	api.POST("/users/:username/level-up", progressCtrl.LevelUp)
	api.GET("/users/:username/recommendations", progressCtrl.GetRecommendations)
	api.GET("/users/:username/streak", progressCtrl.GetStreak)
	api.POST("/community/topics", communityCtrl.CreateTopic)
	api.GET("/community/topics", communityCtrl.ListTopics)
	api.POST("/community/topics/:id/replies", communityCtrl.AddReply)
	api.GET("/practice/problems", practiceCtrl.ListProblems)
	api.POST("/practice/users/:username/completed", practiceCtrl.MarkCompleted)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doJSON(t, router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Message)
}

func TestLogin_CreatesUser(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/login", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_BlankUsername(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/login", gin.H{"username": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListResources_LevelFilter(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doJSON(t, router, http.MethodGet, "/api/resources?level=beginner", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 8)
}

func TestListResources_UnknownLevel(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodGet, "/api/resources?level=wizard", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResource_NotFound(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodGet, "/api/resources/zzz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkCompleted_ThenProgressReflectsIt(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/users/alice/progress/complete", gin.H{"resource_id": "b1"})
	require.Equal(t, http.StatusOK, w.Code)

	_, resp := doJSON(t, router, http.MethodGet, "/api/users/alice/progress", nil)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	progress, ok := data["progress"].(map[string]interface{})
	require.True(t, ok)
	completed, ok := progress["completed_resources"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"b1"}, completed)
}

func TestMarkCompleted_UnknownResource(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/users/alice/progress/complete", gin.H{"resource_id": "zzz"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLevelUp_NotEligibleIsConflict(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/users/alice/level-up", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCommunity_TopicLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/community/topics", gin.H{
		"title":    "How do decorators work?",
		"content":  "I keep getting confused by @wraps.",
		"author":   "alice",
		"category": "help",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])

	w, _ = doJSON(t, router, http.MethodPost, "/api/community/topics/1/replies", gin.H{
		"content": "Start with functools.wraps docs.",
		"author":  "bob",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/community/topics/99/replies", gin.H{
		"content": "Anyone here?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTopic_BlankTitle(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/community/topics", gin.H{"title": " ", "content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPractice_MarkUnknownProblem(t *testing.T) {
	router := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/practice/users/alice/completed", gin.H{"problem_id": "zzz"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
