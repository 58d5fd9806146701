package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"linkup/backend/internal/database"
	"linkup/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "handler-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

var dbSeq int

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	return NewRouter(database.NewGateway(db, database.DefaultRetries), testSecret)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user and returns its ID and token.
func registerUser(t *testing.T, router *gin.Engine, username string) (string, string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.User.ID.String(), resp.Token
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	router := testRouter(t)

	_, token := registerUser(t, router, "alice")
	assert.NotEmpty(t, token)

	// Duplicate email.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed body.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGuard(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/connections", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/connections", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTokenResolvesToIssuedUser(t *testing.T) {
	router := testRouter(t)

	aliceID, aliceToken := registerUser(t, router, "alice")
	registerUser(t, router, "bob")

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, aliceID, me.ID)
	assert.Equal(t, "alice", me.Username)
}

func TestFollowLifecycle(t *testing.T) {
	router := testRouter(t)

	aliceID, aliceToken := registerUser(t, router, "alice")
	bobID, _ := registerUser(t, router, "bob")

	// Self-follow is rejected before touching the store.
	rec := doJSON(t, router, http.MethodPost, "/api/connections/"+aliceID, aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/connections/"+bobID, aliceToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/connections/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/connections", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/connections/stats", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		FollowingCount int64 `json:"following_count"`
		FollowersCount int64 `json:"followers_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.FollowingCount)
	assert.EqualValues(t, 0, stats.FollowersCount)

	// Suggestions exclude the followed user.
	rec = doJSON(t, router, http.MethodGet, "/api/connections/suggestions", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	assert.Empty(t, suggestions)

	// Unfollow twice; both succeed.
	rec = doJSON(t, router, http.MethodDelete, "/api/connections/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodDelete, "/api/connections/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLifecycle(t *testing.T) {
	router := testRouter(t)

	aliceID, aliceToken := registerUser(t, router, "alice")
	bobID, bobToken := registerUser(t, router, "bob")

	// Self-request is rejected.
	rec := doJSON(t, router, http.MethodPost, "/api/connections/requests/"+aliceID, aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+bobID, aliceToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
	assert.Equal(t, "pending", req.Status)

	// Duplicate request.
	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Bob sees the pending request with the sender attached.
	rec = doJSON(t, router, http.MethodGet, "/api/connections/requests", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []struct {
		ID     string `json:"id"`
		Sender struct {
			Username string `json:"username"`
		} `json:"sender"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "alice", pending[0].Sender.Username)

	// Only the receiver can accept.
	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+req.ID+"/accept", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+req.ID+"/accept", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rel struct {
		FollowerID  string `json:"follower_id"`
		FollowingID string `json:"following_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rel))
	assert.Equal(t, aliceID, rel.FollowerID)
	assert.Equal(t, bobID, rel.FollowingID)

	// Accepting again is not actionable.
	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+req.ID+"/accept", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Alice now follows Bob.
	rec = doJSON(t, router, http.MethodGet, "/api/connections", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestRejectRequest(t *testing.T) {
	router := testRouter(t)

	_, aliceToken := registerUser(t, router, "alice")
	bobID, bobToken := registerUser(t, router, "bob")

	rec := doJSON(t, router, http.MethodPost, "/api/connections/requests/"+bobID, aliceToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var req struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))

	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+req.ID+"/reject", bobToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Rejecting again is not actionable.
	rec = doJSON(t, router, http.MethodPost, "/api/connections/requests/"+req.ID+"/reject", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// No edge was created.
	rec = doJSON(t, router, http.MethodGet, "/api/connections", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestSearchUsers(t *testing.T) {
	router := testRouter(t)

	_, aliceToken := registerUser(t, router, "alice")
	registerUser(t, router, "alison")
	registerUser(t, router, "bob")

	rec := doJSON(t, router, http.MethodGet, "/api/users?q=ali", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			Username string `json:"username"`
		} `json:"data"`
		Meta PaginationMeta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "alison", resp.Data[0].Username)
	assert.EqualValues(t, 1, resp.Meta.TotalItems)
}
