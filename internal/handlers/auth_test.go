package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/middleware"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	db.DB = g

	r := gin.New()
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) (uint, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     username,
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	require.NotEmpty(t, resp.Token)
	return resp.ID, resp.Token
}

func TestRegister(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
	assert.NotContains(t, resp, "password")
	// Relationship arrays are present from the first response.
	assert.Contains(t, resp, "followers")
	assert.Contains(t, resp, "following")
	assert.Contains(t, resp, "follow_requests")
}

func TestRegisterDuplicate(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice Again",
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"username": "alice",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r := newTestServer(t)
	_, token := registerUser(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
}

func TestFollowEndToEnd(t *testing.T) {
	r := newTestServer(t)
	aliceID, aliceToken := registerUser(t, r, "alice")
	bobID, bobToken := registerUser(t, r, "bob")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d/follow", bobID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "following", resp.Status)

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bob struct {
		Followers []uint `json:"followers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bob))
	assert.Equal(t, []uint{aliceID}, bob.Followers)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	r := newTestServer(t)
	aliceID, aliceToken := registerUser(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", aliceToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, db.DB.Model(&models.User{}).
		Where("id = ?", aliceID).Update("is_admin", true).Error)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
