package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-0123456789"

func testRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	r.GET("/protected", handlers...)
	return r
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "u@example.com", Role: role}
	user.ID = 1
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Candidate))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareQueryToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+tokenFor(t, model.Candidate), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddlewareForbidden(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg, model.Recruiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Candidate))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAdminAlwaysPasses(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := testRouter(cfg, model.Recruiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Admin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
