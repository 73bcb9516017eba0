package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeabeauty/studio-scheduler/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/admin/ping", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint(ContextUserID),
			"role":   c.GetString(ContextUserRole),
		})
	})
	return r
}

func signedSession(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(7),
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func requestWithCookie(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	w := requestWithCookie(protectedRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_session")
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	cookie := signedSession(t, testSecret, time.Now().Add(time.Hour))
	w := requestWithCookie(protectedRouter(), cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}

func TestAuthMiddleware_ExpiredSession(t *testing.T) {
	cookie := signedSession(t, testSecret, time.Now().Add(-time.Hour))
	w := requestWithCookie(protectedRouter(), cookie)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_session")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cookie := signedSession(t, "some-other-secret", time.Now().Add(time.Hour))
	w := requestWithCookie(protectedRouter(), cookie)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
