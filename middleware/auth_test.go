package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/me", ValidateToken(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("user_id"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("test-secret", "user-1", "linh@example.com", "customer")
	require.NoError(t, err)

	r := protectedRouter("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	r := protectedRouter("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("other-secret", "user-1", "linh@example.com", "customer")
	require.NoError(t, err)

	r := protectedRouter("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAPIKey(t *testing.T) {
	r := gin.New()
	r.GET("/admin", ValidateAPIKey("sekret"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "sekret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAPIKeyRejectsWhenUnconfigured(t *testing.T) {
	r := gin.New()
	r.GET("/admin", ValidateAPIKey(""), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
