package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/glamora/booking-api/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(cfg *config.Config, role string) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(cfg), RequireRole(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetUint(ContextUserID)})
	})
	return r
}

func signTestToken(t *testing.T, secret string, userID uint, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := protectedRouter(cfg, "artist")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := protectedRouter(cfg, "artist")

	token := signTestToken(t, "wrong-secret", 1, "artist")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := protectedRouter(cfg, "artist")

	token := signTestToken(t, "secret", 1, "client")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := protectedRouter(cfg, "artist")

	token := signTestToken(t, "secret", 42, "artist")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}
