package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"interview-service/internal/config"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-42")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("Expected user-42, got %s", claims.UserID)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT(""); err == nil {
		t.Error("Empty token must be rejected")
	}
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("Malformed token must be rejected")
	}
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestMiddlewareHeaderAuth(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-User-ID", "user-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestMiddlewareBearerAuth(t *testing.T) {
	r := protectedRouter()
	token, _ := GenerateJWT("user-8")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestMiddlewareRejectsAnonymous(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}
