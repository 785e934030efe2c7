package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newAuthRouter builds a router with AuthRequired protecting a probe endpoint.
func newAuthRouter(validator Validator) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(validator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint(ContextUserID),
			"email":  c.GetString(ContextEmail),
			"role":   c.GetString(ContextRole),
		})
	})
	return r
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	router := newAuthRouter(svc)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
		})
	}
}

// TestAuthRequired_InvalidToken は署名不正・期限切れトークンで401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	router := newAuthRouter(svc)

	other := NewService("other-secret", time.Hour)
	badSig, err := other.GenerateToken(1, "admin@dashboard.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiredSvc := &Service{secret: []byte("test-secret"), expiration: -time.Hour}
	expired, err := expiredSvc.GenerateToken(1, "admin@dashboard.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "garbage"},
		{"wrong signature", badSig},
		{"expired token", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
		})
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、
// クレームがコンテキストに設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	var gotUserID uint
	var gotEmail, gotRole string
	r := gin.New()
	r.GET("/protected", AuthRequired(svc), func(c *gin.Context) {
		gotUserID = c.GetUint(ContextUserID)
		gotEmail = c.GetString(ContextEmail)
		gotRole = c.GetString(ContextRole)
		c.Status(http.StatusOK)
	})

	token, err := svc.GenerateToken(7, "admin@dashboard.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotUserID != 7 {
		t.Errorf("expected userID 7, got %d", gotUserID)
	}
	if gotEmail != "admin@dashboard.com" {
		t.Errorf("expected email admin@dashboard.com, got %q", gotEmail)
	}
	if gotRole != "admin" {
		t.Errorf("expected role admin, got %q", gotRole)
	}
}
