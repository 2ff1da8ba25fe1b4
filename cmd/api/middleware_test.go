package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/auth"
)

func TestSplitBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"Bearer  abc123", "abc123", true},
		{"bearer abc123", "", false},
		{"Basic abc123", "", false},
		{"Bearer", "", false},
		{"Bearer a b", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := splitBearer(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("splitBearer(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	maker := auth.NewJWTMaker("0123456789abcdef0123456789abcdef")
	app := &application{TokenMaker: maker}

	r := gin.New()
	r.GET("/protected", app.AuthMiddleware(), func(c *gin.Context) {
		claims, _ := c.Get("claims")
		uc := claims.(*auth.UserClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": uc.UserID})
	})

	userID := uuid.New()
	token, _, err := maker.GenerateToken(userID, "jane@example.com", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
