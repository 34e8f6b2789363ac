package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSecretRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/hook", SecretToken(secret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestSecretToken(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"符合", "s3cret", "s3cret", http.StatusOK},
		{"不符", "s3cret", "wrong", http.StatusUnauthorized},
		{"缺標頭", "s3cret", "", http.StatusUnauthorized},
		{"未設定時放行", "", "", http.StatusOK},
		{"未設定時忽略標頭", "", "anything", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSecretRouter(tt.secret)
			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			if tt.header != "" {
				req.Header.Set("X-Telegram-Bot-Api-Secret-Token", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("狀態碼 = %d, 要 %d", w.Code, tt.want)
			}
		})
	}
}
