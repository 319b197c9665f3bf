package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/internal/config"
	"github.com/nao1215/irepo-gateway-mock/internal/log"
	"github.com/nao1215/irepo-gateway-mock/pkg/requestid"
)

// TestRequestLogger はRequestLoggerミドルウェアを検証する。
func TestRequestLogger(t *testing.T) {
	t.Parallel()

	newRouter := func(buf *bytes.Buffer, gotID *string) *gin.Engine {
		logger := log.New(config.Log{Format: config.LogFormatJSON, Level: slog.LevelDebug}, buf)
		router := gin.New()
		router.Use(RequestLogger(logger))
		router.GET("/test", func(c *gin.Context) {
			*gotID, _ = requestid.FromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("リクエストIDが払い出されレスポンスヘッダーとcontextに設定されること", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var gotID string
		router := newRouter(&buf, &gotID)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		header := w.Header().Get(requestid.Header)
		if header == "" {
			t.Fatal("X-Request-ID ヘッダーが設定されるべき")
		}
		if gotID != header {
			t.Errorf("contextのリクエストID = %q, want %q", gotID, header)
		}
		if !strings.Contains(buf.String(), header) {
			t.Errorf("ログにリクエストIDが含まれるべき: %s", buf.String())
		}
	})

	t.Run("クライアントのリクエストIDを引き継ぐこと", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var gotID string
		router := newRouter(&buf, &gotID)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(requestid.Header, "client-id-1")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get(requestid.Header); got != "client-id-1" {
			t.Errorf("X-Request-ID = %q, want %q", got, "client-id-1")
		}
		if gotID != "client-id-1" {
			t.Errorf("contextのリクエストID = %q, want %q", gotID, "client-id-1")
		}
	})

	t.Run("Authorizationヘッダーの値がログに出力されないこと", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var gotID string
		router := newRouter(&buf, &gotID)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer super-secret")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		out := buf.String()
		if strings.Contains(out, "super-secret") {
			t.Errorf("トークンがログに出力されている: %s", out)
		}
		if !strings.Contains(out, redacted) {
			t.Errorf("伏せ字がログに含まれるべき: %s", out)
		}
	})
}
