package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nao1215/irepo-gateway-mock/pkg/requestid"
)

// redacted はログに出力しないヘッダー値の置換文字列。
const redacted = "[REDACTED]"

// RequestLogger はリクエストIDを払い出し、リクエストの開始と完了をログに出力するGinミドルウェアを返す。
// クライアントが X-Request-ID を送った場合はその値を引き継ぐ。
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := requestid.NewContext(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestid.Header, id)

		logger.DebugContext(ctx, "リクエスト受信",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("headers", redactHeaders(c.Request.Header)),
		)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, "リクエスト完了",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// redactHeaders は認証情報を伏せたヘッダーのコピーを返す。
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if k == "Authorization" || k == "Cookie" {
			out[k] = redacted
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}
