package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/pkg/result"
)

// ErrorHandler はハンドラが c.Error で登録したエラーを500レスポンスに変換する。
// ハンドラが既にレスポンスを書き込んでいる場合はログ出力のみ行う。
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		logger.ErrorContext(c.Request.Context(), "リクエストの処理に失敗しました",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err.Err),
		)

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			result.ErrorResponse(MsgServerError, err.Error()))
	}
}
