package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/pkg/result"
)

const (
	// MsgAuthRequired はトークンが提示されなかった場合のメッセージ。
	MsgAuthRequired = "認証が必要です"
	// MsgInvalidToken はトークンが一致しなかった場合のメッセージ。
	MsgInvalidToken = "無効なトークンです"
)

// bearerPrefix はAuthorizationヘッダーのスキーム部分。大文字小文字を区別する。
const bearerPrefix = "Bearer "

// BearerAuth は固定のBearerトークンを検証するGinミドルウェアを返す。
// ヘッダーが無い、またはBearer形式でない場合は401、トークンが一致しない場合は403を返す。
func BearerAuth(token string) gin.HandlerFunc {
	want := []byte(token)

	return func(c *gin.Context) {
		got, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, result.FailureResponse(MsgAuthRequired))
			return
		}

		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, result.FailureResponse(MsgInvalidToken))
			return
		}

		c.Next()
	}
}
