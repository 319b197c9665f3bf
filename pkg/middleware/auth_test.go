package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/pkg/result"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testToken はテスト用のBearerトークン。
const testToken = "test-token"

// newAuthRouter はBearerAuthを適用したテスト用ルーターを返す。
func newAuthRouter(handlerCalled *bool) *gin.Engine {
	router := gin.New()
	router.Use(BearerAuth(testToken))
	router.GET("/protected", func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// decodeResult はレスポンスボディのresultオブジェクトをパースする。
func decodeResult(t *testing.T, body []byte) result.Result {
	t.Helper()

	var resp result.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("レスポンスボディのパースに失敗: %v", err)
	}
	return resp.Result
}

// TestBearerAuth はBearerAuthミドルウェアを検証する。
func TestBearerAuth(t *testing.T) {
	t.Parallel()

	t.Run("正しいトークンの場合はハンドラーが実行されること", func(t *testing.T) {
		t.Parallel()

		called := false
		router := newAuthRouter(&called)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if !called {
			t.Error("ハンドラーが呼ばれるべき")
		}
	})

	unauthorized := []struct {
		name   string
		header string
	}{
		{name: "Authorizationヘッダーが無い場合", header: ""},
		{name: "Basic認証形式の場合", header: "Basic dXNlcjpwYXNz"},
		{name: "スキームが小文字の場合", header: "bearer " + testToken},
		{name: "Bearerの後に空白が無い場合", header: "Bearer"},
	}
	for _, tt := range unauthorized {
		t.Run(tt.name+"は401が返ること", func(t *testing.T) {
			t.Parallel()

			called := false
			router := newAuthRouter(&called)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			got := decodeResult(t, w.Body.Bytes())
			if got.Code != result.CodeFailure {
				t.Errorf("code = %d, want %d", got.Code, result.CodeFailure)
			}
			if got.Description != MsgAuthRequired {
				t.Errorf("description = %q, want %q", got.Description, MsgAuthRequired)
			}
			if called {
				t.Error("認証失敗時にハンドラーが呼ばれるべきではない")
			}
		})
	}

	forbidden := []struct {
		name   string
		header string
	}{
		{name: "トークンが異なる場合", header: "Bearer wrong-token"},
		{name: "トークンが空の場合", header: "Bearer "},
		{name: "トークンの前に余分な空白がある場合", header: "Bearer  " + testToken},
	}
	for _, tt := range forbidden {
		t.Run(tt.name+"は403が返ること", func(t *testing.T) {
			t.Parallel()

			called := false
			router := newAuthRouter(&called)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusForbidden)
			}
			got := decodeResult(t, w.Body.Bytes())
			if got.Description != MsgInvalidToken {
				t.Errorf("description = %q, want %q", got.Description, MsgInvalidToken)
			}
			if called {
				t.Error("認証失敗時にハンドラーが呼ばれるべきではない")
			}
		})
	}
}
