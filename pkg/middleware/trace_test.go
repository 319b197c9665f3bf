package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// TestTrace はTraceミドルウェアを検証する。
func TestTrace(t *testing.T) {
	t.Parallel()

	newRouter := func(t *testing.T, recorder *tracetest.SpanRecorder) *gin.Engine {
		t.Helper()

		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		router := gin.New()
		router.Use(Trace(tp.Tracer("test")))
		router.GET("/api/master/fields", func(c *gin.Context) {
			if !trace.SpanContextFromContext(c.Request.Context()).IsValid() {
				t.Error("contextに有効なスパンが設定されるべき")
			}
			c.Status(http.StatusOK)
		})
		router.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})
		return router
	}

	t.Run("ルート名でサーバースパンが記録されること", func(t *testing.T) {
		t.Parallel()

		recorder := tracetest.NewSpanRecorder()
		router := newRouter(t, recorder)

		req := httptest.NewRequest(http.MethodGet, "/api/master/fields", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		if len(spans) != 1 {
			t.Fatalf("スパン数 = %d, want 1", len(spans))
		}
		if got := spans[0].Name(); got != "GET /api/master/fields" {
			t.Errorf("スパン名 = %q, want %q", got, "GET /api/master/fields")
		}
		if got := spans[0].SpanKind(); got != trace.SpanKindServer {
			t.Errorf("SpanKind = %v, want %v", got, trace.SpanKindServer)
		}

		found := false
		for _, kv := range spans[0].Attributes() {
			if kv.Key == attribute.Key("http.response.status_code") && kv.Value.AsInt64() == http.StatusOK {
				found = true
			}
		}
		if !found {
			t.Error("ステータスコード属性が記録されるべき")
		}
	})

	t.Run("未定義のパスは集約されたスパン名になること", func(t *testing.T) {
		t.Parallel()

		recorder := tracetest.NewSpanRecorder()
		router := newRouter(t, recorder)

		req := httptest.NewRequest(http.MethodGet, "/api/unknown/12345", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		if len(spans) != 1 {
			t.Fatalf("スパン数 = %d, want 1", len(spans))
		}
		if got := spans[0].Name(); got != "GET <unknown>" {
			t.Errorf("スパン名 = %q, want %q", got, "GET <unknown>")
		}
	})

	t.Run("5xxの場合はスパンがエラーになること", func(t *testing.T) {
		t.Parallel()

		recorder := tracetest.NewSpanRecorder()
		router := newRouter(t, recorder)

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		if len(spans) != 1 {
			t.Fatalf("スパン数 = %d, want 1", len(spans))
		}
		if got := spans[0].Status().Code; got != codes.Error {
			t.Errorf("ステータス = %v, want %v", got, codes.Error)
		}
	})
}
