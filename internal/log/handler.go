package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/nao1215/irepo-gateway-mock/pkg/requestid"
)

// ログに付与する属性のキー。
const (
	keyRequestID = "request_id"
	keyTraceID   = "trace_id"
	keySpanID    = "span_id"
)

// contextHandler はレコードを next に渡す前に、contextから得られる
// リクエスト単位の属性を追加する。
type contextHandler struct {
	next slog.Handler
}

var _ slog.Handler = (*contextHandler)(nil)

func withContext(next slog.Handler) *contextHandler {
	return &contextHandler{next: next}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := requestAttrs(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return withContext(h.next.WithAttrs(attrs))
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return withContext(h.next.WithGroup(name))
}

// requestAttrs はリクエストIDと有効なスパンのIDを属性として返す。
func requestAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := requestid.FromContext(ctx); ok {
		attrs = append(attrs, slog.String(keyRequestID, id))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String(keyTraceID, sc.TraceID().String()),
			slog.String(keySpanID, sc.SpanID().String()),
		)
	}
	return attrs
}
