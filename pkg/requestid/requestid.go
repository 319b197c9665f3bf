// Package requestid はリクエストIDをcontextに格納・取得する関数を提供する。
package requestid

import "context"

// Header はリクエストIDを伝播するHTTPヘッダーキー。
const Header = "X-Request-ID"

type contextKey struct{}

// NewContext はリクエストIDを格納したcontextを返す。
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext はcontextからリクエストIDを取得する。
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
