// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// Bearerトークン認証、リクエストログ、パニックリカバリ、
// CORS設定、トレースなど、モックサーバー全体で共通して使用するミドルウェアを含む。
// エラー時のレスポンスはすべて result オブジェクトを持つJSONで返す。
package middleware
