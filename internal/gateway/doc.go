// Package gateway はi-Repo DirectGateway APIのモックサーバーを提供する。
//
// Bearerトークンで認証されたリクエストを4つの固定エンドポイントに振り分け、
// ベンダー仕様の result オブジェクトを持つJSONを返す。
// 返却するデータはすべてプロセス起動時に組み立てた固定データであり、
// レコード取得のみ product_id による絞り込みを行う。
package gateway
