// Package gatewayclient はi-Repo DirectGateway APIモックに接続するHTTPクライアントを提供する。
//
// 結合テストからモックサーバーを呼び出すために使用する。
// 2xx以外のレスポンスは *APIError として返す。
package gatewayclient
