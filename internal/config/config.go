// Package config は環境変数からアプリケーション設定を読み込む。
//
// 設定は起動時に一度だけ解決され、以降は値として各コンポーネントに渡される。
// 実行中に環境変数を再参照することはない。
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile は起動時に読み込む.envファイルのパス。
const dotEnvFile = ".env"

// Config はモックサーバー全体の設定。
type Config struct {
	// HTTP はAPIサーバーの設定。
	HTTP HTTP
	// Log はロガーの設定。
	Log Log
	// Metrics はメトリクス公開用サーバーの設定。
	Metrics Metrics
	// Otel はトレーシングの設定。
	Otel Otel
}

// Load は.envファイル（存在する場合）とプロセスの環境変数から設定を読み込む。
func Load() (Config, error) {
	return New[Config]()
}

// New は.envファイルを読み込んだ後、環境変数を型Tの構造体にデシリアライズする。
// .envファイルは既に設定されている環境変数を上書きしない。
func New[T any]() (T, error) {
	var cfg T
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf(".envファイルの読み込みに失敗: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("環境変数のパースに失敗: %w", err)
	}
	return cfg, nil
}

// NewFromEnvironment はプロセスの環境変数の代わりに environ を参照して
// 型Tの構造体を生成する。テストや埋め込み用途で使用する。
func NewFromEnvironment[T any](environ map[string]string) (T, error) {
	var cfg T
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("環境変数のパースに失敗: %w", err)
	}
	return cfg, nil
}
