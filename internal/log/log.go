// Package log はslogベースの構造化ロガーを生成する。
//
// 生成したロガーは、ログ出力時のcontextからリクエストIDとトレース情報を拾って
// 各レコードに付与する。
package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/nao1215/irepo-gateway-mock/internal/config"
)

// errorColor はテキスト形式でエラー属性に使うANSIカラー（明るい赤）。
const errorColor = 9

// NewSlogLogger は設定に従って標準出力に書き込むロガーを生成し、
// slogのデフォルトロガーとしても登録する。
func NewSlogLogger(cfg config.Log) *slog.Logger {
	logger := New(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// New は設定に従って w に書き込むロガーを生成する。
func New(cfg config.Log, w io.Writer) *slog.Logger {
	return slog.New(withContext(formatHandler(cfg, w)))
}

// formatHandler はログ形式に対応する出力先のハンドラを返す。
func formatHandler(cfg config.Log, w io.Writer) slog.Handler {
	switch cfg.Format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	default:
		return tint.NewHandler(w, &tint.Options{
			Level:       cfg.Level,
			AddSource:   cfg.AddSource,
			TimeFormat:  time.RFC3339,
			ReplaceAttr: colorizeErrors,
		})
	}
}

// colorizeErrors はerror型の属性値を目立つ色で表示する。
func colorizeErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	if _, isErr := a.Value.Any().(error); !isErr {
		return a
	}
	return tint.Attr(errorColor, a)
}

// Discard は何も出力しないロガーを返す。
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
