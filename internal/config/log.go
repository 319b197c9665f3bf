package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Log はロガーの設定。
type Log struct {
	// Format は出力形式。TEXTは開発向けのカラー表示、JSONは収集基盤向け。
	Format LogFormat `env:"LOG_FORMAT" envDefault:"TEXT"`
	// Level は出力する最低レベル。DEBUGにするとリクエストボディも出力される。
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// AddSource は呼び出し元のファイルと行を付与するかどうか。
	AddSource bool `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// LogFormat はログの出力形式。
type LogFormat uint8

const (
	// LogFormatJSON は1行1オブジェクトのJSON形式。
	LogFormatJSON LogFormat = iota
	// LogFormatText は人が読むためのテキスト形式。
	LogFormatText
)

// String はログ形式の名前を返す。未定義の値は "UNKNOWN(n)" になる。
func (f LogFormat) String() string {
	switch f {
	case LogFormatJSON:
		return "JSON"
	case LogFormatText:
		return "TEXT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(f))
	}
}

// ParseLogFormat は大文字小文字を区別せずにログ形式の名前を解釈する。
func ParseLogFormat(name string) (LogFormat, error) {
	for _, f := range []LogFormat{LogFormatJSON, LogFormatText} {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("不明なログ形式: %q（JSONまたはTEXTを指定してください）", name)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *LogFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseLogFormat(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (f LogFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
