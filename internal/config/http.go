package config

// HTTP はAPIサーバーの設定。
type HTTP struct {
	// Port はリッスンポート。
	Port uint16 `env:"PORT" envDefault:"3000"`
	// APIToken はBearer認証で照合するトークン。
	APIToken string `env:"API_TOKEN" envDefault:"gateway-pass"`
	// AllowedOrigins はCORSで許可するオリジン。"*" はすべて許可する。
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Metrics はメトリクス公開用サーバーの設定。
type Metrics struct {
	// Port はメトリクスサーバーのリッスンポート。0の場合は起動しない。
	Port uint16 `env:"METRICS_PORT" envDefault:"0"`
}

// Enabled はメトリクスサーバーを起動するかどうかを返す。
func (m Metrics) Enabled() bool {
	return m.Port != 0
}
