package config

// Otel はOpenTelemetryトレーシングの設定。
// CollectorURL が空の場合、スパンはエクスポートされない。
type Otel struct {
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"irepo-gateway-mock"`
	CollectorURL string  `env:"OTEL_COLLECTOR_URL"`
	Insecure     bool    `env:"OTEL_INSECURE" envDefault:"true"`
	TraceIDRatio float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"1.0"`
}

// Enabled はスパンをコレクターへエクスポートするかどうかを返す。
func (o Otel) Enabled() bool {
	return o.CollectorURL != ""
}
