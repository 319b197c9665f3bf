package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nao1215/irepo-gateway-mock/internal/config"
	"github.com/nao1215/irepo-gateway-mock/internal/telemetry"
)

// グローバルなプロバイダーを書き換えるため、このテストは並列実行しない。
func TestInitTracer(t *testing.T) {
	t.Run("コレクター未設定の場合はエクスポーターを生成しないこと", func(t *testing.T) {
		before := otel.GetTracerProvider()

		cleanup, err := telemetry.InitTracer(context.Background(), config.Otel{ServiceName: "test"})
		require.NoError(t, err)
		require.NotNil(t, cleanup)

		assert.Equal(t, before, otel.GetTracerProvider())
		assert.NoError(t, cleanup(context.Background()))
	})

	t.Run("コレクター設定時はSDKのプロバイダーが登録されること", func(t *testing.T) {
		before := otel.GetTracerProvider()
		t.Cleanup(func() { otel.SetTracerProvider(before) })

		cleanup, err := telemetry.InitTracer(context.Background(), config.Otel{
			ServiceName:  "test",
			CollectorURL: "localhost:4317",
			Insecure:     true,
			TraceIDRatio: 1,
		})
		require.NoError(t, err)

		_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, ok)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = cleanup(ctx)
	})
}
