// i-Repo DirectGateway APIモックサーバーのエントリポイント。
// 設定を環境変数（と .env）から読み込み、SIGINT/SIGTERMを受けるまで稼働する。
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/internal/config"
	"github.com/nao1215/irepo-gateway-mock/internal/gateway"
	"github.com/nao1215/irepo-gateway-mock/internal/log"
	"github.com/nao1215/irepo-gateway-mock/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "モックサーバーの実行に失敗: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)
	if cfg.Log.Level > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("トレーサーの初期化に失敗: %w", err)
	}
	defer func() {
		if err := cleanupTracer(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "トレーサーの停止に失敗しました", slog.Any("error", err))
		}
	}()

	server := gateway.NewServer(cfg, logger)
	cleanup, err := server.Start(ctx)
	if err != nil {
		return fmt.Errorf("モックサーバーの起動に失敗: %w", err)
	}

	<-ctx.Done()

	logger.InfoContext(ctx, "モックサーバーを停止します")
	if err := cleanup(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("モックサーバーの停止に失敗: %w", err)
	}
	logger.InfoContext(ctx, "モックサーバーを停止しました")

	return nil
}
