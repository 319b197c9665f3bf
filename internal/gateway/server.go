package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/nao1215/irepo-gateway-mock/internal/config"
	"github.com/nao1215/irepo-gateway-mock/internal/metric"
	"github.com/nao1215/irepo-gateway-mock/pkg/middleware"
)

var tracer = otel.Tracer("internal/gateway")

// shutdownTimeout はグレースフルシャットダウンの待ち時間。
const shutdownTimeout = 5 * time.Second

// CleanupFunc は起動したHTTPサーバーを停止する。
type CleanupFunc func(ctx context.Context) error

// Server はi-Repo DirectGateway APIモックのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg は起動時に確定した設定。
	cfg config.Config
	// logger はサーバー全体で使うロガー。
	logger *slog.Logger
	// catalog はレスポンスに使う固定データ。
	catalog *Catalog
	// metrics はHTTPリクエストのメトリクス。
	metrics *metric.Metrics
	// addr はリッスン中のアドレス。Start前は空。
	addr string
	// routes は定義済みルートのパスを小文字化したキーで引く表。
	routes map[string]string
}

// NewServer は新しいモックサーバーを生成する。
func NewServer(cfg config.Config, logger *slog.Logger) *Server {
	router := gin.New()
	// 末尾スラッシュのリダイレクトは認証より前に応答してしまうため無効にする
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	s := &Server{
		router:  router,
		cfg:     cfg,
		logger:  logger.With(slog.String("service", "gateway")),
		catalog: DefaultCatalog(),
		metrics: metric.New(),
	}

	router.Use(
		middleware.Trace(tracer),
		middleware.RequestLogger(s.logger),
		s.metrics.Middleware(),
		middleware.Recovery(s.logger),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
		middleware.ErrorHandler(s.logger),
		middleware.BearerAuth(cfg.HTTP.APIToken),
	)
	s.setupRoutes()
	s.routes = indexRoutes(router.Routes())

	return s
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		// 通常の値取得（メソッドを問わない）
		api.Any("/getValue", s.handleGetValue())

		// カスタムマスター
		master := api.Group("/master")
		master.GET("/fields", s.handleGetFields())
		master.GET("/params", s.handleGetParams())
		master.POST("/getrecords", s.handleGetRecords())
	}

	// 未定義のパスと未対応のメソッドはいずれも404
	s.router.NoRoute(s.handleNotFound())
}

// Handler はミドルウェアとルーティングを含むHTTPハンドラを返す。
// パスは末尾のスラッシュ1つと大文字小文字の違いを無視して定義済みルートに照合する。
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.serveHTTP)
}

// serveHTTP は定義済みルートに一致するパスを正規の表記に書き換えてからルーターに渡す。
// リダイレクトはせず、書き換え前のパスはcontextに残す。
func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if canonical, ok := s.lookupRoute(r.URL.Path); ok && canonical != r.URL.Path {
		original := r.URL.EscapedPath()
		r = r.Clone(withOriginalPath(r.Context(), original))
		r.URL.Path = canonical
		r.URL.RawPath = ""
	}
	s.router.ServeHTTP(w, r)
}

// lookupRoute はパスに対応する定義済みルートの正規のパスを返す。
func (s *Server) lookupRoute(path string) (string, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	canonical, ok := s.routes[strings.ToLower(path)]
	return canonical, ok
}

// indexRoutes はルート定義からパスの照合表を作る。
func indexRoutes(routes gin.RoutesInfo) map[string]string {
	index := make(map[string]string, len(routes))
	for _, r := range routes {
		index[strings.ToLower(r.Path)] = r.Path
	}
	return index
}

type originalPathKey struct{}

// withOriginalPath は書き換え前のパスを格納したcontextを返す。
func withOriginalPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, originalPathKey{}, path)
}

// requestPath はレスポンスに含めるリクエストパスを返す。
// 照合のために書き換えた場合は書き換え前のパスを返す。
func requestPath(r *http.Request) string {
	if p, ok := r.Context().Value(originalPathKey{}).(string); ok {
		return p
	}
	return r.URL.EscapedPath()
}

// Addr はリッスン中のアドレスを返す。
func (s *Server) Addr() string {
	return s.addr
}

// Start はAPIサーバーと、設定されていればメトリクスサーバーを起動する。
// 返される CleanupFunc で両方のサーバーを停止する。
func (s *Server) Start(ctx context.Context) (CleanupFunc, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.HTTP.Port))
	if err != nil {
		return nil, fmt.Errorf("ポート%dのリッスンに失敗: %w", s.cfg.HTTP.Port, err)
	}
	s.addr = ln.Addr().String()

	servers := []*http.Server{newHTTPServer(ctx, s.Handler())}
	listeners := []net.Listener{ln}

	if s.cfg.Metrics.Enabled() {
		mln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Metrics.Port))
		if err != nil {
			_ = ln.Close()
			return nil, fmt.Errorf("メトリクスポート%dのリッスンに失敗: %w", s.cfg.Metrics.Port, err)
		}

		mux := http.NewServeMux()
		mux.Handle(metric.Path, s.metrics.Handler())
		servers = append(servers, newHTTPServer(ctx, mux))
		listeners = append(listeners, mln)

		s.logger.InfoContext(ctx, "メトリクスサーバーを起動しました",
			slog.String("addr", mln.Addr().String()),
			slog.String("path", metric.Path),
		)
	}

	for i, srv := range servers {
		go s.serve(ctx, srv, listeners[i])
	}
	s.logBanner(ctx)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}, nil
}

// serve はリスナーでHTTPサーバーを稼働させる。
func (s *Server) serve(ctx context.Context, srv *http.Server, ln net.Listener) {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.ErrorContext(ctx, "HTTPサーバーが異常終了しました",
			slog.String("addr", ln.Addr().String()),
			slog.Any("error", err),
		)
	}
}

// newHTTPServer はタイムアウトを設定したHTTPサーバーを生成する。
func newHTTPServer(ctx context.Context, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
}

// logBanner は起動時の案内をログに出力する。
func (s *Server) logBanner(ctx context.Context) {
	s.logger.InfoContext(ctx, "i-Repo DirectGateway API Mock Server",
		slog.String("addr", s.addr),
		slog.String("api_token", maskToken(s.cfg.HTTP.APIToken)),
		slog.Any("endpoints", []string{
			"GET/POST /api/getValue - 通常の値取得",
			"GET      /api/master/fields - フィールド取得",
			"GET      /api/master/params - パラメータ取得",
			"POST     /api/master/getrecords - レコード取得",
		}),
	)
}

// maskToken はトークンの先頭2文字以外を伏せ字にする。
func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:2] + strings.Repeat("*", len(token)-2)
}
