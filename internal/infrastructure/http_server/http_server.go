// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
// 包括：追踪、恢复、Metadata 传播、限流、日志等中间件，以及可选的 otelhttp 指标采集。
package httpserver

import (
	nethttp "net/http"

	"github.com/bionicotaku/lingo-services-media/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-media/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// HealthPath 为存活探针路径，不计入 HTTP 指标。
const HealthPath = "/healthz"

// NewHTTPServer 构造配置完整的 Kratos HTTP Server 实例。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪，自动创建 Span
// 2. recovery.Recovery() - Panic 恢复，防止服务崩溃
// 3. metadata.Server() - 元数据传播，转发 x-md- 前缀的 header
// 4. ratelimit.Server() - 限流保护
// 5. logging.Server() - 结构化日志记录（含 trace_id/span_id）
//
// 可选指标采集：metricsCfg.GRPCEnabled 同时控制入站传输层的 otelhttp 指标。
func NewHTTPServer(cfg configloader.ServerConfig, metricsCfg *observability.MetricsConfig, videos *controllers.VideoHandler, logger log.Logger) *http.Server {
	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(cfg.MetadataKeys...)),
		ratelimit.Server(),
		logging.Server(logger),
	}

	opts := []http.ServerOption{
		http.Middleware(mws...),
		http.ErrorEncoder(EncodeError),
	}
	if metricsEnabled {
		opts = append(opts, http.Filter(newMetricsFilter(includeHealth)))
	}
	if cfg.Network != "" {
		opts = append(opts, http.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, http.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, http.Timeout(cfg.Timeout))
	}

	srv := http.NewServer(opts...)
	srv.HandleFunc(HealthPath, func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})
	if videos != nil {
		videos.Register(srv)
	}
	return srv
}

// newMetricsFilter 使用 otelhttp 包装入站 Handler，采集延迟与状态码指标。
func newMetricsFilter(includeHealth bool) http.FilterFunc {
	opts := []otelhttp.Option{
		otelhttp.WithMeterProvider(otel.GetMeterProvider()),
		otelhttp.WithSpanNameFormatter(func(_ string, r *nethttp.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if !includeHealth {
		opts = append(opts, otelhttp.WithFilter(func(r *nethttp.Request) bool {
			return r.URL.Path != HealthPath
		}))
	}
	return func(next nethttp.Handler) nethttp.Handler {
		return otelhttp.NewHandler(next, "media.http", opts...)
	}
}
