//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-media/internal/controllers"
	"github.com/bionicotaku/lingo-services-media/internal/infrastructure/blobstore"
	configloader "github.com/bionicotaku/lingo-services-media/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-media/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"
	outboxtasks "github.com/bionicotaku/lingo-services-media/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析配置并派生组件配置
//  2. 基础设施: gclog → observability → pgxpoolx → txmanager → blobstore → gcpubsub
//  3. 业务层: repositories → services → controllers
//  4. 服务器: httpserver.ProviderSet 组装 HTTP Server
//  5. 后台任务: outboxtasks.ProvideRunner 发布 catalog.video.media_created
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		blobstore.ProviderSet,
		httpserver.ProviderSet,
		repositories.ProviderSet,
		wire.Bind(new(services.VideoRepository), new(*repositories.VideoRepository)),
		wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
		wire.Bind(new(services.MediaResourceGateway), new(*repositories.MediaResourceRepository)),
		services.ProviderSet,
		controllers.ProviderSet,
		outboxtasks.ProvideRunner,
		newApp,
	))
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Provider 概览
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (configloader.RuntimeConfig, error)
//       读取 YAML、执行 validator 校验并收敛为 RuntimeConfig。
//
//   - configloader.ProvideStorageConfig(RuntimeConfig) blobstore.Config
//   - blobstore.NewStore(context.Context, blobstore.Config, log.Logger) (blobstore.Store, error)
//       按 driver 构造 S3 或本地目录存储。
//
//   - repositories.NewMediaResourceRepository(blobstore.Store, log.Logger)
//       以 videoId-{id}/type-{TYPE} 为键读写媒体二进制。
//
//   - services.ProvideReferenceValidator(*CategoryRepository, *GenreRepository, *CastMemberRepository)
//   - services.NewVideoStore(VideoRepository, OutboxEnqueuer, txmanager.Manager, log.Logger)
//       事务内保存聚合并将 MediaCreated 写入 Outbox。
//   - services.NewCreateVideoService / NewUpdateVideoService / NewVideoQueryService / NewMediaStatusService
//
//   - controllers.NewVideoHandler(..., controllers.UploadLimits, *controllers.BaseHandler)
//   - httpserver.NewHTTPServer(configloader.ServerConfig, *observability.MetricsConfig,
//                              *controllers.VideoHandler, log.Logger) *http.Server
//
//   - outboxtasks.ProvideRunner(*repositories.OutboxRepository, gcpubsub.Publisher,
//                               gcpubsub.Config, outboxcfg.Config, log.Logger) *outboxpublisher.Runner
//       Topic 未配置时返回 nil，newApp 不启动发布器。
