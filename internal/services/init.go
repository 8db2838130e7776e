// Package services 包含应用业务用例的编排逻辑。
// 该层负责协调 Repository 与媒体存储网关，实现视频聚合的创建、更新、状态迁移与查询，
// 不直接依赖传输层或基础设施细节。
package services

import "github.com/google/wire"

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	ProvideReferenceValidator,
	NewVideoStore,
	wire.Bind(new(VideoGateway), new(*VideoStore)),
	wire.Bind(new(VideoSessionStore), new(*VideoStore)),
	NewCreateVideoService,
	NewUpdateVideoService,
	NewVideoQueryService,
	NewMediaStatusService,
)
