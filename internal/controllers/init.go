// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责请求解析、DTO 转换和错误映射。
package controllers

import (
	"github.com/bionicotaku/lingo-services-media/internal/services"

	"github.com/google/wire"
)

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewVideoHandler,
	wire.Bind(new(services.CreateVideoUsecase), new(*services.CreateVideoService)),
	wire.Bind(new(services.UpdateVideoUsecase), new(*services.UpdateVideoService)),
	wire.Bind(new(services.VideoQueryUsecase), new(*services.VideoQueryService)),
	wire.Bind(new(services.MediaStatusUsecase), new(*services.MediaStatusService)),
)
