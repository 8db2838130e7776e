//go:build wireinject
// +build wireinject

// Package main 为转码回调 inbox 任务提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	configloader "github.com/bionicotaku/lingo-services-media/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"
	encoderinbox "github.com/bionicotaku/lingo-services-media/internal/tasks/encoder_inbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

// 状态迁移只需要视频仓储与 Outbox 写入；迁移本身不产生事件，但 VideoStore 统一经由 Outbox 保存。
var encoderInboxSet = wire.NewSet(
	repositories.NewInboxRepository,
	repositories.NewOutboxRepository,
	repositories.NewVideoRepository,
	wire.Bind(new(services.VideoRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
	services.NewVideoStore,
	wire.Bind(new(services.VideoSessionStore), new(*services.VideoStore)),
	services.NewMediaStatusService,
)

func wireEncoderInboxTask(context.Context, configloader.Params) (*encoderInboxApp, func(), error) {
	panic(wire.Build(
		configloader.EncoderProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		encoderInboxSet,
		encoderinbox.ProvideRunner,
		newEncoderInboxApp,
	))
}

func newEncoderInboxApp(_ *obswire.Component, logger log.Logger, task *encoderinbox.Runner) (*encoderInboxApp, error) {
	if task == nil {
		return &encoderInboxApp{Logger: logger}, nil
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &encoderInboxApp{
		Task:   task,
		Logger: logger,
	}, nil
}
