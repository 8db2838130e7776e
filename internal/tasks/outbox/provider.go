// Package outbox 将 catalog.outbox_events 中的 MediaCreated 事件投递到 Pub/Sub。
// HTTP 进程与独立的 cmd/tasks/outbox 共用同一个构造入口。
package outbox

import (
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const meterName = "lingo-services-media.outbox"

// ProvideRunner 构造 Outbox 发布器。
// 未配置 Topic 或缺少发布器时返回 nil，调用方据此跳过后台任务。
func ProvideRunner(
	repo *repositories.OutboxRepository,
	publisher gcpubsub.Publisher,
	pubCfg gcpubsub.Config,
	cfg outboxcfg.Config,
	logger log.Logger,
) *outboxpublisher.Runner {
	if repo == nil || logger == nil {
		return nil
	}
	helper := log.NewHelper(logger)
	if pubCfg.TopicID == "" || publisher == nil {
		helper.Warn("outbox publisher disabled: messaging.pubsub.topic_id not configured")
		return nil
	}

	settings := cfg.Normalize().Publisher
	if enabled(settings.LoggingEnabled) {
		helper.Infof("outbox publisher: topic=%s batch_size=%d workers=%d tick=%s max_attempts=%d",
			pubCfg.TopicID, settings.BatchSize, settings.Workers, settings.TickInterval, settings.MaxAttempts)
	}

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    settings,
		Logger:    logger,
		Meter:     publisherMeter(settings.MetricsEnabled),
	})
	if err != nil {
		helper.Errorw("msg", "outbox publisher: init runner failed", "topic", pubCfg.TopicID, "error", err)
		return nil
	}
	return runner
}

func publisherMeter(metricsEnabled *bool) metric.Meter {
	if !enabled(metricsEnabled) {
		return noopmetric.NewMeterProvider().Meter(meterName)
	}
	return otel.GetMeterProvider().Meter(meterName)
}

// enabled 未显式配置时默认开启。
func enabled(flag *bool) bool {
	return flag == nil || *flag
}
