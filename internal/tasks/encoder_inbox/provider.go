package encoderinbox

import (
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"

	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配转码回调 Runner；未配置来源服务或订阅时返回 nil。
func ProvideRunner(
	statuses *services.MediaStatusService,
	inboxRepo *repositories.InboxRepository,
	tx txmanager.Manager,
	subscriber gcpubsub.Subscriber,
	pubCfg gcpubsub.Config,
	cfg outboxcfg.Config,
	logger log.Logger,
) *Runner {
	helper := log.NewHelper(logger)
	normalized := cfg.Normalize()
	if normalized.Inbox.SourceService == "" {
		helper.Warn("encoder inbox: skip initialization, source_service not configured")
		return nil
	}
	if pubCfg.SubscriptionID == "" || subscriber == nil {
		helper.Warn("encoder inbox: skip initialization, subscription not configured")
		return nil
	}

	runner, err := NewRunner(RunnerParams{
		Subscriber: subscriber,
		InboxRepo:  inboxRepo,
		Statuses:   statuses,
		TxManager:  tx,
		Logger:     logger,
		Config:     normalized.Inbox,
	})
	if err != nil {
		helper.Errorw("msg", "encoder inbox: init runner failed", "error", err)
		return nil
	}
	return runner
}
