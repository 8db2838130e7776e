package encoderinbox

import (
	"context"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/gcpubsub"
	"github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/inbox"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// Runner 封装转码回调的消费循环（基于 Inbox Runner）。
type Runner struct {
	delegate *inbox.Runner[Event]
}

// RunnerParams 注入 Runner 所需依赖。
type RunnerParams struct {
	Subscriber gcpubsub.Subscriber
	InboxRepo  *repositories.InboxRepository
	Statuses   statusApplier
	TxManager  txmanager.Manager
	Logger     log.Logger
	Config     config.InboxConfig
}

// NewRunner 构造 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Subscriber == nil {
		return nil, fmt.Errorf("encoder inbox: subscriber is required")
	}
	if params.InboxRepo == nil {
		return nil, fmt.Errorf("encoder inbox: inbox repository is required")
	}
	if params.Statuses == nil {
		return nil, fmt.Errorf("encoder inbox: media status service is required")
	}
	if params.TxManager == nil {
		return nil, fmt.Errorf("encoder inbox: tx manager is required")
	}

	handler := NewEventHandler(params.Statuses, params.Logger, newMetrics())
	delegate, err := inbox.NewRunner[Event](inbox.RunnerParams[Event]{
		Store:      params.InboxRepo.Shared(),
		Subscriber: params.Subscriber,
		TxManager:  params.TxManager,
		Decoder:    newEventDecoder(),
		Handler:    handler,
		Config:     params.Config.Normalize(),
		Logger:     params.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Runner{delegate: delegate}, nil
}

// Run 启动消费循环，直到 ctx 取消或订阅出错。
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.delegate == nil {
		return nil
	}
	return r.delegate.Run(ctx)
}

// WithClock 提供测试替换时间。
func (r *Runner) WithClock(fn func() time.Time) {
	if r == nil || r.delegate == nil || fn == nil {
		return
	}
	r.delegate.WithClock(fn)
}
