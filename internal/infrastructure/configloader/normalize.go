package configloader

import (
	"strings"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultCommandTimeout = 60 * time.Second
	defaultMaxUploadBytes = 512 << 20
)

func fromBootstrap(b *Bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data.Postgres),
		Storage:       storageFromBootstrap(b.Storage),
		Observability: observabilityFromBootstrap(b.Observability),
		Messaging:     messagingFromBootstrap(b.Messaging, b.Data.Postgres),
	}
}

func serverFromBootstrap(s ServerSection) ServerConfig {
	return ServerConfig{
		Network:        s.HTTP.Network,
		Address:        s.HTTP.Addr,
		Timeout:        s.HTTP.Timeout.Std(),
		Handlers:       handlerTimeouts(s.Handlers),
		MetadataKeys:   append([]string(nil), s.MetadataKeys...),
		MaxUploadBytes: s.MaxUploadBytes,
	}
}

// handlerTimeouts 上传大文件的命令默认给更长的超时。
func handlerTimeouts(h HandlersSection) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: defaultHandlerTimeout,
		Command: defaultCommandTimeout,
		Query:   defaultQueryTimeout,
	}
	if d := h.DefaultTimeout.Std(); d > 0 {
		cfg.Default = d
	}
	if d := h.CommandTimeout.Std(); d > 0 {
		cfg.Command = d
	}
	if d := h.QueryTimeout.Std(); d > 0 {
		cfg.Query = d
	} else {
		cfg.Query = firstNonZero(cfg.Query, cfg.Default)
	}
	return cfg
}

func databaseFromBootstrap(pg PostgresSection) DatabaseConfig {
	return DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   pg.MaxConnLifetime.Std(),
		MaxConnIdleTime:   pg.MaxConnIdleTime.Std(),
		HealthCheckPeriod: pg.HealthCheckPeriod.Std(),
		Schema:            pg.Schema,
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
		Transaction: TransactionConfig{
			DefaultIsolation: pg.Transaction.DefaultIsolation,
			DefaultTimeout:   pg.Transaction.DefaultTimeout.Std(),
			LockTimeout:      pg.Transaction.LockTimeout.Std(),
			MaxRetries:       pg.Transaction.MaxRetries,
			MetricsEnabled:   pg.Transaction.MetricsEnabled,
		},
	}
}

func storageFromBootstrap(s StorageSection) StorageConfig {
	return StorageConfig{
		Driver:          strings.ToLower(strings.TrimSpace(s.Driver)),
		Bucket:          s.Bucket,
		Region:          s.Region,
		Endpoint:        s.Endpoint,
		UsePathStyle:    s.UsePathStyle,
		KeyPrefix:       strings.Trim(s.KeyPrefix, "/"),
		LocalDir:        s.LocalDir,
		AccessKeyID:     s.AccessKeyID,
		SecretAccessKey: s.SecretAccessKey,
	}
}

func observabilityFromBootstrap(obs ObservabilitySection) ObservabilityConfig {
	t := obs.Tracing
	m := obs.Metrics
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(obs.GlobalAttributes),
		Tracing: TracingConfig{
			Enabled:            t.Enabled,
			Exporter:           t.Exporter,
			Endpoint:           t.Endpoint,
			Headers:            mapCopy(t.Headers),
			Insecure:           t.Insecure,
			SamplingRatio:      t.SamplingRatio,
			BatchTimeout:       t.BatchTimeout.Std(),
			ExportTimeout:      t.ExportTimeout.Std(),
			MaxQueueSize:       t.MaxQueueSize,
			MaxExportBatchSize: t.MaxExportBatchSize,
			Required:           t.Required,
			Attributes:         mapCopy(t.Attributes),
		},
		Metrics: MetricsConfig{
			Enabled:             m.Enabled,
			Exporter:            m.Exporter,
			Endpoint:            m.Endpoint,
			Headers:             mapCopy(m.Headers),
			Insecure:            m.Insecure,
			Interval:            m.Interval.Std(),
			DisableRuntimeStats: m.DisableRuntimeStats,
			Required:            m.Required,
			ResourceAttributes:  mapCopy(m.ResourceAttributes),
			GRPCEnabled:         m.GRPCEnabled,
			GRPCIncludeHealth:   m.GRPCIncludeHealth,
		},
	}
}

func messagingFromBootstrap(msg MessagingSection, pg PostgresSection) MessagingConfig {
	return MessagingConfig{
		Schema:        pg.Schema,
		PubSub:        pubsubFromBootstrap(msg.PubSub),
		EncoderEvents: pubsubFromBootstrap(msg.EncoderEvents),
		Outbox: OutboxPublisherConfig{
			BatchSize:      msg.Outbox.BatchSize,
			TickInterval:   msg.Outbox.TickInterval.Std(),
			InitialBackoff: msg.Outbox.InitialBackoff.Std(),
			MaxBackoff:     msg.Outbox.MaxBackoff.Std(),
			MaxAttempts:    msg.Outbox.MaxAttempts,
			PublishTimeout: msg.Outbox.PublishTimeout.Std(),
			Workers:        msg.Outbox.Workers,
			LockTTL:        msg.Outbox.LockTTL.Std(),
			LoggingEnabled: msg.Outbox.LoggingEnabled,
			MetricsEnabled: msg.Outbox.MetricsEnabled,
		},
		Inbox: InboxConfig{
			SourceService:  msg.Inbox.SourceService,
			MaxConcurrency: msg.Inbox.MaxConcurrency,
			LoggingEnabled: msg.Inbox.LoggingEnabled,
			MetricsEnabled: msg.Inbox.MetricsEnabled,
		},
	}
}

func pubsubFromBootstrap(p PubSubSection) PubSubConfig {
	return PubSubConfig{
		ProjectID:           p.ProjectID,
		TopicID:             p.TopicID,
		SubscriptionID:      p.SubscriptionID,
		OrderingKeyEnabled:  p.OrderingKeyEnabled,
		LoggingEnabled:      p.LoggingEnabled,
		MetricsEnabled:      p.MetricsEnabled,
		EmulatorEndpoint:    p.EmulatorEndpoint,
		PublishTimeout:      p.PublishTimeout.Std(),
		ExactlyOnceDelivery: p.ExactlyOnceDelivery,
		DeadLetterTopicID:   p.DeadLetterTopicID,
		Receive: PubSubReceiveConfig{
			NumGoroutines:          p.Receive.NumGoroutines,
			MaxOutstandingMessages: p.Receive.MaxOutstandingMessages,
			MaxOutstandingBytes:    p.Receive.MaxOutstandingBytes,
			MaxExtension:           p.Receive.MaxExtension.Std(),
			MaxExtensionPeriod:     p.Receive.MaxExtensionPeriod.Std(),
		},
	}
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(durations ...time.Duration) time.Duration {
	for _, d := range durations {
		if d > 0 {
			return d
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	defaultKeys := []string{
		"x-md-",
		"x-md-idempotency-key",
		"x-md-request-id",
		"x-md-if-match",
		"x-md-if-none-match",
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = append([]string(nil), defaultKeys...)
	}
	if cfg.Server.Network == "" {
		cfg.Server.Network = "tcp"
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		cfg.Server.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Messaging.Inbox.SourceService == "" && cfg.Messaging.EncoderEvents.SubscriptionID != "" {
		cfg.Messaging.Inbox.SourceService = "encoder"
	}
}
