package configloader

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap 对应 configs/config.yaml 的结构，由 kratos config Scan 填充。
// 字段上的 validate 标签由 validator/v10 在加载后统一校验。
type Bootstrap struct {
	Server        ServerSection        `json:"server"`
	Data          DataSection          `json:"data"`
	Storage       StorageSection       `json:"storage"`
	Observability ObservabilitySection `json:"observability"`
	Messaging     MessagingSection     `json:"messaging"`
}

// ServerSection 描述入站 HTTP 服务。
type ServerSection struct {
	HTTP           HTTPSection     `json:"http"`
	Handlers       HandlersSection `json:"handlers"`
	MetadataKeys   []string        `json:"metadata_keys" validate:"dive,required"`
	MaxUploadBytes int64           `json:"max_upload_bytes" validate:"gte=0"`
}

// HTTPSection 描述监听地址与超时。
type HTTPSection struct {
	Network string   `json:"network" validate:"omitempty,oneof=tcp tcp4 tcp6 unix"`
	Addr    string   `json:"addr" validate:"required"`
	Timeout Duration `json:"timeout" validate:"gte=0"`
}

// HandlersSection 描述控制层的超时策略。
type HandlersSection struct {
	DefaultTimeout Duration `json:"default_timeout" validate:"gte=0"`
	CommandTimeout Duration `json:"command_timeout" validate:"gte=0"`
	QueryTimeout   Duration `json:"query_timeout" validate:"gte=0"`
}

// DataSection 汇总数据源。
type DataSection struct {
	Postgres PostgresSection `json:"postgres"`
}

// PostgresSection 描述连接池与事务默认值。
type PostgresSection struct {
	DSN                       string             `json:"dsn" validate:"required"`
	MaxOpenConns              int                `json:"max_open_conns" validate:"gte=0"`
	MinOpenConns              int                `json:"min_open_conns" validate:"gte=0"`
	MaxConnLifetime           Duration           `json:"max_conn_lifetime" validate:"gte=0"`
	MaxConnIdleTime           Duration           `json:"max_conn_idle_time" validate:"gte=0"`
	HealthCheckPeriod         Duration           `json:"health_check_period" validate:"gte=0"`
	Schema                    string             `json:"schema" validate:"required"`
	PreparedStatementsEnabled bool               `json:"prepared_statements_enabled"`
	PoolMetricsEnabled        bool               `json:"pool_metrics_enabled"`
	Transaction               TransactionSection `json:"transaction"`
}

// TransactionSection 描述事务默认值。
type TransactionSection struct {
	DefaultIsolation string   `json:"default_isolation" validate:"omitempty,oneof=read_committed repeatable_read serializable"`
	DefaultTimeout   Duration `json:"default_timeout" validate:"gte=0"`
	LockTimeout      Duration `json:"lock_timeout" validate:"gte=0"`
	MaxRetries       int      `json:"max_retries" validate:"gte=0"`
	MetricsEnabled   bool     `json:"metrics_enabled"`
}

// StorageSection 描述媒体二进制的存储后端。
type StorageSection struct {
	Driver          string `json:"driver" validate:"required,oneof=s3 local"`
	Bucket          string `json:"bucket" validate:"required_if=Driver s3"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint" validate:"omitempty,url"`
	UsePathStyle    bool   `json:"use_path_style"`
	KeyPrefix       string `json:"key_prefix"`
	LocalDir        string `json:"local_dir" validate:"required_if=Driver local"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key" validate:"required_with=AccessKeyID"`
}

// ObservabilitySection 描述 tracing 与 metrics 导出。
type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          TracingSection    `json:"tracing"`
	Metrics          MetricsSection    `json:"metrics"`
}

// TracingSection 对应 observability.tracing。
type TracingSection struct {
	Enabled            bool              `json:"enabled"`
	Exporter           string            `json:"exporter" validate:"omitempty,oneof=otlp_grpc otlp_http stdout"`
	Endpoint           string            `json:"endpoint"`
	Headers            map[string]string `json:"headers"`
	Insecure           bool              `json:"insecure"`
	SamplingRatio      float64           `json:"sampling_ratio" validate:"gte=0,lte=1"`
	BatchTimeout       Duration          `json:"batch_timeout"`
	ExportTimeout      Duration          `json:"export_timeout"`
	MaxQueueSize       int               `json:"max_queue_size" validate:"gte=0"`
	MaxExportBatchSize int               `json:"max_export_batch_size" validate:"gte=0"`
	Required           bool              `json:"required"`
	Attributes         map[string]string `json:"attributes"`
}

// MetricsSection 对应 observability.metrics。
type MetricsSection struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter" validate:"omitempty,oneof=otlp_grpc otlp_http stdout"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            Duration          `json:"interval"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	ResourceAttributes  map[string]string `json:"resource_attributes"`
	GRPCEnabled         bool              `json:"grpc_enabled"`
	GRPCIncludeHealth   bool              `json:"grpc_include_health"`
}

// MessagingSection 汇总 Pub/Sub 与 Outbox/Inbox。
type MessagingSection struct {
	PubSub        PubSubSection `json:"pubsub"`
	EncoderEvents PubSubSection `json:"encoder_events"`
	Outbox        OutboxSection `json:"outbox"`
	Inbox         InboxSection  `json:"inbox"`
}

// PubSubSection 对应一个 Topic/Subscription 组合。
type PubSubSection struct {
	ProjectID           string         `json:"project_id"`
	TopicID             string         `json:"topic_id" validate:"required_with=ProjectID"`
	SubscriptionID      string         `json:"subscription_id"`
	OrderingKeyEnabled  bool           `json:"ordering_key_enabled"`
	LoggingEnabled      bool           `json:"logging_enabled"`
	MetricsEnabled      bool           `json:"metrics_enabled"`
	EmulatorEndpoint    string         `json:"emulator_endpoint"`
	PublishTimeout      Duration       `json:"publish_timeout"`
	ExactlyOnceDelivery bool           `json:"exactly_once_delivery"`
	DeadLetterTopicID   string         `json:"dead_letter_topic_id"`
	Receive             ReceiveSection `json:"receive"`
}

// ReceiveSection 控制订阅拉取。
type ReceiveSection struct {
	NumGoroutines          int      `json:"num_goroutines" validate:"gte=0"`
	MaxOutstandingMessages int      `json:"max_outstanding_messages" validate:"gte=0"`
	MaxOutstandingBytes    int      `json:"max_outstanding_bytes" validate:"gte=0"`
	MaxExtension           Duration `json:"max_extension"`
	MaxExtensionPeriod     Duration `json:"max_extension_period"`
}

// OutboxSection 对应 messaging.outbox。
type OutboxSection struct {
	BatchSize      int      `json:"batch_size" validate:"gte=0"`
	TickInterval   Duration `json:"tick_interval"`
	InitialBackoff Duration `json:"initial_backoff"`
	MaxBackoff     Duration `json:"max_backoff"`
	MaxAttempts    int      `json:"max_attempts" validate:"gte=0"`
	PublishTimeout Duration `json:"publish_timeout"`
	Workers        int      `json:"workers" validate:"gte=0"`
	LockTTL        Duration `json:"lock_ttl"`
	LoggingEnabled *bool    `json:"logging_enabled"`
	MetricsEnabled *bool    `json:"metrics_enabled"`
}

// InboxSection 对应 messaging.inbox。
type InboxSection struct {
	SourceService  string `json:"source_service"`
	MaxConcurrency int    `json:"max_concurrency" validate:"gte=0"`
	LoggingEnabled *bool  `json:"logging_enabled"`
	MetricsEnabled *bool  `json:"metrics_enabled"`
}

// Duration 接受 "5s"、"250ms" 等字符串，或以秒为单位的数字。
type Duration time.Duration

// Std 返回 time.Duration。
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalJSON 实现 json.Unmarshaler。
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(v * float64(time.Second)))
	case string:
		if v == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %v", raw)
	}
	return nil
}
