package outbox_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	outboxtasks "github.com/bionicotaku/lingo-services-media/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	metricapi "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const (
	testProjectID = "test-project"
	testTopicID   = "catalog-video-media-events"
)

var defaultOutboxConfig = outboxcfg.Config{
	Schema: "catalog",
	Inbox: outboxcfg.InboxConfig{
		SourceService:  "encoder",
		MaxConcurrency: 4,
	},
}

// publisherEnv 是单个用例独占的 Postgres + Pub/Sub 模拟器。
type publisherEnv struct {
	pool      *pgxpool.Pool
	repo      *repositories.OutboxRepository
	server    *pstest.Server
	publisher gcpubsub.Publisher
}

func newPublisherEnv(ctx context.Context, t *testing.T, createTopic bool) *publisherEnv {
	t.Helper()

	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	applyMigrations(ctx, t, pool)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })
	if createTopic {
		createTestTopic(ctx, t, server)
	}

	_, cleanupPub, publisher := newTestPublisher(ctx, t, server, testProjectID, testTopicID)
	t.Cleanup(cleanupPub)

	return &publisherEnv{
		pool:      pool,
		repo:      repositories.NewOutboxRepository(pool, log.NewStdLogger(io.Discard), defaultOutboxConfig),
		server:    server,
		publisher: publisher,
	}
}

func createTestTopic(ctx context.Context, t *testing.T, server *pstest.Server) string {
	t.Helper()
	name := fmt.Sprintf("projects/%s/topics/%s", testProjectID, testTopicID)
	_, err := server.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: name})
	require.NoError(t, err)
	return name
}

// enqueueMediaCreated 写入一条 MediaCreated 事件并返回事件 ID。
func (e *publisherEnv) enqueueMediaCreated(ctx context.Context, t *testing.T, mediaType string) uuid.UUID {
	t.Helper()
	eventID := uuid.New()
	videoID := uuid.New()
	payload := fmt.Sprintf(`{"resource_id":%q,"file_path":"videoId-%s/type-%s","media_type":%q}`,
		videoID.String(), videoID.String(), mediaType, mediaType)
	require.NoError(t, e.repo.Enqueue(ctx, nil, repositories.OutboxMessage{
		EventID:       eventID,
		AggregateType: "video",
		AggregateID:   videoID,
		EventType:     "catalog.video.media_created",
		Payload:       []byte(payload),
		Headers:       map[string]string{"schema_version": "v1", "media_type": mediaType},
	}))
	return eventID
}

func (e *publisherEnv) deliveryState(ctx context.Context, eventID uuid.UUID) (published bool, attempts int32, err error) {
	var publishedAt pgtype.Timestamptz
	err = e.pool.QueryRow(ctx, `
		SELECT published_at, delivery_attempts
		FROM catalog.outbox_events
		WHERE event_id = $1`, eventID).Scan(&publishedAt, &attempts)
	return publishedAt.Valid, attempts, err
}

func runInBackground(t *testing.T, runner *outboxpublisher.Runner) context.CancelFunc {
	t.Helper()
	runCtx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx) }()

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		cancel()
		select {
		case err := <-errCh:
			require.True(t, err == nil || errors.Is(err, context.Canceled))
		case <-time.After(time.Second):
			t.Fatal("runner did not stop in time")
		}
	}
	t.Cleanup(stop)
	return stop
}

func TestProvideRunner_DisabledWithoutTopic(t *testing.T) {
	t.Parallel()

	logger := log.NewStdLogger(io.Discard)
	repo := repositories.NewOutboxRepository(nil, logger, defaultOutboxConfig)

	runner := outboxtasks.ProvideRunner(repo, nil, gcpubsub.Config{ProjectID: testProjectID}, defaultOutboxConfig, logger)
	require.Nil(t, runner)

	require.Nil(t, outboxtasks.ProvideRunner(nil, nil, gcpubsub.Config{TopicID: testTopicID}, defaultOutboxConfig, logger))
}

func TestProvideRunner_PublishesMediaCreated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newPublisherEnv(ctx, t, true)

	cfg := defaultOutboxConfig
	cfg.Publisher = outboxcfg.PublisherConfig{
		BatchSize:      4,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    3,
		PublishTimeout: time.Second,
		Workers:        2,
		LockTTL:        time.Second,
		LoggingEnabled: boolPtr(false),
		MetricsEnabled: boolPtr(false),
	}
	runner := outboxtasks.ProvideRunner(env.repo, env.publisher, gcpubsub.Config{
		ProjectID: testProjectID,
		TopicID:   testTopicID,
	}, cfg, log.NewStdLogger(io.Discard))
	require.NotNil(t, runner)

	videoEvent := env.enqueueMediaCreated(ctx, t, "VIDEO")
	trailerEvent := env.enqueueMediaCreated(ctx, t, "TRAILER")
	stop := runInBackground(t, runner)

	for _, id := range []uuid.UUID{videoEvent, trailerEvent} {
		require.Eventually(t, func() bool {
			published, attempts, err := env.deliveryState(ctx, id)
			return err == nil && published && attempts == 1
		}, 5*time.Second, 50*time.Millisecond)
	}
	stop()

	msgs := env.server.Messages()
	require.Len(t, msgs, 2)
	var types []string
	for _, m := range msgs {
		require.Equal(t, fmt.Sprintf("projects/%s/topics/%s", testProjectID, testTopicID), m.Topic)
		types = append(types, m.Attributes["media_type"])
	}
	sort.Strings(types)
	require.Equal(t, []string{"TRAILER", "VIDEO"}, types)

	pending, err := env.repo.CountPending(ctx)
	require.NoError(t, err)
	require.Zero(t, pending)
}

func TestPublisherRunner_RetriesUntilTopicExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newPublisherEnv(ctx, t, false)

	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("lingo-services-media.outbox.test")

	runner := newPublisherRunner(t, env.repo, env.publisher, meter, outboxcfg.PublisherConfig{
		BatchSize:      2,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 25 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: 150 * time.Millisecond,
		Workers:        1,
		LockTTL:        2 * time.Second,
	})

	eventID := env.enqueueMediaCreated(ctx, t, "VIDEO")
	stop := runInBackground(t, runner)

	// Topic 不存在时投递失败，事件保持未发布并累计尝试次数。
	require.Eventually(t, func() bool {
		published, attempts, err := env.deliveryState(ctx, eventID)
		return err == nil && !published && attempts >= 1
	}, 3*time.Second, 50*time.Millisecond)

	createTestTopic(ctx, t, env.server)

	require.Eventually(t, func() bool {
		published, _, err := env.deliveryState(ctx, eventID)
		return err == nil && published
	}, 6*time.Second, 100*time.Millisecond)
	stop()

	require.Len(t, env.server.Messages(), 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.NotEmpty(t, rm.ScopeMetrics, "publisher should record metrics on the injected meter")
}

func newTestPublisher(ctx context.Context, t *testing.T, server *pstest.Server, projectID, topicID string) (*gcpubsub.Component, func(), gcpubsub.Publisher) {
	t.Helper()

	cfg := gcpubsub.Config{
		ProjectID:        projectID,
		TopicID:          topicID,
		EnableLogging:    boolPtr(false),
		EnableMetrics:    boolPtr(true),
		MeterName:        "lingo-services-media.gcpubsub.test",
		EmulatorEndpoint: server.Addr,
	}

	component, cleanup, err := gcpubsub.NewComponent(ctx, cfg, gcpubsub.Dependencies{
		Logger: log.NewStdLogger(io.Discard),
	})
	require.NoError(t, err)

	return component, cleanup, gcpubsub.ProvidePublisher(component)
}

func newPublisherRunner(t *testing.T, repo *repositories.OutboxRepository, publisher gcpubsub.Publisher, meter metricapi.Meter, cfg outboxcfg.PublisherConfig) *outboxpublisher.Runner {
	t.Helper()

	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	cfg.LoggingEnabled = boolPtr(false)
	cfg.MetricsEnabled = boolPtr(true)

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    cfg,
		Logger:    log.NewStdLogger(io.Discard),
		Meter:     meter,
	})
	require.NoError(t, err)
	return runner
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	dsnFor := func(host, port string) string {
		return fmt.Sprintf("postgres://postgres:postgres@%s:%s/media?sslmode=disable", host, port)
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_USER":     "postgres",
				"POSTGRES_DB":       "media",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return dsnFor(host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skip outbox integration tests: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return dsnFor(host, port.Port()), func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	dir := filepath.Join("..", "..", "..", "..", "migrations")
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no migrations found in %s", dir)
	sort.Strings(paths)

	for _, path := range paths {
		sqlBytes, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		_, execErr := pool.Exec(ctx, string(sqlBytes))
		require.NoErrorf(t, execErr, "apply migration %s", filepath.Base(path))
	}
}

func boolPtr(v bool) *bool {
	return &v
}
