package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/bionicotaku/lingo-services-media/internal/infrastructure/blobstore"
	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type lifecycleTestEnv struct {
	ctx        context.Context
	pool       *pgxpool.Pool
	outboxRepo *repositories.OutboxRepository
	creator    *services.CreateVideoService
	updater    *services.UpdateVideoService
	statuses   *services.MediaStatusService
	queries    *services.VideoQueryService
	server     *pstest.Server
}

type mediaCreatedPayload struct {
	ResourceID string `json:"resource_id"`
	FilePath   string `json:"file_path"`
	MediaType  string `json:"media_type"`
}

func TestOutboxPublisher_MediaCreatedLifecycle(t *testing.T) {
	env := newLifecycleTestEnv(t)
	ctx := env.ctx

	created, err := env.creator.CreateVideo(ctx, services.CreateVideoInput{VideoInput: services.VideoInput{
		Title:      "Lifecycle E2E",
		LaunchedAt: intPtr(2024),
		Rating:     "L",
		Categories: []string{"c1"},
		Video:      resource("full movie", "movie.mp4", "video/mp4"),
		Trailer:    resource("teaser", "trailer.mp4", "video/mp4"),
		Banner:     resource("png", "banner.png", "image/png"),
	}})
	require.NoError(t, err)

	msgs := waitForMessages(t, env.server, 2)
	payloads := decodePayloads(t, msgs)
	require.Equal(t, []string{"TRAILER", "VIDEO"}, mediaTypes(payloads))
	for i, msg := range msgs {
		require.Equal(t, "catalog.video.media_created", msg.Attributes["event_type"])
		require.Equal(t, created.VideoID, msg.Attributes["aggregate_id"])
		require.Equal(t, "video", msg.Attributes["aggregate_type"])
		require.Equal(t, created.VideoID, payloads[i].ResourceID)
		require.Equal(t, "videoId-"+created.VideoID+"/type-"+payloads[i].MediaType, payloads[i].FilePath)
	}

	detail, err := env.queries.GetVideo(ctx, created.VideoID)
	require.NoError(t, err)
	require.NotNil(t, detail.Trailer)

	// 状态迁移只改写持久化状态，不产生事件。
	require.NoError(t, env.statuses.UpdateStatus(ctx, services.UpdateMediaStatusInput{
		Status:          "COMPLETED",
		VideoID:         created.VideoID,
		ResourceID:      detail.Trailer.ID,
		EncodedFolder:   "encoded",
		EncodedFileName: "trailer.m3u8",
	}))

	// 替换正片产生一条新的事件；图片替换不产生事件。
	_, err = env.updater.UpdateVideo(ctx, services.UpdateVideoInput{VideoID: created.VideoID, VideoInput: services.VideoInput{
		Title:      "Lifecycle E2E v2",
		LaunchedAt: intPtr(2024),
		Rating:     "L",
		Categories: []string{"c1"},
		Video:      resource("director's cut", "movie-v2.mp4", "video/mp4"),
		Thumbnail:  resource("jpg", "thumb.jpg", "image/jpeg"),
	}})
	require.NoError(t, err)

	msgs = waitForMessages(t, env.server, 3)
	require.Len(t, msgs, 3)
	last := decodePayloads(t, msgs[2:])[0]
	require.Equal(t, "VIDEO", last.MediaType)

	pending, err := env.outboxRepo.CountPending(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), pending)

	content, err := env.queries.GetMedia(ctx, created.VideoID, "video")
	require.NoError(t, err)
	require.Equal(t, []byte("director's cut"), content.Content)

	require.NoError(t, env.queries.DeleteVideo(ctx, created.VideoID))
	_, err = env.queries.GetMedia(ctx, created.VideoID, "banner")
	require.Error(t, err)
	require.Len(t, env.server.Messages(), 3)
}

func newLifecycleTestEnv(t *testing.T) *lifecycleTestEnv {
	t.Helper()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)
	_, err = pool.Exec(ctx, `insert into catalog.categories (category_id, name) values ('c1', 'Drama')`)
	require.NoError(t, err)

	logger := log.NewStdLogger(io.Discard)
	outboxRepo := repositories.NewOutboxRepository(pool, logger, defaultOutboxConfig)
	videoRepo := repositories.NewVideoRepository(pool, logger)
	txMgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: logger})
	require.NoError(t, err)

	store, err := blobstore.NewLocalStore(t.TempDir(), "", logger)
	require.NoError(t, err)
	mediaRepo := repositories.NewMediaResourceRepository(store, logger)

	references := services.NewReferenceValidator(
		repositories.NewCategoryRepository(pool, logger),
		repositories.NewGenreRepository(pool, logger),
		repositories.NewCastMemberRepository(pool, logger),
	)
	videoStore := services.NewVideoStore(videoRepo, outboxRepo, txMgr, logger)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	projectID := "catalog-test"
	topicID := "catalog-video-media-events"
	_, err = server.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/" + projectID + "/topics/" + topicID})
	require.NoError(t, err)

	component, cleanupPublisher, publisher := newTestPublisher(ctx, t, server, projectID, topicID)
	t.Cleanup(cleanupPublisher)
	t.Cleanup(func() { _ = component })

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = meterProvider.Shutdown(ctx) })
	meter := meterProvider.Meter("lingo-services-media.outbox.e2e")

	runner := newPublisherRunner(t, outboxRepo, publisher, meter, outboxcfg.PublisherConfig{
		BatchSize:      1,
		TickInterval:   25 * time.Millisecond,
		InitialBackoff: 25 * time.Millisecond,
		MaxBackoff:     250 * time.Millisecond,
		MaxAttempts:    3,
		PublishTimeout: time.Second,
		Workers:        1,
		LockTTL:        time.Second,
	})

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Fatalf("outbox runner error: %v", err)
			}
		case <-time.After(time.Second):
			t.Fatalf("outbox runner did not stop in time")
		}
	})

	return &lifecycleTestEnv{
		ctx:        ctx,
		pool:       pool,
		outboxRepo: outboxRepo,
		creator:    services.NewCreateVideoService(references, videoStore, mediaRepo, logger),
		updater:    services.NewUpdateVideoService(references, videoStore, mediaRepo, logger),
		statuses:   services.NewMediaStatusService(videoStore, txMgr, logger),
		queries:    services.NewVideoQueryService(videoRepo, mediaRepo, txMgr, logger),
		server:     server,
	}
}

func waitForMessages(t *testing.T, server *pstest.Server, want int) []*pstest.Message {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(server.Messages()) >= want
	}, 10*time.Second, 50*time.Millisecond, "pubsub did not receive enough messages")
	return server.Messages()
}

func decodePayloads(t *testing.T, msgs []*pstest.Message) []mediaCreatedPayload {
	t.Helper()
	out := make([]mediaCreatedPayload, len(msgs))
	for i, msg := range msgs {
		require.NoError(t, json.Unmarshal(msg.Data, &out[i]))
	}
	return out
}

func mediaTypes(payloads []mediaCreatedPayload) []string {
	types := make([]string, 0, len(payloads))
	for _, p := range payloads {
		types = append(types, p.MediaType)
	}
	sort.Strings(types)
	return types
}

func resource(content, name, contentType string) *media.Resource {
	r := media.NewResource([]byte(content), contentType, name)
	return &r
}

func intPtr(v int) *int { return &v }
