package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/metadata"
	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type videoRepoStub struct {
	created []*video.Video
	updated []*video.Video
	err     error
}

func (s *videoRepoStub) Create(_ context.Context, _ txmanager.Session, v *video.Video) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, v)
	return nil
}

func (s *videoRepoStub) Update(_ context.Context, _ txmanager.Session, v *video.Video) error {
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, v)
	return nil
}

func (s *videoRepoStub) FindByID(context.Context, txmanager.Session, video.ID) (*video.Video, error) {
	return nil, repositories.ErrVideoNotFound
}

func (s *videoRepoStub) DeleteByID(context.Context, txmanager.Session, video.ID) error { return nil }

func (s *videoRepoStub) FindAll(context.Context, txmanager.Session, po.VideoSearchQuery) (*po.VideoPage, error) {
	return &po.VideoPage{}, nil
}

type outboxRepoStub struct {
	messages []repositories.OutboxMessage
	err      error
}

func (s *outboxRepoStub) Enqueue(_ context.Context, _ txmanager.Session, msg repositories.OutboxMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func newVideoWithAudioVideo(t *testing.T) *video.Video {
	t.Helper()
	v := video.New(validFields())
	main, err := media.NewAudioVideo("sum", "video.mp4", location(v.ID(), media.TypeVideo))
	require.NoError(t, err)
	v.UpdateVideoMedia(media.Some(main))
	return v
}

func TestVideoStoreCreateEnqueuesMediaCreated(t *testing.T) {
	repo := &videoRepoStub{}
	outbox := &outboxRepoStub{}
	store := services.NewVideoStore(repo, outbox, fakeTxManager{}, discardLogger())

	v := newVideoWithAudioVideo(t)
	ctx := metadata.Inject(context.Background(), metadata.HandlerMetadata{IdempotencyKey: "idem-1"})
	require.NoError(t, store.Create(ctx, v))

	require.Len(t, repo.created, 1)
	require.Len(t, outbox.messages, 1)
	msg := outbox.messages[0]
	assert.Equal(t, "catalog.video.media_created", msg.EventType)
	assert.Equal(t, "video", msg.AggregateType)
	assert.Equal(t, v.ID().UUID(), msg.AggregateID)
	assert.Equal(t, "idem-1", msg.Headers["idempotency_key"])

	var payload map[string]string
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, location(v.ID(), media.TypeVideo), payload["file_path"])
	assert.Equal(t, "VIDEO", payload["media_type"])

	assert.Empty(t, v.PendingEvents(), "提交后清空事件缓冲")
}

func TestVideoStoreKeepsEventsWhenOutboxFails(t *testing.T) {
	repo := &videoRepoStub{}
	outbox := &outboxRepoStub{err: errors.New("outbox unavailable")}
	store := services.NewVideoStore(repo, outbox, fakeTxManager{}, discardLogger())

	v := newVideoWithAudioVideo(t)
	err := store.Update(context.Background(), v)
	require.Error(t, err)
	assert.Len(t, v.PendingEvents(), 1)
}

func TestVideoStoreRepoError(t *testing.T) {
	boom := errors.New("insert failed")
	repo := &videoRepoStub{err: boom}
	outbox := &outboxRepoStub{}
	store := services.NewVideoStore(repo, outbox, fakeTxManager{}, discardLogger())

	err := store.Create(context.Background(), newVideoWithAudioVideo(t))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, outbox.messages)
}

func TestVideoStoreUpdateWithoutEvents(t *testing.T) {
	repo := &videoRepoStub{}
	outbox := &outboxRepoStub{}
	store := services.NewVideoStore(repo, outbox, fakeTxManager{}, discardLogger())

	v := video.New(validFields())
	require.NoError(t, store.UpdateInTx(context.Background(), fakeSession{ctx: context.Background()}, v))
	assert.Len(t, repo.updated, 1)
	assert.Empty(t, outbox.messages)

	_, err := store.FindByID(context.Background(), v.ID())
	require.ErrorIs(t, err, repositories.ErrVideoNotFound)
}
