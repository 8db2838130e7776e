package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

type fakeSession struct{ ctx context.Context }

func (fakeTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeSession) Tx() pgx.Tx { return nil }

func (s fakeSession) Context() context.Context { return s.ctx }

func ptrInt(v int) *int { return &v }

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

func resource(name string) *media.Resource {
	res := media.NewResource([]byte("content of "+name), "application/octet-stream", name)
	return &res
}

func location(videoID video.ID, kind media.Type) string {
	return "videoId-" + videoID.String() + "/type-" + string(kind)
}

// storedAudioVideo 模拟存储网关：按资源构造 PENDING 状态的音视频媒体。
func storedAudioVideo(_ context.Context, videoID video.ID, res media.VideoResource) (media.AudioVideoMedia, error) {
	return media.NewAudioVideo(res.Checksum, res.Name, location(videoID, res.Type))
}

func storedImage(_ context.Context, videoID video.ID, res media.VideoResource) (media.ImageMedia, error) {
	return media.NewImage(res.Checksum, res.Name, location(videoID, res.Type))
}

func validFields() video.Fields {
	return video.Fields{
		Title:       "Ação",
		Description: "descrição",
		LaunchedAt:  2022,
		Duration:    120,
		Opened:      true,
		Rating:      video.RatingL,
	}
}

// videoWithMedia 构造已挂载正片与预告片的聚合，事件缓冲已清空。
func videoWithMedia(t *testing.T) (*video.Video, media.AudioVideoMedia, media.AudioVideoMedia) {
	t.Helper()
	v := video.New(validFields())
	main, err := media.NewAudioVideo("sum-video", "video.mp4", location(v.ID(), media.TypeVideo))
	require.NoError(t, err)
	trailer, err := media.NewAudioVideo("sum-trailer", "trailer.mp4", location(v.ID(), media.TypeTrailer))
	require.NoError(t, err)
	v.UpdateVideoMedia(media.Some(main)).UpdateTrailerMedia(media.Some(trailer))
	v.PullEvents()
	return v, main, trailer
}
