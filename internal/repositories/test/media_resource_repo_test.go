package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/infrastructure/blobstore"
	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

func newMediaRepo(t *testing.T) *repositories.MediaResourceRepository {
	t.Helper()
	logger := log.NewStdLogger(io.Discard)
	store, err := blobstore.NewLocalStore(t.TempDir(), "media", logger)
	require.NoError(t, err)
	return repositories.NewMediaResourceRepository(store, logger)
}

func TestMediaResourceRepository(t *testing.T) {
	ctx := context.Background()
	repo := newMediaRepo(t)
	videoID := video.NewID()

	raw := media.NewResource([]byte("frames"), "video/mp4", "片头 01.mp4")
	stored, err := repo.StoreAudioVideo(ctx, videoID, media.VideoResource{Resource: raw, Type: media.TypeVideo})
	require.NoError(t, err)
	require.Equal(t, "videoId-"+videoID.String()+"/type-VIDEO", stored.RawLocation)
	require.Equal(t, media.StatusPending, stored.Status)
	require.Equal(t, media.DeriveID(raw.Checksum, raw.Name), stored.ID)

	img := media.NewResource([]byte("png"), "image/png", "banner.png")
	banner, err := repo.StoreImage(ctx, videoID, media.VideoResource{Resource: img, Type: media.TypeBanner})
	require.NoError(t, err)
	require.Equal(t, repositories.ResourceKey(videoID, media.TypeBanner), banner.Location)

	got, err := repo.GetResource(ctx, videoID, media.TypeVideo)
	require.NoError(t, err)
	require.Equal(t, []byte("frames"), got.Content)
	require.Equal(t, "video/mp4", got.ContentType)
	require.Equal(t, "片头 01.mp4", got.Name)
	require.Equal(t, raw.Checksum, got.Checksum)

	_, err = repo.GetResource(ctx, videoID, media.TypeTrailer)
	require.ErrorIs(t, err, repositories.ErrMediaNotFound)

	require.NoError(t, repo.ClearResources(ctx, videoID))
	_, err = repo.GetResource(ctx, videoID, media.TypeBanner)
	require.ErrorIs(t, err, repositories.ErrMediaNotFound)
	require.NoError(t, repo.ClearResources(ctx, videoID))
}

func TestMediaResourceRepositoryRejectsWrongSlotKind(t *testing.T) {
	ctx := context.Background()
	repo := newMediaRepo(t)
	res := media.NewResource([]byte("x"), "", "x")

	_, err := repo.StoreAudioVideo(ctx, video.NewID(), media.VideoResource{Resource: res, Type: media.TypeBanner})
	require.Error(t, err)
	_, err = repo.StoreImage(ctx, video.NewID(), media.VideoResource{Resource: res, Type: media.TypeTrailer})
	require.Error(t, err)
}
