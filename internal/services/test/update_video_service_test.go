package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/validation"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-services-media/internal/services"
	"github.com/bionicotaku/lingo-services-media/internal/services/mocks"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateFixture struct {
	categories *mocks.MockReferenceGateway
	videos     *mocks.MockVideoGateway
	media      *mocks.MockMediaResourceGateway
	svc        *services.UpdateVideoService
}

func newUpdateFixture(t *testing.T) *updateFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &updateFixture{
		categories: mocks.NewMockReferenceGateway(ctrl),
		videos:     mocks.NewMockVideoGateway(ctrl),
		media:      mocks.NewMockMediaResourceGateway(ctrl),
	}
	validator := services.NewReferenceValidator(f.categories, mocks.NewMockReferenceGateway(ctrl), mocks.NewMockReferenceGateway(ctrl))
	f.svc = services.NewUpdateVideoService(validator, f.videos, f.media, discardLogger())
	return f
}

func updateInput(id string) services.UpdateVideoInput {
	return services.UpdateVideoInput{
		VideoID: id,
		VideoInput: services.VideoInput{
			Title:      "Novo título",
			LaunchedAt: ptrInt(2023),
			Duration:   100,
			Rating:     "16",
		},
	}
}

func TestUpdateVideo_NotFoundAbortsBeforeValidation(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	id := video.NewID()
	f.videos.EXPECT().FindByID(gomock.Any(), id).Return(nil, repositories.ErrVideoNotFound)

	input := updateInput(id.String())
	input.Title = ""
	input.Categories = []string{"C1"}

	_, err := f.svc.UpdateVideo(context.Background(), input)
	require.Error(t, err)
	assert.True(t, kerrors.IsNotFound(err))
	meta := kerrors.FromError(err).Metadata
	assert.Equal(t, "Video", meta["entity"])
	assert.Equal(t, id.String(), meta["id"])
}

func TestUpdateVideo_MalformedIDIsNotFound(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	_, err := f.svc.UpdateVideo(context.Background(), updateInput("not-a-uuid"))
	assert.True(t, kerrors.IsNotFound(err))
}

func TestUpdateVideo_ReplacesFieldsAndOnlySuppliedMedia(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	existing, main, _ := videoWithMedia(t)
	createdAt := existing.CreatedAt()
	f.videos.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
	f.categories.EXPECT().ExistsByIDs(gomock.Any(), []string{"C9"}).Return([]string{"C9"}, nil)
	f.media.EXPECT().StoreImage(gomock.Any(), existing.ID(), gomock.Any()).DoAndReturn(storedImage)

	var persisted *video.Video
	f.videos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *video.Video) error {
		persisted = v
		return nil
	})

	input := updateInput(existing.ID().String())
	input.Categories = []string{"C9"}
	input.Banner = resource("banner.png")

	out, err := f.svc.UpdateVideo(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID().String(), out.VideoID)

	require.NotNil(t, persisted)
	assert.Equal(t, "Novo título", persisted.Title())
	assert.Equal(t, video.Rating16, persisted.Rating())
	assert.Equal(t, []video.CategoryID{"C9"}, persisted.Categories().Values())
	assert.Equal(t, createdAt, persisted.CreatedAt())
	assert.True(t, persisted.Banner().IsPresent())

	kept, ok := persisted.VideoMedia().Get()
	require.True(t, ok, "未提供的槽位保持不变")
	assert.Equal(t, main, kept)
}

func TestUpdateVideo_ValidationErrors(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	existing := video.New(validFields())
	f.videos.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

	input := updateInput(existing.ID().String())
	input.Rating = ""
	input.Duration = -5

	_, err := f.svc.UpdateVideo(context.Background(), input)

	var notifErr *validation.NotificationError
	require.ErrorAs(t, err, &notifErr)
	assert.Equal(t, services.MsgUpdateAggregateFailed, notifErr.Message)
	assert.ElementsMatch(t, []string{"'rating' should not be null", "'duration' should not be negative"}, notifErr.Messages())
}

func TestUpdateVideo_PersistFailureDoesNotClearResources(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	existing := video.New(validFields())
	f.videos.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
	f.media.EXPECT().StoreAudioVideo(gomock.Any(), existing.ID(), gomock.Any()).DoAndReturn(storedAudioVideo)
	f.videos.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("write conflict"))
	f.media.EXPECT().ClearResources(gomock.Any(), gomock.Any()).Times(0)

	input := updateInput(existing.ID().String())
	input.Trailer = resource("trailer.mp4")

	_, err := f.svc.UpdateVideo(context.Background(), input)
	require.Error(t, err)
	assert.True(t, kerrors.IsInternalServer(err))
	assert.Equal(t, existing.ID().String(), kerrors.FromError(err).Metadata["video_id"])
}

func TestUpdateVideo_StorageFailureIsInternal(t *testing.T) {
	t.Parallel()
	f := newUpdateFixture(t)

	existing := video.New(validFields())
	f.videos.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
	f.media.EXPECT().StoreAudioVideo(gomock.Any(), existing.ID(), gomock.Any()).Return(media.AudioVideoMedia{}, errors.New("s3 down"))

	input := updateInput(existing.ID().String())
	input.Video = resource("video.mp4")

	_, err := f.svc.UpdateVideo(context.Background(), input)
	assert.True(t, kerrors.IsInternalServer(err))
}
