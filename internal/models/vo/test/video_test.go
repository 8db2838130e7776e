package vo_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/models/vo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideoDetail(t *testing.T) {
	v := video.New(video.Fields{
		Title:       "测试视频",
		Description: "描述",
		LaunchedAt:  2020,
		Duration:    90,
		Opened:      true,
		Published:   true,
		Rating:      video.RatingL,
		Categories:  []video.CategoryID{"c1"},
		Genres:      []video.GenreID{"g1", "g2"},
	})

	trailer, err := media.NewAudioVideo("sum-t", "trailer.mp4", "videoId-x/type-TRAILER")
	require.NoError(t, err)
	banner, err := media.NewImage("sum-b", "banner.png", "videoId-x/type-BANNER")
	require.NoError(t, err)
	v.UpdateTrailerMedia(media.Some(trailer))
	v.UpdateBannerMedia(media.Some(banner))
	v.Completed(media.TypeTrailer, "encoded/trailer.m3u8")

	detail := vo.NewVideoDetail(v)
	require.NotNil(t, detail)
	assert.Equal(t, v.ID().String(), detail.ID)
	assert.Equal(t, "测试视频", detail.Title)
	assert.Equal(t, 2020, detail.LaunchedAt)
	assert.Equal(t, "L", detail.Rating)
	assert.Equal(t, []string{"c1"}, detail.Categories)
	assert.Len(t, detail.Genres, 2)
	assert.NotNil(t, detail.CastMembers)
	assert.Empty(t, detail.CastMembers)

	require.NotNil(t, detail.Trailer)
	assert.Equal(t, trailer.ID, detail.Trailer.ID)
	assert.Equal(t, "videoId-x/type-TRAILER", detail.Trailer.RawLocation)
	assert.Equal(t, "encoded/trailer.m3u8", detail.Trailer.EncodedLocation)
	assert.Equal(t, string(media.StatusCompleted), detail.Trailer.Status)

	require.NotNil(t, detail.Banner)
	assert.Equal(t, "banner.png", detail.Banner.Name)
	assert.Nil(t, detail.Video)
	assert.Nil(t, detail.Thumbnail)
	assert.Nil(t, detail.ThumbnailHalf)
}

func TestNewVideoDetailNil(t *testing.T) {
	assert.Nil(t, vo.NewVideoDetail(nil))
	assert.Nil(t, vo.NewVideoCreated(nil))
	assert.Nil(t, vo.NewVideoUpdated(nil))
}

func TestNewVideoPage(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()

	page := vo.NewVideoPage(&po.VideoPage{
		Page:    1,
		PerPage: 10,
		Total:   11,
		Items: []po.VideoPreview{
			{VideoID: id, Title: "a", Description: "b", CreatedAt: now, UpdatedAt: now},
		},
	})
	assert.Equal(t, int32(1), page.CurrentPage)
	assert.Equal(t, int32(10), page.PerPage)
	assert.Equal(t, int64(11), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, id.String(), page.Items[0].ID)
	assert.Equal(t, "a", page.Items[0].Title)

	empty := vo.NewVideoPage(nil)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}
