package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

func newVideo(t *testing.T, title string, fields video.Fields) *video.Video {
	t.Helper()
	fields.Title = title
	if fields.LaunchedAt == 0 {
		fields.LaunchedAt = 2020
	}
	if fields.Rating == "" {
		fields.Rating = video.RatingL
	}
	return video.New(fields)
}

func TestVideoRepositoryIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	seedReferences(ctx, t, pool, "categories", "category_id", "c1", "c2")
	seedReferences(ctx, t, pool, "genres", "genre_id", "g1")
	seedReferences(ctx, t, pool, "cast_members", "cast_member_id", "m1")

	repo := repositories.NewVideoRepository(pool, log.NewStdLogger(io.Discard))
	tx := newTxManager(t, pool)

	t.Run("CreateAndFind", func(t *testing.T) {
		v := newVideo(t, "Create And Find", video.Fields{
			Description: "desc",
			Duration:    90.5,
			Opened:      true,
			Categories:  []video.CategoryID{"c1", "c2"},
			Genres:      []video.GenreID{"g1"},
			CastMembers: []video.CastMemberID{"m1"},
		})
		trailer, err := media.NewAudioVideo("sum-t", "trailer.mp4", repositories.ResourceKey(v.ID(), media.TypeTrailer))
		require.NoError(t, err)
		banner, err := media.NewImage("sum-b", "banner.png", repositories.ResourceKey(v.ID(), media.TypeBanner))
		require.NoError(t, err)
		v.UpdateTrailerMedia(media.Some(trailer))
		v.UpdateBannerMedia(media.Some(banner))

		require.NoError(t, repo.Create(ctx, nil, v))

		found, err := repo.FindByID(ctx, nil, v.ID())
		require.NoError(t, err)
		require.Equal(t, v.ID(), found.ID())
		require.Equal(t, "Create And Find", found.Title())
		require.Equal(t, 2020, found.LaunchedAt())
		require.Equal(t, video.RatingL, found.Rating())
		require.True(t, found.CreatedAt().Equal(v.CreatedAt()))
		require.True(t, found.UpdatedAt().Equal(v.UpdatedAt()))
		require.ElementsMatch(t, []video.CategoryID{"c1", "c2"}, found.Categories().Values())
		require.ElementsMatch(t, []video.GenreID{"g1"}, found.Genres().Values())

		gotTrailer, ok := found.Trailer().Get()
		require.True(t, ok)
		require.Equal(t, trailer, gotTrailer)
		require.Equal(t, media.StatusPending, gotTrailer.Status)
		gotBanner, ok := found.Banner().Get()
		require.True(t, ok)
		require.Equal(t, banner, gotBanner)
		require.False(t, found.VideoMedia().IsPresent())
		require.Empty(t, found.PendingEvents())
	})

	t.Run("UpdateReplacesChildren", func(t *testing.T) {
		v := newVideo(t, "Before", video.Fields{Categories: []video.CategoryID{"c1"}})
		trailer, err := media.NewAudioVideo("sum", "t.mp4", "loc")
		require.NoError(t, err)
		v.UpdateTrailerMedia(media.Some(trailer))
		require.NoError(t, repo.Create(ctx, nil, v))

		v.Update(video.Fields{Title: "After", LaunchedAt: 2021, Rating: video.Rating14, Genres: []video.GenreID{"g1"}})
		v.UpdateTrailerMedia(media.None[media.AudioVideoMedia]())
		v.Completed(media.TypeVideo, "ignored")

		err = tx.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
			return repo.Update(txCtx, sess, v)
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, nil, v.ID())
		require.NoError(t, err)
		require.Equal(t, "After", found.Title())
		require.Equal(t, video.Rating14, found.Rating())
		require.True(t, found.Categories().IsEmpty())
		require.ElementsMatch(t, []video.GenreID{"g1"}, found.Genres().Values())
		require.False(t, found.Trailer().IsPresent())
	})

	t.Run("StatusTransitionPersists", func(t *testing.T) {
		v := newVideo(t, "Encoding", video.Fields{})
		raw, err := media.NewAudioVideo("sum-v", "v.mp4", "raw/v")
		require.NoError(t, err)
		v.UpdateVideoMedia(media.Some(raw))
		require.NoError(t, repo.Create(ctx, nil, v))

		v.Completed(media.TypeVideo, "encoded/v")
		require.NoError(t, repo.Update(ctx, nil, v))

		found, err := repo.FindByID(ctx, nil, v.ID())
		require.NoError(t, err)
		got, ok := found.VideoMedia().Get()
		require.True(t, ok)
		require.Equal(t, media.StatusCompleted, got.Status)
		require.Equal(t, "encoded/v", got.EncodedLocation)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		v := newVideo(t, "Ghost", video.Fields{})
		err := repo.Update(ctx, nil, v)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("FindMissing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, nil, video.NewID())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
		_, err = repo.FindByID(ctx, nil, video.ID("not-a-uuid"))
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		v := newVideo(t, "Delete Me", video.Fields{Categories: []video.CategoryID{"c2"}})
		require.NoError(t, repo.Create(ctx, nil, v))

		require.NoError(t, repo.DeleteByID(ctx, nil, v.ID()))
		require.NoError(t, repo.DeleteByID(ctx, nil, v.ID()))
		_, err := repo.FindByID(ctx, nil, v.ID())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})
}

func TestVideoRepositoryFindAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	seedReferences(ctx, t, pool, "categories", "category_id", "drama", "docs")
	seedReferences(ctx, t, pool, "genres", "genre_id", "g1")

	repo := repositories.NewVideoRepository(pool, log.NewStdLogger(io.Discard))

	titles := []struct {
		title      string
		desc       string
		categories []video.CategoryID
		year       int
	}{
		{"Alpha", "space opera", []video.CategoryID{"drama"}, 2001},
		{"Bravo", "documentary about go", []video.CategoryID{"docs"}, 1999},
		{"Charlie", "another drama", []video.CategoryID{"drama", "docs"}, 2010},
	}
	for _, item := range titles {
		v := newVideo(t, item.title, video.Fields{Description: item.desc, Categories: item.categories, LaunchedAt: item.year})
		require.NoError(t, repo.Create(ctx, nil, v))
	}

	page, err := repo.FindAll(ctx, nil, po.VideoSearchQuery{PerPage: 2, Direction: "asc"})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	require.Equal(t, "Alpha", page.Items[0].Title)
	require.Equal(t, "Bravo", page.Items[1].Title)

	page, err = repo.FindAll(ctx, nil, po.VideoSearchQuery{Page: 1, PerPage: 2, Direction: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Charlie", page.Items[0].Title)

	page, err = repo.FindAll(ctx, nil, po.VideoSearchQuery{PerPage: 10, Sort: "yearLaunched", Direction: "desc"})
	require.NoError(t, err)
	require.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, previewTitles(page))

	page, err = repo.FindAll(ctx, nil, po.VideoSearchQuery{PerPage: 10, Terms: "DRAMA"})
	require.NoError(t, err)
	require.Equal(t, []string{"Charlie"}, previewTitles(page))

	page, err = repo.FindAll(ctx, nil, po.VideoSearchQuery{PerPage: 10, Categories: []string{"docs"}})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.ElementsMatch(t, []string{"Bravo", "Charlie"}, previewTitles(page))

	page, err = repo.FindAll(ctx, nil, po.VideoSearchQuery{PerPage: 10, Genres: []string{"g1"}})
	require.NoError(t, err)
	require.Zero(t, page.Total)
	require.NotNil(t, page.Items)
}

func previewTitles(page *po.VideoPage) []string {
	out := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		out = append(out, item.Title)
	}
	return out
}
