package mappers_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories/catalogdb"
	"github.com/bionicotaku/lingo-services-media/internal/repositories/mappers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) video.Snapshot {
	t.Helper()
	trailer, err := media.NewAudioVideo("sum-trailer", "trailer.mp4", "videoId-x/type-TRAILER")
	require.NoError(t, err)
	trailer = trailer.Completed("encoded/trailer")
	banner, err := media.NewImage("sum-banner", "banner.png", "videoId-x/type-BANNER")
	require.NoError(t, err)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 123000, time.UTC)
	return video.Snapshot{
		ID:          video.NewID(),
		Title:       "System Design",
		Description: "A deep dive",
		LaunchedAt:  2022,
		Duration:    120.5,
		Opened:      true,
		Rating:      video.Rating12,
		CreatedAt:   ts,
		UpdatedAt:   ts.Add(time.Minute),
		Trailer:     &trailer,
		Banner:      &banner,
		Categories:  []video.CategoryID{"c1", "c2"},
		Genres:      []video.GenreID{"g1"},
		CastMembers: []video.CastMemberID{},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	snapshot := sampleSnapshot(t)

	record := mappers.RecordFromSnapshot(snapshot)
	assert.Equal(t, snapshot.ID.UUID(), record.Video.VideoID)
	assert.Equal(t, int32(2022), record.Video.LaunchedAt)
	assert.Equal(t, "12", record.Video.Rating)
	require.Len(t, record.Media, 2)
	assert.Equal(t, []string{"c1", "c2"}, record.CategoryIDs)
	assert.NotNil(t, record.CastMemberIDs)

	restored := mappers.SnapshotFromRecord(record)
	assert.Equal(t, snapshot.ID, restored.ID)
	assert.Equal(t, snapshot.Title, restored.Title)
	assert.Equal(t, snapshot.Rating, restored.Rating)
	require.NotNil(t, restored.Trailer)
	assert.Equal(t, *snapshot.Trailer, *restored.Trailer)
	require.NotNil(t, restored.Banner)
	assert.Equal(t, *snapshot.Banner, *restored.Banner)
	assert.Nil(t, restored.Video)
	assert.Nil(t, restored.Thumbnail)
	assert.ElementsMatch(t, snapshot.Categories, restored.Categories)
}

func TestRecordFromSnapshotMediaColumns(t *testing.T) {
	record := mappers.RecordFromSnapshot(sampleSnapshot(t))

	byType := map[string]po.VideoMedia{}
	for _, row := range record.Media {
		byType[row.MediaType] = row
	}

	trailer := byType["TRAILER"]
	require.NotNil(t, trailer.Status)
	assert.Equal(t, "COMPLETED", *trailer.Status)
	require.NotNil(t, trailer.EncodedLocation)
	assert.Equal(t, "encoded/trailer", *trailer.EncodedLocation)

	banner := byType["BANNER"]
	assert.Nil(t, banner.Status)
	assert.Nil(t, banner.EncodedLocation)
	assert.Equal(t, "videoId-x/type-BANNER", banner.Location)
}

func TestSnapshotFromRecordSkipsUnknownSlots(t *testing.T) {
	record := po.VideoRecord{
		Video: po.Video{VideoID: uuid.New(), Title: "t"},
		Media: []po.VideoMedia{{MediaType: "POSTER", MediaID: "x"}},
	}
	snapshot := mappers.SnapshotFromRecord(record)
	assert.Nil(t, snapshot.Banner)
	assert.Nil(t, snapshot.Video)
}

func TestSortColumn(t *testing.T) {
	cases := map[string]string{
		"":             "title",
		"title":        "title",
		"createdAt":    "created_at",
		"updated_at":   "updated_at",
		"yearLaunched": "year_launched",
		"duration":     "duration",
		"unknown":      "title",
	}
	for input, want := range cases {
		assert.Equal(t, want, mappers.SortColumn(input), input)
	}
}

func TestBuildVideoParamsTruncatesTimestamps(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 1500, time.FixedZone("x", 3600))
	params := mappers.BuildInsertVideoParams(po.Video{VideoID: uuid.New(), CreatedAt: ts, UpdatedAt: ts})
	require.True(t, params.CreatedAt.Valid)
	assert.Equal(t, time.UTC, params.CreatedAt.Time.Location())
	assert.Equal(t, 1000, params.CreatedAt.Time.Nanosecond())

	update := mappers.BuildUpdateVideoParams(po.Video{UpdatedAt: ts})
	assert.True(t, update.UpdatedAt.Valid)
}

func TestVideoMediaFromRow(t *testing.T) {
	row := catalogdb.CatalogVideoMedium{
		VideoID:         uuid.New(),
		MediaType:       "VIDEO",
		MediaID:         "id",
		Checksum:        "sum",
		Name:            "v.mp4",
		Location:        "loc",
		EncodedLocation: pgtype.Text{},
		Status:          pgtype.Text{String: "PENDING", Valid: true},
	}
	m := mappers.VideoMediaFromRow(row)
	assert.Nil(t, m.EncodedLocation)
	require.NotNil(t, m.Status)
	assert.Equal(t, "PENDING", *m.Status)

	params := mappers.BuildUpsertVideoMediaParams(m)
	assert.False(t, params.EncodedLocation.Valid)
	assert.True(t, params.Status.Valid)
}
