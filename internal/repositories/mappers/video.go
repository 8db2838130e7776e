// Package mappers 提供仓储层的模型转换工具，在领域快照、PO 与 catalogdb 行之间转换。
package mappers

import (
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories/catalogdb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// 排序字段到列名的映射，未知字段回退到 title。
var sortColumns = map[string]string{
	"title":         "title",
	"createdat":     "created_at",
	"created_at":    "created_at",
	"updatedat":     "updated_at",
	"updated_at":    "updated_at",
	"yearlaunched":  "year_launched",
	"year_launched": "year_launched",
	"duration":      "duration",
}

// SortColumn 将 API 排序字段转换为 SQL 列名。
func SortColumn(sort string) string {
	if col, ok := sortColumns[strings.ToLower(strings.TrimSpace(sort))]; ok {
		return col
	}
	return "title"
}

// RecordFromSnapshot 将聚合快照拆分为多表记录。
func RecordFromSnapshot(s video.Snapshot) po.VideoRecord {
	record := po.VideoRecord{
		Video: po.Video{
			VideoID:     s.ID.UUID(),
			Title:       s.Title,
			Description: s.Description,
			LaunchedAt:  int32(s.LaunchedAt),
			Duration:    s.Duration,
			Opened:      s.Opened,
			Published:   s.Published,
			Rating:      s.Rating.String(),
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		},
		CategoryIDs:   stringsOf(s.Categories),
		GenreIDs:      stringsOf(s.Genres),
		CastMemberIDs: stringsOf(s.CastMembers),
	}

	videoID := record.Video.VideoID
	if s.Video != nil {
		record.Media = append(record.Media, audioVideoRow(videoID, media.TypeVideo, *s.Video))
	}
	if s.Trailer != nil {
		record.Media = append(record.Media, audioVideoRow(videoID, media.TypeTrailer, *s.Trailer))
	}
	if s.Banner != nil {
		record.Media = append(record.Media, imageRow(videoID, media.TypeBanner, *s.Banner))
	}
	if s.Thumbnail != nil {
		record.Media = append(record.Media, imageRow(videoID, media.TypeThumbnail, *s.Thumbnail))
	}
	if s.ThumbnailHalf != nil {
		record.Media = append(record.Media, imageRow(videoID, media.TypeThumbnailHalf, *s.ThumbnailHalf))
	}
	return record
}

// SnapshotFromRecord 由多表记录重建聚合快照；未知槽位类型被忽略。
func SnapshotFromRecord(r po.VideoRecord) video.Snapshot {
	snapshot := video.Snapshot{
		ID:          video.ID(r.Video.VideoID.String()),
		Title:       r.Video.Title,
		Description: r.Video.Description,
		LaunchedAt:  int(r.Video.LaunchedAt),
		Duration:    r.Video.Duration,
		Opened:      r.Video.Opened,
		Published:   r.Video.Published,
		Rating:      video.Rating(r.Video.Rating),
		CreatedAt:   r.Video.CreatedAt,
		UpdatedAt:   r.Video.UpdatedAt,
		Categories:  idsOf[video.CategoryID](r.CategoryIDs),
		Genres:      idsOf[video.GenreID](r.GenreIDs),
		CastMembers: idsOf[video.CastMemberID](r.CastMemberIDs),
	}

	for _, row := range r.Media {
		kind, ok := media.ParseType(row.MediaType)
		if !ok {
			continue
		}
		switch kind {
		case media.TypeVideo:
			m := audioVideoFromRow(row)
			snapshot.Video = &m
		case media.TypeTrailer:
			m := audioVideoFromRow(row)
			snapshot.Trailer = &m
		case media.TypeBanner:
			m := imageFromRow(row)
			snapshot.Banner = &m
		case media.TypeThumbnail:
			m := imageFromRow(row)
			snapshot.Thumbnail = &m
		case media.TypeThumbnailHalf:
			m := imageFromRow(row)
			snapshot.ThumbnailHalf = &m
		}
	}
	return snapshot
}

func audioVideoRow(videoID uuid.UUID, kind media.Type, m media.AudioVideoMedia) po.VideoMedia {
	status := string(m.Status)
	row := po.VideoMedia{
		VideoID:   videoID,
		MediaType: string(kind),
		MediaID:   m.ID,
		Checksum:  m.Checksum,
		Name:      m.Name,
		Location:  m.RawLocation,
		Status:    &status,
	}
	if m.EncodedLocation != "" {
		encoded := m.EncodedLocation
		row.EncodedLocation = &encoded
	}
	return row
}

func imageRow(videoID uuid.UUID, kind media.Type, m media.ImageMedia) po.VideoMedia {
	return po.VideoMedia{
		VideoID:   videoID,
		MediaType: string(kind),
		MediaID:   m.ID,
		Checksum:  m.Checksum,
		Name:      m.Name,
		Location:  m.Location,
	}
}

func audioVideoFromRow(row po.VideoMedia) media.AudioVideoMedia {
	m := media.AudioVideoMedia{
		ID:          row.MediaID,
		Checksum:    row.Checksum,
		Name:        row.Name,
		RawLocation: row.Location,
		Status:      media.StatusPending,
	}
	if row.Status != nil {
		if status, ok := media.ParseStatus(*row.Status); ok {
			m.Status = status
		}
	}
	if row.EncodedLocation != nil {
		m.EncodedLocation = *row.EncodedLocation
	}
	return m
}

func imageFromRow(row po.VideoMedia) media.ImageMedia {
	return media.ImageMedia{
		ID:       row.MediaID,
		Checksum: row.Checksum,
		Name:     row.Name,
		Location: row.Location,
	}
}

// BuildInsertVideoParams 构造 InsertVideo 参数。
func BuildInsertVideoParams(v po.Video) catalogdb.InsertVideoParams {
	return catalogdb.InsertVideoParams{
		VideoID:      v.VideoID,
		Title:        v.Title,
		Description:  v.Description,
		YearLaunched: v.LaunchedAt,
		Duration:     v.Duration,
		Opened:       v.Opened,
		Published:    v.Published,
		Rating:       v.Rating,
		CreatedAt:    ToPgTimestamptz(&v.CreatedAt),
		UpdatedAt:    ToPgTimestamptz(&v.UpdatedAt),
	}
}

// BuildUpdateVideoParams 构造 UpdateVideo 参数；created_at 不随更新改变。
func BuildUpdateVideoParams(v po.Video) catalogdb.UpdateVideoParams {
	return catalogdb.UpdateVideoParams{
		VideoID:      v.VideoID,
		Title:        v.Title,
		Description:  v.Description,
		YearLaunched: v.LaunchedAt,
		Duration:     v.Duration,
		Opened:       v.Opened,
		Published:    v.Published,
		Rating:       v.Rating,
		UpdatedAt:    ToPgTimestamptz(&v.UpdatedAt),
	}
}

// BuildUpsertVideoMediaParams 构造媒体槽位写入参数。
func BuildUpsertVideoMediaParams(m po.VideoMedia) catalogdb.UpsertVideoMediaParams {
	return catalogdb.UpsertVideoMediaParams{
		VideoID:         m.VideoID,
		MediaType:       m.MediaType,
		MediaID:         m.MediaID,
		Checksum:        m.Checksum,
		Name:            m.Name,
		Location:        m.Location,
		EncodedLocation: ToPgText(m.EncodedLocation),
		Status:          ToPgText(m.Status),
	}
}

// VideoFromRow 将 catalog.videos 行转换为 PO。
func VideoFromRow(row catalogdb.CatalogVideo) po.Video {
	return po.Video{
		VideoID:     row.VideoID,
		Title:       row.Title,
		Description: row.Description,
		LaunchedAt:  row.YearLaunched,
		Duration:    row.Duration,
		Opened:      row.Opened,
		Published:   row.Published,
		Rating:      row.Rating,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// VideoMediaFromRow 将 catalog.video_media 行转换为 PO。
func VideoMediaFromRow(row catalogdb.CatalogVideoMedium) po.VideoMedia {
	return po.VideoMedia{
		VideoID:         row.VideoID,
		MediaType:       row.MediaType,
		MediaID:         row.MediaID,
		Checksum:        row.Checksum,
		Name:            row.Name,
		Location:        row.Location,
		EncodedLocation: textPtr(row.EncodedLocation),
		Status:          textPtr(row.Status),
	}
}

// VideoPreviewFromRow 将列表行转换为 PO。
func VideoPreviewFromRow(row catalogdb.SearchVideosRow) po.VideoPreview {
	return po.VideoPreview{
		VideoID:     row.VideoID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

func stringsOf[T ~string](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func idsOf[T ~string](values []string) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}

func mustTimestamp(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time.UTC()
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	value := t.String
	return &value
}

// ToPgText 将 string 指针转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{
		String: *value,
		Valid:  true,
	}
}

// ToPgTimestamptz 将 time 指针转换为 pgtype.Timestamptz，统一为 UTC 微秒精度。
func ToPgTimestamptz(value *time.Time) pgtype.Timestamptz {
	if value == nil || value.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{
		Time:  value.UTC().Truncate(time.Microsecond),
		Valid: true,
	}
}
