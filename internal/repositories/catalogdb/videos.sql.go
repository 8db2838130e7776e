package catalogdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertVideo = `-- name: InsertVideo :exec
INSERT INTO catalog.videos (
    video_id, title, description, year_launched, duration,
    opened, published, rating, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
`

// InsertVideoParams 为 InsertVideo 的参数。
type InsertVideoParams struct {
	VideoID      uuid.UUID          `json:"video_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	YearLaunched int32              `json:"year_launched"`
	Duration     float64            `json:"duration"`
	Opened       bool               `json:"opened"`
	Published    bool               `json:"published"`
	Rating       string             `json:"rating"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) InsertVideo(ctx context.Context, arg InsertVideoParams) error {
	_, err := q.db.Exec(ctx, insertVideo,
		arg.VideoID,
		arg.Title,
		arg.Description,
		arg.YearLaunched,
		arg.Duration,
		arg.Opened,
		arg.Published,
		arg.Rating,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateVideo = `-- name: UpdateVideo :execrows
UPDATE catalog.videos
SET title = $2,
    description = $3,
    year_launched = $4,
    duration = $5,
    opened = $6,
    published = $7,
    rating = $8,
    updated_at = $9
WHERE video_id = $1
`

// UpdateVideoParams 为 UpdateVideo 的参数。
type UpdateVideoParams struct {
	VideoID      uuid.UUID          `json:"video_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	YearLaunched int32              `json:"year_launched"`
	Duration     float64            `json:"duration"`
	Opened       bool               `json:"opened"`
	Published    bool               `json:"published"`
	Rating       string             `json:"rating"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVideo(ctx context.Context, arg UpdateVideoParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateVideo,
		arg.VideoID,
		arg.Title,
		arg.Description,
		arg.YearLaunched,
		arg.Duration,
		arg.Opened,
		arg.Published,
		arg.Rating,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getVideo = `-- name: GetVideo :one
SELECT video_id, title, description, year_launched, duration,
       opened, published, rating, created_at, updated_at
FROM catalog.videos
WHERE video_id = $1
`

func (q *Queries) GetVideo(ctx context.Context, videoID uuid.UUID) (CatalogVideo, error) {
	row := q.db.QueryRow(ctx, getVideo, videoID)
	var i CatalogVideo
	err := row.Scan(
		&i.VideoID,
		&i.Title,
		&i.Description,
		&i.YearLaunched,
		&i.Duration,
		&i.Opened,
		&i.Published,
		&i.Rating,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteVideo = `-- name: DeleteVideo :execrows
DELETE FROM catalog.videos
WHERE video_id = $1
`

func (q *Queries) DeleteVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteVideo, videoID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listVideoMedia = `-- name: ListVideoMedia :many
SELECT video_id, media_type, media_id, checksum, name, location, encoded_location, status
FROM catalog.video_media
WHERE video_id = $1
ORDER BY media_type
`

func (q *Queries) ListVideoMedia(ctx context.Context, videoID uuid.UUID) ([]CatalogVideoMedium, error) {
	rows, err := q.db.Query(ctx, listVideoMedia, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogVideoMedium
	for rows.Next() {
		var i CatalogVideoMedium
		if err := rows.Scan(
			&i.VideoID,
			&i.MediaType,
			&i.MediaID,
			&i.Checksum,
			&i.Name,
			&i.Location,
			&i.EncodedLocation,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteVideoMedia = `-- name: DeleteVideoMedia :exec
DELETE FROM catalog.video_media
WHERE video_id = $1
`

func (q *Queries) DeleteVideoMedia(ctx context.Context, videoID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteVideoMedia, videoID)
	return err
}

const upsertVideoMedia = `-- name: UpsertVideoMedia :exec
INSERT INTO catalog.video_media (
    video_id, media_type, media_id, checksum, name, location, encoded_location, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
ON CONFLICT (video_id, media_type) DO UPDATE
SET media_id = EXCLUDED.media_id,
    checksum = EXCLUDED.checksum,
    name = EXCLUDED.name,
    location = EXCLUDED.location,
    encoded_location = EXCLUDED.encoded_location,
    status = EXCLUDED.status
`

// UpsertVideoMediaParams 为 UpsertVideoMedia 的参数。
type UpsertVideoMediaParams struct {
	VideoID         uuid.UUID   `json:"video_id"`
	MediaType       string      `json:"media_type"`
	MediaID         string      `json:"media_id"`
	Checksum        string      `json:"checksum"`
	Name            string      `json:"name"`
	Location        string      `json:"location"`
	EncodedLocation pgtype.Text `json:"encoded_location"`
	Status          pgtype.Text `json:"status"`
}

func (q *Queries) UpsertVideoMedia(ctx context.Context, arg UpsertVideoMediaParams) error {
	_, err := q.db.Exec(ctx, upsertVideoMedia,
		arg.VideoID,
		arg.MediaType,
		arg.MediaID,
		arg.Checksum,
		arg.Name,
		arg.Location,
		arg.EncodedLocation,
		arg.Status,
	)
	return err
}

const searchVideos = `-- name: SearchVideos :many
SELECT v.video_id, v.title, v.description, v.created_at, v.updated_at
FROM catalog.videos v
WHERE ($1::text = '' OR v.title ILIKE '%' || $1::text || '%' OR v.description ILIKE '%' || $1::text || '%')
  AND (coalesce(cardinality($2::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_categories c
        WHERE c.video_id = v.video_id AND c.category_id = ANY($2::text[])))
  AND (coalesce(cardinality($3::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_genres g
        WHERE g.video_id = v.video_id AND g.genre_id = ANY($3::text[])))
  AND (coalesce(cardinality($4::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_cast_members m
        WHERE m.video_id = v.video_id AND m.cast_member_id = ANY($4::text[])))
ORDER BY
  CASE WHEN $5::text = 'title' AND $6::text = 'asc' THEN v.title END ASC,
  CASE WHEN $5::text = 'title' AND $6::text = 'desc' THEN v.title END DESC,
  CASE WHEN $5::text = 'created_at' AND $6::text = 'asc' THEN v.created_at END ASC,
  CASE WHEN $5::text = 'created_at' AND $6::text = 'desc' THEN v.created_at END DESC,
  CASE WHEN $5::text = 'updated_at' AND $6::text = 'asc' THEN v.updated_at END ASC,
  CASE WHEN $5::text = 'updated_at' AND $6::text = 'desc' THEN v.updated_at END DESC,
  CASE WHEN $5::text = 'year_launched' AND $6::text = 'asc' THEN v.year_launched END ASC,
  CASE WHEN $5::text = 'year_launched' AND $6::text = 'desc' THEN v.year_launched END DESC,
  CASE WHEN $5::text = 'duration' AND $6::text = 'asc' THEN v.duration END ASC,
  CASE WHEN $5::text = 'duration' AND $6::text = 'desc' THEN v.duration END DESC,
  v.video_id ASC
LIMIT $7 OFFSET $8
`

// SearchVideosParams 为 SearchVideos 的参数。
type SearchVideosParams struct {
	Terms         string   `json:"terms"`
	CategoryIds   []string `json:"category_ids"`
	GenreIds      []string `json:"genre_ids"`
	CastMemberIds []string `json:"cast_member_ids"`
	SortColumn    string   `json:"sort_column"`
	SortDirection string   `json:"sort_direction"`
	Limit         int32    `json:"limit"`
	Offset        int32    `json:"offset"`
}

// SearchVideosRow 为 SearchVideos 的结果行。
type SearchVideosRow struct {
	VideoID     uuid.UUID          `json:"video_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) SearchVideos(ctx context.Context, arg SearchVideosParams) ([]SearchVideosRow, error) {
	rows, err := q.db.Query(ctx, searchVideos,
		arg.Terms,
		arg.CategoryIds,
		arg.GenreIds,
		arg.CastMemberIds,
		arg.SortColumn,
		arg.SortDirection,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SearchVideosRow
	for rows.Next() {
		var i SearchVideosRow
		if err := rows.Scan(
			&i.VideoID,
			&i.Title,
			&i.Description,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countVideos = `-- name: CountVideos :one
SELECT count(*)
FROM catalog.videos v
WHERE ($1::text = '' OR v.title ILIKE '%' || $1::text || '%' OR v.description ILIKE '%' || $1::text || '%')
  AND (coalesce(cardinality($2::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_categories c
        WHERE c.video_id = v.video_id AND c.category_id = ANY($2::text[])))
  AND (coalesce(cardinality($3::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_genres g
        WHERE g.video_id = v.video_id AND g.genre_id = ANY($3::text[])))
  AND (coalesce(cardinality($4::text[]), 0) = 0 OR EXISTS (
        SELECT 1 FROM catalog.videos_cast_members m
        WHERE m.video_id = v.video_id AND m.cast_member_id = ANY($4::text[])))
`

// CountVideosParams 为 CountVideos 的参数。
type CountVideosParams struct {
	Terms         string   `json:"terms"`
	CategoryIds   []string `json:"category_ids"`
	GenreIds      []string `json:"genre_ids"`
	CastMemberIds []string `json:"cast_member_ids"`
}

func (q *Queries) CountVideos(ctx context.Context, arg CountVideosParams) (int64, error) {
	row := q.db.QueryRow(ctx, countVideos,
		arg.Terms,
		arg.CategoryIds,
		arg.GenreIds,
		arg.CastMemberIds,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}
