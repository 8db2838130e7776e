package catalogdb

import (
	"context"

	"github.com/google/uuid"
)

const existingCategoryIDs = `-- name: ExistingCategoryIDs :many
SELECT category_id
FROM catalog.categories
WHERE category_id = ANY($1::text[])
ORDER BY category_id
`

func (q *Queries) ExistingCategoryIDs(ctx context.Context, ids []string) ([]string, error) {
	return q.collectIDs(ctx, existingCategoryIDs, ids)
}

const existingGenreIDs = `-- name: ExistingGenreIDs :many
SELECT genre_id
FROM catalog.genres
WHERE genre_id = ANY($1::text[])
ORDER BY genre_id
`

func (q *Queries) ExistingGenreIDs(ctx context.Context, ids []string) ([]string, error) {
	return q.collectIDs(ctx, existingGenreIDs, ids)
}

const existingCastMemberIDs = `-- name: ExistingCastMemberIDs :many
SELECT cast_member_id
FROM catalog.cast_members
WHERE cast_member_id = ANY($1::text[])
ORDER BY cast_member_id
`

func (q *Queries) ExistingCastMemberIDs(ctx context.Context, ids []string) ([]string, error) {
	return q.collectIDs(ctx, existingCastMemberIDs, ids)
}

const listVideoCategoryIDs = `-- name: ListVideoCategoryIDs :many
SELECT category_id
FROM catalog.videos_categories
WHERE video_id = $1
ORDER BY category_id
`

func (q *Queries) ListVideoCategoryIDs(ctx context.Context, videoID uuid.UUID) ([]string, error) {
	return q.collectIDs(ctx, listVideoCategoryIDs, videoID)
}

const listVideoGenreIDs = `-- name: ListVideoGenreIDs :many
SELECT genre_id
FROM catalog.videos_genres
WHERE video_id = $1
ORDER BY genre_id
`

func (q *Queries) ListVideoGenreIDs(ctx context.Context, videoID uuid.UUID) ([]string, error) {
	return q.collectIDs(ctx, listVideoGenreIDs, videoID)
}

const listVideoCastMemberIDs = `-- name: ListVideoCastMemberIDs :many
SELECT cast_member_id
FROM catalog.videos_cast_members
WHERE video_id = $1
ORDER BY cast_member_id
`

func (q *Queries) ListVideoCastMemberIDs(ctx context.Context, videoID uuid.UUID) ([]string, error) {
	return q.collectIDs(ctx, listVideoCastMemberIDs, videoID)
}

const deleteVideoCategories = `-- name: DeleteVideoCategories :exec
DELETE FROM catalog.videos_categories WHERE video_id = $1
`

func (q *Queries) DeleteVideoCategories(ctx context.Context, videoID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteVideoCategories, videoID)
	return err
}

const deleteVideoGenres = `-- name: DeleteVideoGenres :exec
DELETE FROM catalog.videos_genres WHERE video_id = $1
`

func (q *Queries) DeleteVideoGenres(ctx context.Context, videoID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteVideoGenres, videoID)
	return err
}

const deleteVideoCastMembers = `-- name: DeleteVideoCastMembers :exec
DELETE FROM catalog.videos_cast_members WHERE video_id = $1
`

func (q *Queries) DeleteVideoCastMembers(ctx context.Context, videoID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteVideoCastMembers, videoID)
	return err
}

const insertVideoCategories = `-- name: InsertVideoCategories :exec
INSERT INTO catalog.videos_categories (video_id, category_id)
SELECT $1, unnest($2::text[])
ON CONFLICT DO NOTHING
`

// InsertVideoIDsParams 为关联表批量写入的参数。
type InsertVideoIDsParams struct {
	VideoID uuid.UUID `json:"video_id"`
	IDs     []string  `json:"ids"`
}

func (q *Queries) InsertVideoCategories(ctx context.Context, arg InsertVideoIDsParams) error {
	_, err := q.db.Exec(ctx, insertVideoCategories, arg.VideoID, arg.IDs)
	return err
}

const insertVideoGenres = `-- name: InsertVideoGenres :exec
INSERT INTO catalog.videos_genres (video_id, genre_id)
SELECT $1, unnest($2::text[])
ON CONFLICT DO NOTHING
`

func (q *Queries) InsertVideoGenres(ctx context.Context, arg InsertVideoIDsParams) error {
	_, err := q.db.Exec(ctx, insertVideoGenres, arg.VideoID, arg.IDs)
	return err
}

const insertVideoCastMembers = `-- name: InsertVideoCastMembers :exec
INSERT INTO catalog.videos_cast_members (video_id, cast_member_id)
SELECT $1, unnest($2::text[])
ON CONFLICT DO NOTHING
`

func (q *Queries) InsertVideoCastMembers(ctx context.Context, arg InsertVideoIDsParams) error {
	_, err := q.db.Exec(ctx, insertVideoCastMembers, arg.VideoID, arg.IDs)
	return err
}

func (q *Queries) collectIDs(ctx context.Context, query string, arg interface{}) ([]string, error) {
	rows, err := q.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
