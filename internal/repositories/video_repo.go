// Package repositories 实现数据访问层，封装 catalogdb 查询方法与媒体对象存储。
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories/catalogdb"
	"github.com/bionicotaku/lingo-services-media/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVideoNotFound 表示请求的视频不存在。
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository 将视频聚合持久化到 catalog schema 的多张表中。
// 写入按"主表 → 媒体槽位 → 关联表"顺序执行，调用方负责提供事务。
type VideoRepository struct {
	db      *pgxpool.Pool
	queries *catalogdb.Queries
	log     *log.Helper
}

// NewVideoRepository 构造 VideoRepository 实例（供 Wire 注入使用）。
func NewVideoRepository(db *pgxpool.Pool, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:      db,
		queries: catalogdb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *VideoRepository) queriesFor(sess txmanager.Session) *catalogdb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Create 插入新视频及其媒体槽位、关联 ID。
func (r *VideoRepository) Create(ctx context.Context, sess txmanager.Session, v *video.Video) error {
	record := mappers.RecordFromSnapshot(v.Snapshot())
	queries := r.queriesFor(sess)

	if err := queries.InsertVideo(ctx, mappers.BuildInsertVideoParams(record.Video)); err != nil {
		r.log.WithContext(ctx).Errorf("create video failed: video_id=%s err=%v", v.ID(), err)
		return fmt.Errorf("create video: %w", err)
	}
	if err := r.writeChildren(ctx, queries, record); err != nil {
		r.log.WithContext(ctx).Errorf("create video children failed: video_id=%s err=%v", v.ID(), err)
		return fmt.Errorf("create video: %w", err)
	}

	r.log.WithContext(ctx).Debugf("video created: video_id=%s media=%d", v.ID(), len(record.Media))
	return nil
}

// Update 覆盖写入已有视频；媒体槽位与关联 ID 整体替换。
func (r *VideoRepository) Update(ctx context.Context, sess txmanager.Session, v *video.Video) error {
	record := mappers.RecordFromSnapshot(v.Snapshot())
	queries := r.queriesFor(sess)

	rows, err := queries.UpdateVideo(ctx, mappers.BuildUpdateVideoParams(record.Video))
	if err != nil {
		r.log.WithContext(ctx).Errorf("update video failed: video_id=%s err=%v", v.ID(), err)
		return fmt.Errorf("update video: %w", err)
	}
	if rows == 0 {
		return ErrVideoNotFound
	}

	videoID := record.Video.VideoID
	if err := queries.DeleteVideoMedia(ctx, videoID); err != nil {
		return fmt.Errorf("update video: clear media: %w", err)
	}
	if err := queries.DeleteVideoCategories(ctx, videoID); err != nil {
		return fmt.Errorf("update video: clear categories: %w", err)
	}
	if err := queries.DeleteVideoGenres(ctx, videoID); err != nil {
		return fmt.Errorf("update video: clear genres: %w", err)
	}
	if err := queries.DeleteVideoCastMembers(ctx, videoID); err != nil {
		return fmt.Errorf("update video: clear cast members: %w", err)
	}
	if err := r.writeChildren(ctx, queries, record); err != nil {
		r.log.WithContext(ctx).Errorf("update video children failed: video_id=%s err=%v", v.ID(), err)
		return fmt.Errorf("update video: %w", err)
	}

	r.log.WithContext(ctx).Debugf("video updated: video_id=%s media=%d", v.ID(), len(record.Media))
	return nil
}

func (r *VideoRepository) writeChildren(ctx context.Context, queries *catalogdb.Queries, record po.VideoRecord) error {
	for _, m := range record.Media {
		if err := queries.UpsertVideoMedia(ctx, mappers.BuildUpsertVideoMediaParams(m)); err != nil {
			return fmt.Errorf("upsert media %s: %w", m.MediaType, err)
		}
	}

	videoID := record.Video.VideoID
	if len(record.CategoryIDs) > 0 {
		if err := queries.InsertVideoCategories(ctx, catalogdb.InsertVideoIDsParams{VideoID: videoID, IDs: record.CategoryIDs}); err != nil {
			return fmt.Errorf("insert categories: %w", err)
		}
	}
	if len(record.GenreIDs) > 0 {
		if err := queries.InsertVideoGenres(ctx, catalogdb.InsertVideoIDsParams{VideoID: videoID, IDs: record.GenreIDs}); err != nil {
			return fmt.Errorf("insert genres: %w", err)
		}
	}
	if len(record.CastMemberIDs) > 0 {
		if err := queries.InsertVideoCastMembers(ctx, catalogdb.InsertVideoIDsParams{VideoID: videoID, IDs: record.CastMemberIDs}); err != nil {
			return fmt.Errorf("insert cast members: %w", err)
		}
	}
	return nil
}

// FindByID 读取完整聚合；不存在时返回 ErrVideoNotFound。
func (r *VideoRepository) FindByID(ctx context.Context, sess txmanager.Session, id video.ID) (*video.Video, error) {
	videoID := id.UUID()
	if videoID == uuid.Nil {
		return nil, ErrVideoNotFound
	}
	queries := r.queriesFor(sess)

	row, err := queries.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("get video failed: video_id=%s err=%v", id, err)
		return nil, fmt.Errorf("get video: %w", err)
	}

	record := po.VideoRecord{Video: mappers.VideoFromRow(row)}

	mediaRows, err := queries.ListVideoMedia(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("list video media: %w", err)
	}
	for _, m := range mediaRows {
		record.Media = append(record.Media, mappers.VideoMediaFromRow(m))
	}
	if record.CategoryIDs, err = queries.ListVideoCategoryIDs(ctx, videoID); err != nil {
		return nil, fmt.Errorf("list video categories: %w", err)
	}
	if record.GenreIDs, err = queries.ListVideoGenreIDs(ctx, videoID); err != nil {
		return nil, fmt.Errorf("list video genres: %w", err)
	}
	if record.CastMemberIDs, err = queries.ListVideoCastMemberIDs(ctx, videoID); err != nil {
		return nil, fmt.Errorf("list video cast members: %w", err)
	}

	return video.Restore(mappers.SnapshotFromRecord(record)), nil
}

// DeleteByID 删除视频；级联删除槽位与关联行，不存在时视为成功。
func (r *VideoRepository) DeleteByID(ctx context.Context, sess txmanager.Session, id video.ID) error {
	videoID := id.UUID()
	if videoID == uuid.Nil {
		return nil
	}
	rows, err := r.queriesFor(sess).DeleteVideo(ctx, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete video failed: video_id=%s err=%v", id, err)
		return fmt.Errorf("delete video: %w", err)
	}
	if rows == 0 {
		r.log.WithContext(ctx).Debugf("delete video: nothing to delete: video_id=%s", id)
	}
	return nil
}

// FindAll 按检索条件分页返回视频预览。
func (r *VideoRepository) FindAll(ctx context.Context, sess txmanager.Session, query po.VideoSearchQuery) (*po.VideoPage, error) {
	queries := r.queriesFor(sess)
	categories := nonNil(query.Categories)
	genres := nonNil(query.Genres)
	castMembers := nonNil(query.CastMembers)

	total, err := queries.CountVideos(ctx, catalogdb.CountVideosParams{
		Terms:         query.Terms,
		CategoryIds:   categories,
		GenreIds:      genres,
		CastMemberIds: castMembers,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("count videos failed: err=%v", err)
		return nil, fmt.Errorf("count videos: %w", err)
	}

	direction := "asc"
	if query.Direction == "desc" {
		direction = "desc"
	}
	rows, err := queries.SearchVideos(ctx, catalogdb.SearchVideosParams{
		Terms:         query.Terms,
		CategoryIds:   categories,
		GenreIds:      genres,
		CastMemberIds: castMembers,
		SortColumn:    mappers.SortColumn(query.Sort),
		SortDirection: direction,
		Limit:         query.PerPage,
		Offset:        query.Page * query.PerPage,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("search videos failed: err=%v", err)
		return nil, fmt.Errorf("search videos: %w", err)
	}

	page := &po.VideoPage{
		Page:    query.Page,
		PerPage: query.PerPage,
		Total:   total,
		Items:   make([]po.VideoPreview, 0, len(rows)),
	}
	for _, row := range rows {
		page.Items = append(page.Items, mappers.VideoPreviewFromRow(row))
	}
	return page, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
