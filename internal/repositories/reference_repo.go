package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-media/internal/repositories/catalogdb"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

type existingIDsFunc func(q *catalogdb.Queries, ctx context.Context, ids []string) ([]string, error)

// referenceRepository 查询某类外部聚合的已存在 ID。
type referenceRepository struct {
	entity  string
	queries *catalogdb.Queries
	lookup  existingIDsFunc
	log     *log.Helper
}

// ExistsByIDs 返回 ids 中实际存在的子集；空输入不访问数据库。
func (r *referenceRepository) ExistsByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	found, err := r.lookup(r.queries, ctx, ids)
	if err != nil {
		r.log.WithContext(ctx).Errorf("lookup %s ids failed: count=%d err=%v", r.entity, len(ids), err)
		return nil, fmt.Errorf("lookup %s ids: %w", r.entity, err)
	}
	return found, nil
}

// CategoryRepository 查询 catalog.categories。
type CategoryRepository struct{ referenceRepository }

// NewCategoryRepository 构造 CategoryRepository。
func NewCategoryRepository(db *pgxpool.Pool, logger log.Logger) *CategoryRepository {
	return &CategoryRepository{referenceRepository{
		entity:  "category",
		queries: catalogdb.New(db),
		lookup:  (*catalogdb.Queries).ExistingCategoryIDs,
		log:     log.NewHelper(logger),
	}}
}

// GenreRepository 查询 catalog.genres。
type GenreRepository struct{ referenceRepository }

// NewGenreRepository 构造 GenreRepository。
func NewGenreRepository(db *pgxpool.Pool, logger log.Logger) *GenreRepository {
	return &GenreRepository{referenceRepository{
		entity:  "genre",
		queries: catalogdb.New(db),
		lookup:  (*catalogdb.Queries).ExistingGenreIDs,
		log:     log.NewHelper(logger),
	}}
}

// CastMemberRepository 查询 catalog.cast_members。
type CastMemberRepository struct{ referenceRepository }

// NewCastMemberRepository 构造 CastMemberRepository。
func NewCastMemberRepository(db *pgxpool.Pool, logger log.Logger) *CastMemberRepository {
	return &CastMemberRepository{referenceRepository{
		entity:  "cast member",
		queries: catalogdb.New(db),
		lookup:  (*catalogdb.Queries).ExistingCastMemberIDs,
		log:     log.NewHelper(logger),
	}}
}
