// Package po 定义面向持久化的数据对象（Persistent Objects），由 Repository 层使用。
// PO 对象映射数据库表结构，不直接暴露给上层业务逻辑。
//
// 视频聚合拆分在多张表中：catalog.videos 主表、catalog.video_media 媒体槽位表，
// 以及三张外键关联表；VideoRecord 将它们汇总为一次读取的结果。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Video 表示 catalog.videos 表的数据库实体。
type Video struct {
	VideoID     uuid.UUID // 主键
	Title       string    // 标题
	Description string    // 描述
	LaunchedAt  int32     // 上映年份，0 表示缺失
	Duration    float64   // 时长（秒）
	Opened      bool      // 是否公开放映
	Published   bool      // 是否已发布
	Rating      string    // 分级
	CreatedAt   time.Time // 创建时间
	UpdatedAt   time.Time // 最近更新时间
}

// VideoMedia 表示 catalog.video_media 表的一行，即一个媒体槽位。
// 主键为 (video_id, media_type)；图片槽位的 Status/EncodedLocation 为空。
type VideoMedia struct {
	VideoID         uuid.UUID
	MediaType       string  // VIDEO/TRAILER/BANNER/THUMBNAIL/THUMBNAIL_HALF
	MediaID         string  // checksum+name 派生的媒体 ID
	Checksum        string  // 内容 SHA-256
	Name            string  // 展示名
	Location        string  // 原始存储位置
	EncodedLocation *string // 转码产物路径
	Status          *string // 转码状态
}

// VideoRecord 汇总视频主表、媒体槽位与外键关联，供映射为领域聚合。
type VideoRecord struct {
	Video         Video
	Media         []VideoMedia
	CategoryIDs   []string
	GenreIDs      []string
	CastMemberIDs []string
}

// VideoPreview 表示列表查询返回的精简条目。
type VideoPreview struct {
	VideoID     uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VideoSearchQuery 描述列表查询条件。
type VideoSearchQuery struct {
	Page        int32
	PerPage     int32
	Terms       string
	Sort        string
	Direction   string
	Categories  []string
	Genres      []string
	CastMembers []string
}

// VideoPage 表示分页结果。
type VideoPage struct {
	Page    int32
	PerPage int32
	Total   int64
	Items   []VideoPreview
}
