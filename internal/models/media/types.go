// Package media 定义视频聚合引用的媒体资产值对象：静态图片媒体与带转码状态机的音视频媒体。
package media

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Type 标识视频聚合上的媒体槽位。
type Type string

// 媒体槽位常量定义
const (
	TypeVideo         Type = "VIDEO"          // 正片
	TypeTrailer       Type = "TRAILER"        // 预告片
	TypeBanner        Type = "BANNER"         // 横幅图
	TypeThumbnail     Type = "THUMBNAIL"      // 缩略图
	TypeThumbnailHalf Type = "THUMBNAIL_HALF" // 半尺寸缩略图
)

// Types 按存储顺序列出全部槽位。
var Types = []Type{TypeVideo, TypeTrailer, TypeBanner, TypeThumbnail, TypeThumbnailHalf}

// ParseType 大小写不敏感地解析槽位类型。
func ParseType(raw string) (Type, bool) {
	candidate := Type(strings.ToUpper(strings.TrimSpace(raw)))
	for _, t := range Types {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

// IsAudioVideo 判断槽位是否承载音视频（具备转码状态）。
func (t Type) IsAudioVideo() bool {
	return t == TypeVideo || t == TypeTrailer
}

// Status 表示音视频媒体的转码状态。
type Status string

// 转码状态常量定义
const (
	StatusPending    Status = "PENDING"    // 已存储，等待转码
	StatusProcessing Status = "PROCESSING" // 转码中
	StatusCompleted  Status = "COMPLETED"  // 转码完成，已记录产物路径
)

// ParseStatus 大小写不敏感地解析转码状态。
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, true
	case StatusProcessing:
		return StatusProcessing, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Resource 表示一份待存储的原始二进制内容。
type Resource struct {
	Checksum    string
	Content     []byte
	ContentType string
	Name        string
}

// NewResource 构造 Resource，并以内容的 SHA-256 十六进制摘要作为校验和。
func NewResource(content []byte, contentType, name string) Resource {
	sum := sha256.Sum256(content)
	return Resource{
		Checksum:    hex.EncodeToString(sum[:]),
		Content:     content,
		ContentType: contentType,
		Name:        name,
	}
}

// VideoResource 将原始资源与目标槽位绑定。
type VideoResource struct {
	Resource Resource
	Type     Type
}
