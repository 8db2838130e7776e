// Package video 定义视频聚合根及其值对象（标识、分级、外键集合、领域事件）。
//
// 聚合根通过组合 AggregateRoot 获得 ID 与事件缓冲能力；
// 所有字段均为私有，只能经由 New/Update/Update*Media 等方法修改，持久化层通过 Snapshot/Restore 读写。
package video

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID 表示视频 ID 不是合法的 UUID。
var ErrInvalidID = errors.New("video: invalid id")

// ID 是视频聚合的标识（小写 UUID 字符串）。
type ID string

// NewID 生成新的视频 ID。
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID 校验并规范化视频 ID。
func ParseID(raw string) (ID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidID
	}
	return ID(parsed.String()), nil
}

func (id ID) String() string {
	return string(id)
}

// UUID 返回 uuid.UUID 形式，非法时返回 uuid.Nil。
func (id ID) UUID() uuid.UUID {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

// CategoryID 为分类聚合的不透明标识。
type CategoryID string

// GenreID 为流派聚合的不透明标识。
type GenreID string

// CastMemberID 为演职人员聚合的不透明标识。
type CastMemberID string

// IDSet 是按值去重的标识集合，零值即空集合。
type IDSet[T ~string] struct {
	items map[T]struct{}
}

// NewIDSet 由切片构造集合，忽略空白标识。
func NewIDSet[T ~string](ids ...T) IDSet[T] {
	set := IDSet[T]{}
	for _, id := range ids {
		trimmed := T(strings.TrimSpace(string(id)))
		if trimmed == "" {
			continue
		}
		if set.items == nil {
			set.items = make(map[T]struct{}, len(ids))
		}
		set.items[trimmed] = struct{}{}
	}
	return set
}

// Len 返回集合大小。
func (s IDSet[T]) Len() int {
	return len(s.items)
}

// IsEmpty 判断集合是否为空。
func (s IDSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Contains 判断是否包含指定标识。
func (s IDSet[T]) Contains(id T) bool {
	_, ok := s.items[id]
	return ok
}

// Values 返回排序后的标识切片，空集合返回非 nil 的空切片。
func (s IDSet[T]) Values() []T {
	out := make([]T, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Strings 返回排序后的字符串切片。
func (s IDSet[T]) Strings() []string {
	values := s.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
