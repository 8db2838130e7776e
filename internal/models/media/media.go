package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrRequiredField 表示构造媒体时缺失必填字段。
var ErrRequiredField = errors.New("media: required field missing")

// mediaNamespace 为基于 checksum+name 派生媒体 ID 的 UUID 命名空间。
var mediaNamespace = uuid.MustParse("6f1c2b7e-5d1a-4b8e-9a53-0d2f5c7a9e41")

// DeriveID 根据 checksum 与展示名派生稳定的媒体 ID。
func DeriveID(checksum, name string) string {
	return uuid.NewSHA1(mediaNamespace, []byte(checksum+name)).String()
}

func requireFields(checksum, name, location string) error {
	switch {
	case strings.TrimSpace(checksum) == "":
		return fmt.Errorf("%w: checksum", ErrRequiredField)
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name", ErrRequiredField)
	case strings.TrimSpace(location) == "":
		return fmt.Errorf("%w: location", ErrRequiredField)
	}
	return nil
}

// ImageMedia 表示静态图片媒体，不可变。
type ImageMedia struct {
	ID       string
	Checksum string
	Name     string
	Location string
}

// NewImage 构造 ImageMedia。
func NewImage(checksum, name, location string) (ImageMedia, error) {
	if err := requireFields(checksum, name, location); err != nil {
		return ImageMedia{}, err
	}
	return ImageMedia{
		ID:       DeriveID(checksum, name),
		Checksum: checksum,
		Name:     name,
		Location: location,
	}, nil
}

// Equal 仅比较 checksum 与存储位置，忽略展示名。
func (m ImageMedia) Equal(other ImageMedia) bool {
	return m.Checksum == other.Checksum && m.Location == other.Location
}

// AudioVideoMedia 表示带转码状态的音视频媒体。
type AudioVideoMedia struct {
	ID              string
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          Status
}

// NewAudioVideo 构造处于 PENDING 状态的音视频媒体。
func NewAudioVideo(checksum, name, rawLocation string) (AudioVideoMedia, error) {
	if err := requireFields(checksum, name, rawLocation); err != nil {
		return AudioVideoMedia{}, err
	}
	return AudioVideoMedia{
		ID:          DeriveID(checksum, name),
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      StatusPending,
	}, nil
}

// Processing 返回状态为 PROCESSING 的副本。
func (m AudioVideoMedia) Processing() AudioVideoMedia {
	m.Status = StatusProcessing
	return m
}

// Completed 返回状态为 COMPLETED 且记录转码产物路径的副本。
func (m AudioVideoMedia) Completed(encodedPath string) AudioVideoMedia {
	m.Status = StatusCompleted
	m.EncodedLocation = encodedPath
	return m
}

// Equal 仅比较 checksum 与原始存储位置。
func (m AudioVideoMedia) Equal(other AudioVideoMedia) bool {
	return m.Checksum == other.Checksum && m.RawLocation == other.RawLocation
}

// Slot 是媒体槽位的显式可选值，零值表示未上传。
type Slot[T any] struct {
	value T
	ok    bool
}

// Some 构造已填充的槽位。
func Some[T any](value T) Slot[T] {
	return Slot[T]{value: value, ok: true}
}

// None 构造空槽位。
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Get 返回槽位内容以及是否存在。
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.ok
}

// IsPresent 判断槽位是否已填充。
func (s Slot[T]) IsPresent() bool {
	return s.ok
}

// Ptr 返回内容指针，空槽位返回 nil。
func (s Slot[T]) Ptr() *T {
	if !s.ok {
		return nil
	}
	v := s.value
	return &v
}

// FromPtr 由可空指针构造槽位。
func FromPtr[T any](ptr *T) Slot[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}
