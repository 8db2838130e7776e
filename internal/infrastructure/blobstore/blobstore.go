// Package blobstore 提供媒体二进制的对象存储抽象，支持 S3 兼容存储与本地目录两种后端。
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"go.opentelemetry.io/otel"
)

// ErrNotFound 表示对象不存在。
var ErrNotFound = errors.New("blobstore: object not found")

// 支持的存储驱动。
const (
	DriverS3    = "s3"
	DriverLocal = "local"
)

// 对象元数据键。
const (
	MetaName     = "name"
	MetaChecksum = "checksum"
)

var tracer = otel.Tracer("lingo-services-media.blobstore")

// ProviderSet 暴露存储构造器。
var ProviderSet = wire.NewSet(NewStore)

// Config 描述存储后端。
type Config struct {
	Driver       string
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
	KeyPrefix    string
	LocalDir     string
	// AccessKeyID 与 SecretAccessKey 同时非空时使用静态凭证，否则走默认凭证链。
	AccessKeyID     string
	SecretAccessKey string
}

// Object 是一次读写的对象内容。
type Object struct {
	Key         string
	ContentType string
	Content     []byte
	Metadata    map[string]string
}

// Store 定义对象存储的最小能力。
type Store interface {
	Put(ctx context.Context, obj Object) error
	Get(ctx context.Context, key string) (*Object, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

// NewStore 按 Driver 构造具体存储。
func NewStore(ctx context.Context, cfg Config, logger log.Logger) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverS3:
		return NewS3Store(ctx, cfg, logger)
	case DriverLocal, "":
		return NewLocalStore(cfg.LocalDir, cfg.KeyPrefix, logger)
	default:
		return nil, fmt.Errorf("blobstore: unsupported driver %q", cfg.Driver)
	}
}

func joinKey(prefix, key string) string {
	key = strings.TrimLeft(key, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
