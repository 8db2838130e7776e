package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

const metaSuffix = ".meta.json"

type localMeta struct {
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// LocalStore 将对象写入本地目录，元数据保存在同名 .meta.json 旁路文件中。
type LocalStore struct {
	baseDir string
	prefix  string
	log     *log.Helper
}

// NewLocalStore 构造 LocalStore，并确保根目录存在。
func NewLocalStore(baseDir, prefix string, logger log.Logger) (*LocalStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("blobstore: local dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: create base dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir, prefix: prefix, log: log.NewHelper(logger)}, nil
}

func (s *LocalStore) path(key string) (string, error) {
	if strings.Trim(key, "/") == "" {
		return "", fmt.Errorf("blobstore: empty key")
	}
	full := filepath.Join(s.baseDir, filepath.FromSlash(joinKey(s.prefix, key)))
	rel, err := filepath.Rel(s.baseDir, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("blobstore: invalid key %q", key)
	}
	return full, nil
}

// Put 写入对象内容与元数据。
func (s *LocalStore) Put(ctx context.Context, obj Object) error {
	target, err := s.path(obj.Key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("blobstore: create dir: %w", err)
	}
	if err := os.WriteFile(target, obj.Content, 0o644); err != nil {
		return fmt.Errorf("blobstore: write %s: %w", obj.Key, err)
	}
	meta, err := json.Marshal(localMeta{ContentType: obj.ContentType, Metadata: obj.Metadata})
	if err != nil {
		return fmt.Errorf("blobstore: encode meta: %w", err)
	}
	if err := os.WriteFile(target+metaSuffix, meta, 0o644); err != nil {
		return fmt.Errorf("blobstore: write meta %s: %w", obj.Key, err)
	}
	s.log.WithContext(ctx).Debugf("blob stored: path=%s size=%d", target, len(obj.Content))
	return nil
}

// Get 读取对象；不存在时返回 ErrNotFound。
func (s *LocalStore) Get(_ context.Context, key string) (*Object, error) {
	target, err := s.path(key)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blobstore: read %s: %w", key, err)
	}
	obj := &Object{Key: key, Content: content}
	if raw, err := os.ReadFile(target + metaSuffix); err == nil {
		var meta localMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("blobstore: decode meta %s: %w", key, err)
		}
		obj.ContentType = meta.ContentType
		obj.Metadata = meta.Metadata
	}
	return obj, nil
}

// DeletePrefix 删除前缀对应的目录或文件；前缀不存在时视为成功。
func (s *LocalStore) DeletePrefix(ctx context.Context, prefix string) error {
	target, err := s.path(strings.TrimSuffix(prefix, "/"))
	if err != nil {
		return err
	}
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("blobstore: delete prefix %s: %w", prefix, err)
	}
	s.log.WithContext(ctx).Debugf("blob prefix cleared: path=%s", target)
	return nil
}

var _ Store = (*LocalStore)(nil)
