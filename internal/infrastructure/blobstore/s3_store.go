package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// deleteBatchSize 为 DeleteObjects 单次允许的最大对象数。
const deleteBatchSize = 1000

// S3Store 基于 S3 兼容存储实现 Store。
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	log    *log.Helper
}

// NewS3Store 加载 AWS 配置并构造 S3Store。
// Endpoint 非空时指向 MinIO 等兼容实现。
func NewS3Store(ctx context.Context, cfg Config, logger log.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blobstore: s3 bucket is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("blobstore: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return NewS3StoreWithClient(client, cfg.Bucket, cfg.KeyPrefix, logger), nil
}

// NewS3StoreWithClient 使用已有客户端构造 S3Store。
func NewS3StoreWithClient(client *s3.Client, bucket, prefix string, logger log.Logger) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    log.NewHelper(logger),
	}
}

// Put 上传对象。
func (s *S3Store) Put(ctx context.Context, obj Object) error {
	key := joinKey(s.prefix, obj.Key)
	ctx, span := tracer.Start(ctx, "blobstore.s3.Put", trace.WithAttributes(attribute.String("blob.key", key)))
	defer span.End()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(obj.Content),
		ContentLength: aws.Int64(int64(len(obj.Content))),
		ContentType:   aws.String(contentType),
		Metadata:      obj.Metadata,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "put object")
		return fmt.Errorf("blobstore: put %s: %w", key, err)
	}
	s.log.WithContext(ctx).Debugf("blob stored: bucket=%s key=%s size=%d", s.bucket, key, len(obj.Content))
	return nil
}

// Get 下载对象；不存在时返回 ErrNotFound。
func (s *S3Store) Get(ctx context.Context, key string) (*Object, error) {
	fullKey := joinKey(s.prefix, key)
	ctx, span := tracer.Start(ctx, "blobstore.s3.Get", trace.WithAttributes(attribute.String("blob.key", fullKey)))
	defer span.End()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "get object")
		return nil, fmt.Errorf("blobstore: get %s: %w", fullKey, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("blobstore: read %s: %w", fullKey, err)
	}
	return &Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Content:     content,
		Metadata:    out.Metadata,
	}, nil
}

// DeletePrefix 分页列出前缀下的对象并批量删除。
func (s *S3Store) DeletePrefix(ctx context.Context, prefix string) error {
	fullPrefix := joinKey(s.prefix, prefix)
	ctx, span := tracer.Start(ctx, "blobstore.s3.DeletePrefix", trace.WithAttributes(attribute.String("blob.prefix", fullPrefix)))
	defer span.End()

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	var batch []types.ObjectIdentifier
	deleted := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: batch, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return err
		}
		if len(out.Errors) > 0 {
			first := out.Errors[0]
			return fmt.Errorf("delete %s: %s", aws.ToString(first.Key), aws.ToString(first.Message))
		}
		deleted += len(batch)
		batch = batch[:0]
		return nil
	}

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "list objects")
			return fmt.Errorf("blobstore: list %s: %w", fullPrefix, err)
		}
		for _, obj := range page.Contents {
			batch = append(batch, types.ObjectIdentifier{Key: obj.Key})
			if len(batch) == deleteBatchSize {
				if err := flush(); err != nil {
					span.RecordError(err)
					return fmt.Errorf("blobstore: delete prefix %s: %w", fullPrefix, err)
				}
			}
		}
	}
	if err := flush(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete objects")
		return fmt.Errorf("blobstore: delete prefix %s: %w", fullPrefix, err)
	}

	s.log.WithContext(ctx).Debugf("blob prefix cleared: bucket=%s prefix=%s count=%d", s.bucket, fullPrefix, deleted)
	return nil
}

var _ Store = (*S3Store)(nil)
