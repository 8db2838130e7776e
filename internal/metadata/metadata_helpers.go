// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"strings"
)

// HandlerMetadata 描述从请求头或上游链路解析出的上下文信息。
type HandlerMetadata struct {
	IdempotencyKey string
	RequestID      string
	IfMatch        string
	IfNoneMatch    string
	UserAgent      string
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m.IdempotencyKey == "" &&
		m.RequestID == "" &&
		m.IfMatch == "" &&
		m.IfNoneMatch == "" &&
		m.UserAgent == ""
}

// CorrelationID 返回用于日志关联的标识，优先使用请求 ID。
func (m HandlerMetadata) CorrelationID() string {
	if id := strings.TrimSpace(m.RequestID); id != "" {
		return id
	}
	return strings.TrimSpace(m.IdempotencyKey)
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}
