package controllers

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"github.com/bionicotaku/lingo-services-media/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-media/internal/models/vo"
	"github.com/bionicotaku/lingo-services-media/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// ReasonMalformedRequest 表示请求体或参数无法解析。
const ReasonMalformedRequest = "ERROR_REASON_MALFORMED_REQUEST"

// Kratos operation 名称，供中间件 selector 与日志使用。
const (
	OperationCreateVideo       = "/media.v1.VideoService/CreateVideo"
	OperationUpdateVideo       = "/media.v1.VideoService/UpdateVideo"
	OperationGetVideo          = "/media.v1.VideoService/GetVideo"
	OperationListVideos        = "/media.v1.VideoService/ListVideos"
	OperationDeleteVideo       = "/media.v1.VideoService/DeleteVideo"
	OperationGetMedia          = "/media.v1.VideoService/GetMedia"
	OperationUpdateMediaStatus = "/media.v1.VideoService/UpdateMediaStatus"
)

// VideoHandler 暴露视频目录的 HTTP 接口。
type VideoHandler struct {
	*BaseHandler
	creator  services.CreateVideoUsecase
	updater  services.UpdateVideoUsecase
	queries  services.VideoQueryUsecase
	statuses services.MediaStatusUsecase
	maxBytes int64
}

// NewVideoHandler 构造 VideoHandler。
func NewVideoHandler(
	creator services.CreateVideoUsecase,
	updater services.UpdateVideoUsecase,
	queries services.VideoQueryUsecase,
	statuses services.MediaStatusUsecase,
	limits UploadLimits,
	base *BaseHandler,
) *VideoHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	maxBytes := limits.MaxBytes
	if maxBytes <= 0 {
		maxBytes = fallbackMaxUploadBytes
	}
	return &VideoHandler{
		BaseHandler: base,
		creator:     creator,
		updater:     updater,
		queries:     queries,
		statuses:    statuses,
		maxBytes:    maxBytes,
	}
}

// Register 在 Kratos HTTP Server 上挂载路由。
func (h *VideoHandler) Register(srv *khttp.Server) {
	r := srv.Route("/")
	r.POST("/v1/videos", h.CreateVideo)
	r.GET("/v1/videos", h.ListVideos)
	r.GET("/v1/videos/{id}", h.GetVideo)
	r.PUT("/v1/videos/{id}", h.UpdateVideo)
	r.DELETE("/v1/videos/{id}", h.DeleteVideo)
	r.GET("/v1/videos/{id}/medias/{type}", h.GetMedia)
	r.POST("/v1/videos/{id}/medias/status", h.UpdateMediaStatus)
}

// invoke 经由 Kratos 中间件链执行 fn，并注入请求 Metadata 与超时。
func (h *VideoHandler) invoke(ctx khttp.Context, operation string, kind HandlerType, req any, fn func(context.Context, any) (any, error)) (any, error) {
	khttp.SetOperation(ctx, operation)
	handler := ctx.Middleware(func(c context.Context, in any) (any, error) {
		meta := h.ExtractMetadata(c)
		timeoutCtx, cancel := h.WithTimeout(c, kind)
		defer cancel()
		return fn(InjectHandlerMetadata(timeoutCtx, meta), in)
	})
	return handler(ctx, req)
}

// CreateVideo 处理 POST /v1/videos。
func (h *VideoHandler) CreateVideo(ctx khttp.Context) error {
	input, err := dto.ParseVideoInput(ctx.Request(), h.maxBytes)
	if err != nil {
		return malformed(err)
	}
	out, err := h.invoke(ctx, OperationCreateVideo, HandlerTypeCommand, &input, func(c context.Context, req any) (any, error) {
		return h.creator.CreateVideo(c, services.CreateVideoInput{VideoInput: *req.(*services.VideoInput)})
	})
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusCreated, out)
}

// UpdateVideo 处理 PUT /v1/videos/{id}。
func (h *VideoHandler) UpdateVideo(ctx khttp.Context) error {
	videoID := ctx.Vars().Get("id")
	input, err := dto.ParseVideoInput(ctx.Request(), h.maxBytes)
	if err != nil {
		return malformed(err)
	}
	out, err := h.invoke(ctx, OperationUpdateVideo, HandlerTypeCommand, &input, func(c context.Context, req any) (any, error) {
		return h.updater.UpdateVideo(c, services.UpdateVideoInput{VideoID: videoID, VideoInput: *req.(*services.VideoInput)})
	})
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

// GetVideo 处理 GET /v1/videos/{id}。
func (h *VideoHandler) GetVideo(ctx khttp.Context) error {
	videoID := ctx.Vars().Get("id")
	out, err := h.invoke(ctx, OperationGetVideo, HandlerTypeQuery, videoID, func(c context.Context, req any) (any, error) {
		return h.queries.GetVideo(c, req.(string))
	})
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

// ListVideos 处理 GET /v1/videos。
func (h *VideoHandler) ListVideos(ctx khttp.Context) error {
	var req dto.ListVideosRequest
	if err := ctx.BindQuery(&req); err != nil {
		return malformed(err)
	}
	out, err := h.invoke(ctx, OperationListVideos, HandlerTypeQuery, &req, func(c context.Context, in any) (any, error) {
		return h.queries.ListVideos(c, in.(*dto.ListVideosRequest).ToInput())
	})
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

// DeleteVideo 处理 DELETE /v1/videos/{id}，视频不存在时同样返回 204。
func (h *VideoHandler) DeleteVideo(ctx khttp.Context) error {
	videoID := ctx.Vars().Get("id")
	_, err := h.invoke(ctx, OperationDeleteVideo, HandlerTypeCommand, videoID, func(c context.Context, req any) (any, error) {
		return nil, h.queries.DeleteVideo(c, req.(string))
	})
	if err != nil {
		return err
	}
	ctx.Response().WriteHeader(http.StatusNoContent)
	return nil
}

// GetMedia 处理 GET /v1/videos/{id}/medias/{type}，直接返回原始二进制。
func (h *VideoHandler) GetMedia(ctx khttp.Context) error {
	videoID := ctx.Vars().Get("id")
	mediaType := ctx.Vars().Get("type")
	out, err := h.invoke(ctx, OperationGetMedia, HandlerTypeQuery, videoID, func(c context.Context, req any) (any, error) {
		return h.queries.GetMedia(c, req.(string), mediaType)
	})
	if err != nil {
		return err
	}
	content := out.(*vo.MediaContent)
	if content.Name != "" {
		ctx.Response().Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": content.Name}))
	}
	contentType := content.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return ctx.Blob(http.StatusOK, contentType, content.Content)
}

// UpdateMediaStatus 处理转码流水线的 HTTP 回调。
func (h *VideoHandler) UpdateMediaStatus(ctx khttp.Context) error {
	var req dto.MediaStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return malformed(err)
	}
	input := req.ToInput(ctx.Vars().Get("id"))
	_, err := h.invoke(ctx, OperationUpdateMediaStatus, HandlerTypeCommand, &input, func(c context.Context, in any) (any, error) {
		return nil, h.statuses.UpdateStatus(c, *in.(*services.UpdateMediaStatusInput))
	})
	if err != nil {
		return err
	}
	ctx.Response().WriteHeader(http.StatusNoContent)
	return nil
}

func malformed(err error) error {
	return errors.BadRequest(ReasonMalformedRequest, fmt.Sprintf("invalid request: %v", err)).WithCause(err)
}
