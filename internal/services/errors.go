package services

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// 错误原因码，对应 HTTP 错误响应中的 reason 字段。
const (
	ReasonVideoNotFound      = "ERROR_REASON_VIDEO_NOT_FOUND"
	ReasonVideoInvalid       = "ERROR_REASON_VIDEO_INVALID"
	ReasonVideoCreateFailed  = "ERROR_REASON_VIDEO_CREATE_FAILED"
	ReasonVideoUpdateFailed  = "ERROR_REASON_VIDEO_UPDATE_FAILED"
	ReasonVideoDeleteFailed  = "ERROR_REASON_VIDEO_DELETE_FAILED"
	ReasonMediaNotFound      = "ERROR_REASON_MEDIA_NOT_FOUND"
	ReasonMediaStatusInvalid = "ERROR_REASON_MEDIA_STATUS_INVALID"
	ReasonQueryTimeout       = "ERROR_REASON_QUERY_TIMEOUT"
	ReasonQueryFailed        = "ERROR_REASON_QUERY_VIDEO_FAILED"
)

// 聚合校验失败时的汇总消息。
const (
	MsgCreateAggregateFailed = "Could not create Aggregate Video"
	MsgUpdateAggregateFailed = "Could not update Aggregate Video"
)

// NewVideoNotFound 构造携带实体类型与 ID 的 NotFound 错误。
func NewVideoNotFound(videoID string) *errors.Error {
	return errors.NotFound(ReasonVideoNotFound, fmt.Sprintf("Video with ID %s was not found", videoID)).
		WithMetadata(map[string]string{"entity": "Video", "id": videoID})
}

func internalVideoError(reason, action, videoID string, cause error) *errors.Error {
	return errors.InternalServer(reason, fmt.Sprintf("An error on %s video was observed [videoId:%s]", action, videoID)).
		WithMetadata(map[string]string{"video_id": videoID}).
		WithCause(fmt.Errorf("%s video %s: %w", action, videoID, cause))
}
