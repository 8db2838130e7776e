package httpserver

import (
	stderrors "errors"
	nethttp "net/http"

	"github.com/bionicotaku/lingo-services-media/internal/models/validation"

	"github.com/go-kratos/kratos/v2/transport/http"
)

// notificationBody 是聚合校验失败时的响应体。
type notificationBody struct {
	Message string             `json:"message"`
	Errors  []validation.Error `json:"errors"`
}

// EncodeError 将校验失败映射为 422 与错误明细列表，其余错误交由 Kratos 默认编码。
func EncodeError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	var notification *validation.NotificationError
	if !stderrors.As(err, &notification) {
		http.DefaultErrorEncoder(w, r, err)
		return
	}

	items := notification.Errors
	if items == nil {
		items = []validation.Error{}
	}
	codec, _ := http.CodecForRequest(r, "Accept")
	body, marshalErr := codec.Marshal(notificationBody{Message: notification.Message, Errors: items})
	if marshalErr != nil {
		w.WriteHeader(nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	w.WriteHeader(nethttp.StatusUnprocessableEntity)
	_, _ = w.Write(body)
}
