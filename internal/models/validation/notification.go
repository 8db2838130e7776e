// Package validation 提供“收集全部错误”风格的校验累加器。
// 领域对象与用例在校验时向 Notification 追加错误，而不是遇错即返回，
// 以便调用方一次性拿到所有违规信息。
package validation

import "strings"

// Error 表示单条校验错误。
type Error struct {
	Message string `json:"message"`
}

// Notification 累积校验过程中产生的错误。零值可直接使用。
type Notification struct {
	errors []Error
}

// NewNotification 构造空的 Notification。
func NewNotification() *Notification {
	return &Notification{}
}

// Append 追加一条错误，返回自身便于链式调用。
func (n *Notification) Append(err Error) *Notification {
	n.errors = append(n.errors, err)
	return n
}

// AppendMessage 以消息文本追加一条错误。
func (n *Notification) AppendMessage(message string) *Notification {
	return n.Append(Error{Message: message})
}

// Merge 合并另一个 Notification 中的全部错误。
func (n *Notification) Merge(other *Notification) *Notification {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.errors...)
	return n
}

// HasErrors 判断是否存在错误。
func (n *Notification) HasErrors() bool {
	return n != nil && len(n.errors) > 0
}

// Errors 返回错误列表副本。
func (n *Notification) Errors() []Error {
	if n == nil || len(n.errors) == 0 {
		return nil
	}
	return append([]Error(nil), n.errors...)
}

// FirstError 返回第一条错误。
func (n *Notification) FirstError() (Error, bool) {
	if !n.HasErrors() {
		return Error{}, false
	}
	return n.errors[0], true
}

// NotificationError 是聚合后的校验失败，携带全部错误明细。
type NotificationError struct {
	Message string
	Errors  []Error
}

// NewNotificationError 由 Notification 构造聚合错误。
func NewNotificationError(message string, n *Notification) *NotificationError {
	return &NotificationError{Message: message, Errors: n.Errors()}
}

func (e *NotificationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Message)
	}
	return e.Message + ": " + strings.Join(msgs, "; ")
}

// Messages 返回全部错误消息。
func (e *NotificationError) Messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Message)
	}
	return msgs
}
