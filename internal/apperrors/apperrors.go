// Package apperrors 定义业务错误类型与 HTTP 状态映射。
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别
type Kind string

const (
	// InvalidArgument 请求参数错误（池类型、日期格式等）
	InvalidArgument Kind = "INVALID_ARGUMENT"
	// UpstreamError 上游接口错误（业务码非 20000、重试耗尽等）
	UpstreamError Kind = "UPSTREAM_ERROR"
	// DataFetchError 行情数据获取失败
	DataFetchError Kind = "DATA_FETCH_ERROR"
)

// Error 业务错误，携带翻译为响应所需的 HTTP 状态
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus 错误类别对应的 HTTP 状态码
func (e *Error) HTTPStatus() int {
	if e.Kind == InvalidArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// New 创建业务错误
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap 包装底层错误
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// As 从错误链中提取业务错误
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind 判断错误链中是否含指定类别的业务错误
func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}
