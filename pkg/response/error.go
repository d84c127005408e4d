package response

import (
	"errors"
	"net/http"
)

// InternalMsg 内部错误统一对外文案
const InternalMsg = "服务器内部错误"

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Validation(msg string) *BizError { return NewError(http.StatusBadRequest, msg) }

func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }

func Forbidden(msg string) *BizError { return NewError(http.StatusForbidden, msg) }

func NotFound(msg string) *BizError { return NewError(http.StatusNotFound, msg) }

func Conflict(msg string) *BizError { return NewError(http.StatusConflict, msg) }

func TooMany(msg string) *BizError { return NewError(http.StatusTooManyRequests, msg) }

// CodeOf 取业务错误码，非业务错误视为 500
func CodeOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return http.StatusInternalServerError
}
