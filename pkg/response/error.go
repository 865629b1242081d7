package response

import "net/http"

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

func BadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *BizError    { return NewError(http.StatusForbidden, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Conflict(msg string) *BizError     { return NewError(http.StatusConflict, msg) }
