package response

import "fmt"

// AppError 带业务码的错误，供处理层日志与响应共用
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 把底层错误包装为业务错误，message 为空时取业务码默认文案
func WrapError(code int, message string, err error) *AppError {
	if message == "" {
		message = CodeText(code)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeText 业务码默认文案
func CodeText(code int) string {
	switch code {
	case CodeOK:
		return "success"
	case CodeBadRequest:
		return "bad request"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeForbidden:
		return "forbidden"
	case CodeNotFound:
		return "not found"
	case CodeConflict:
		return "conflict"
	case CodeTooManyRequests:
		return "too many requests"
	default:
		return "internal error"
	}
}
