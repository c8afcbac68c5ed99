package apiclient

import (
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
)

// Result is the uniform {success, data} / {success: false, error} shape used
// by the portal's own JSON endpoints.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Success: true, Data: v}
}

// Fail converts err to a failed Result carrying a user-displayable message.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		Success: false,
		Error:   apperrors.UserMessage(err),
		Code:    string(apperrors.GetCode(err)),
	}
}

// ResultOf folds a (value, error) pair into a Result.
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}
