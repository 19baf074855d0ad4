package profile

import apperrors "github.com/matzehuels/ghinsight/pkg/errors"

// Result is the outcome of a facade operation: Data on success, or a coded
// error on failure.
type Result[T any] struct {
	Data T
	Err  *apperrors.Error
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Message returns the user-facing failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.UserMessage()
}

// Code returns the failure code, or "" on success.
func (r Result[T]) Code() apperrors.Code {
	if r.Err == nil {
		return ""
	}
	return r.Err.Code
}

func success[T any](v T) Result[T] { return Result[T]{Data: v} }

func failure[T any](err *apperrors.Error) Result[T] { return Result[T]{Err: err} }
