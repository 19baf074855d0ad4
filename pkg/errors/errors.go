// Package errors provides structured error types for ghinsight.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - A fixed set of user-facing messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The taxonomy is deliberately small:
//   - INVALID_INPUT: rejected before any network call (e.g. empty username)
//   - NOT_FOUND: the GitHub user or resource does not exist
//   - RATE_LIMITED: GitHub reported zero remaining quota
//   - TIMEOUT: the final request attempt exceeded its deadline
//   - NETWORK_ERROR: any other transport or HTTP failure
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "empty query")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    fmt.Println(errors.UserMessage(err))
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", endpoint)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeTimeout      Code = "TIMEOUT"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
)

// User-facing messages, one per code.
const (
	MsgEmptyInput   = "Please enter a GitHub username"
	MsgUserNotFound = "User not found. Please check the username and try again."
	MsgRateLimit    = "GitHub API rate limit exceeded. Please try again in an hour."
	MsgTimeout      = "Request timed out. Please try again."
	MsgGeneric      = "Something went wrong. Please try again later."
)

var messages = map[Code]string{
	ErrCodeInvalidInput: MsgEmptyInput,
	ErrCodeNotFound:     MsgUserNotFound,
	ErrCodeRateLimited:  MsgRateLimit,
	ErrCodeTimeout:      MsgTimeout,
	ErrCodeNetwork:      MsgGeneric,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable detail (not shown to end users)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the fixed user-facing message for the error's code.
func (e *Error) UserMessage() string {
	return MessageFor(e.Code)
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageFor returns the user-facing message for code.
// Unknown codes map to the generic message.
func MessageFor(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return MsgGeneric
}

// UserMessage returns a user-friendly message for the error.
// Raw causes and HTTP statuses are never exposed; errors without a code
// produce the generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return MessageFor(GetCode(err))
}

// RateLimitedError carries the reset time reported by GitHub.
type RateLimitedError struct {
	ResetAt int64 // Unix seconds from X-RateLimit-Reset, 0 if absent
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.ResetAt > 0 {
		return fmt.Sprintf("rate limited: quota resets at %d", e.ResetAt)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
