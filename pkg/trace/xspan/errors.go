package xspan

import "errors"

// =============================================================================
// 标识符相关错误
// =============================================================================

var (
	// ErrInvalidTraceID trace ID 不是 32 位小写十六进制或为全零。
	ErrInvalidTraceID = errors.New("xspan: invalid trace id")

	// ErrInvalidSpanID span ID 不是 16 位小写十六进制或为全零。
	ErrInvalidSpanID = errors.New("xspan: invalid span id")

	// ErrInvalidTraceFlags trace flags 不是 2 位小写十六进制。
	ErrInvalidTraceFlags = errors.New("xspan: invalid trace flags")
)
