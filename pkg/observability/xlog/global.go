package xlog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// =============================================================================
// 全局 Logger
//
// 定位：脚手架/小工具等简单场景。
// 在服务端推荐依赖注入（显式持有 Logger）。
// =============================================================================

// globalLogger 全局 Logger 实例（并发安全）
var globalLogger atomic.Pointer[LoggerWithLevel]

// globalOnce 确保默认 Logger 只初始化一次
var globalOnce sync.Once

// Default 返回全局默认 Logger
//
// 懒初始化：首次调用时创建默认 Logger（stderr，Info 级别，text 格式）。
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	globalOnce.Do(func() {
		// 默认参数下 Build 不会失败
		logger, _, _ := Build()
		globalLogger.Store(&logger)
	})
	return *globalLogger.Load()
}

// SetDefault 替换全局默认 Logger。logger 为 nil 时不做任何事。
func SetDefault(logger LoggerWithLevel) {
	if logger == nil {
		return
	}
	globalLogger.Store(&logger)
}

// Debug 使用全局 Logger 记录 Debug 级别日志
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

// Info 使用全局 Logger 记录 Info 级别日志
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

// Warn 使用全局 Logger 记录 Warn 级别日志
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

// Error 使用全局 Logger 记录 Error 级别日志
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}
