package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// =============================================================================
// 构建选项
// =============================================================================

// Format 日志输出格式。
type Format string

// 支持的输出格式。
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Option 构建选项
type Option func(*config)

type config struct {
	level  Level
	format Format
	writer io.Writer

	filename   string
	maxSizeMB  int
	maxBackups int
}

// WithLevel 设置初始日志级别，默认 Info。
func WithLevel(level Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithFormat 设置输出格式（text/json），默认 text。
func WithFormat(format Format) Option {
	return func(cfg *config) {
		cfg.format = format
	}
}

// WithWriter 设置输出目标，默认 stderr。与 WithFile 互斥，后设置者生效。
func WithWriter(w io.Writer) Option {
	return func(cfg *config) {
		cfg.writer = w
		cfg.filename = ""
	}
}

// WithFile 输出到文件并按大小滚动（lumberjack）。
//
// maxSizeMB <= 0 时使用 100MB；maxBackups <= 0 时不限制保留数。
// Build 返回的 cleanup 负责关闭文件句柄。
func WithFile(filename string, maxSizeMB, maxBackups int) Option {
	return func(cfg *config) {
		cfg.filename = filename
		cfg.maxSizeMB = maxSizeMB
		cfg.maxBackups = maxBackups
		cfg.writer = nil
	}
}

// =============================================================================
// 构建
// =============================================================================

// Build 构建 Logger。
//
// 返回 Logger、清理函数和错误。清理函数幂等，进程退出前调用，
// 负责关闭文件输出；非文件输出时为空操作。
func Build(opts ...Option) (LoggerWithLevel, func(), error) {
	cfg := &config{
		level:  LevelInfo,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cleanup := func() {}
	var w io.Writer
	switch {
	case cfg.filename != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.filename,
			MaxSize:    cfg.maxSizeMB,
			MaxBackups: cfg.maxBackups,
		}
		if lj.MaxSize <= 0 {
			lj.MaxSize = 100
		}
		w = lj
		cleanup = func() { _ = lj.Close() }
	case cfg.writer != nil:
		w = cfg.writer
	default:
		w = os.Stderr
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.Level(cfg.level))

	hopts := &slog.HandlerOptions{Level: levelVar}
	var base slog.Handler
	if cfg.format == FormatJSON {
		base = slog.NewJSONHandler(w, hopts)
	} else {
		base = slog.NewTextHandler(w, hopts)
	}

	return &xlogger{
		handler:  &enrichHandler{base: base},
		levelVar: levelVar,
	}, cleanup, nil
}

// =============================================================================
// Logger 实现
// =============================================================================

// xlogger Logger 接口的 slog 实现
type xlogger struct {
	handler  slog.Handler
	levelVar *slog.LevelVar
}

func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(attrs...)
	_ = l.handler.Handle(ctx, r)
}

// Debug 记录 Debug 级别日志
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info 记录 Info 级别日志
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn 记录 Warn 级别日志
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error 记录 Error 级别日志
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs...)
}

// With 返回带额外属性的派生 Logger，共享父级的 LevelVar
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:  l.handler.WithAttrs(attrs),
		levelVar: l.levelVar,
	}
}

// SetLevel 动态设置日志级别
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}
