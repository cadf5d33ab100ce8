package xlog

import (
	"context"
	"log/slog"

	"github.com/omeyang/tracekit/pkg/context/xctx"
)

// =============================================================================
// 追踪字段自动注入
// =============================================================================

// maxEnrichAttrs 最大注入属性数量（trace_id + span_id + sampled）
const maxEnrichAttrs = 3

// enrichHandler 自动从 context 提取当前 span 身份并注入日志
//
// 装饰模式实现，包装底层 slog.Handler，在 Handle() 时自动添加
// trace_id、span_id、sampled 三个字段。context 中没有有效 span 时
// 不注入任何字段，日志记录不受影响。
type enrichHandler struct {
	base slog.Handler
}

// Enabled 委托给底层 handler
func (h *enrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 在调用底层 handler 前，从 context 提取当前 span 身份
//
// 根据 slog 契约，必须 Clone record 后再修改，避免影响其他 handler。
// ctx 为 nil 时安全退化为无注入（xctx 函数内部处理了 nil ctx）。
func (h *enrichHandler) Handle(ctx context.Context, r slog.Record) error {
	sc := xctx.SpanContextFromContext(ctx)
	if sc.IsValid() {
		var buf [maxEnrichAttrs]slog.Attr
		attrs := buf[:0]
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
			slog.Bool("sampled", sc.Sampled()),
		)
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 返回带额外属性的新 handler
func (h *enrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &enrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 返回带分组的新 handler
func (h *enrichHandler) WithGroup(name string) slog.Handler {
	return &enrichHandler{base: h.base.WithGroup(name)}
}
