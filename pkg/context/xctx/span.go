package xctx

import (
	"context"

	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// 当前 Span 存取
// =============================================================================

// ContextWithSpan 将 span 绑定为派生 context 的当前 span。
//
// 原 context 不受影响（context.WithValue 的结构共享语义）。
// ctx 为 nil 返回 ErrNilContext，span 为 nil 返回 ErrNilSpan。
func ContextWithSpan(ctx context.Context, span xspan.Span) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if span == nil {
		return nil, ErrNilSpan
	}
	return context.WithValue(ctx, keyCurrentSpan, span), nil
}

// SpanFromContext 返回 context 中的当前 span，不存在时返回 nil。
func SpanFromContext(ctx context.Context) xspan.Span {
	if ctx == nil {
		return nil
	}
	if span, ok := ctx.Value(keyCurrentSpan).(xspan.Span); ok {
		return span
	}
	return nil
}

// SpanContextFromContext 返回当前 span 的 SpanContext。
//
// context 中没有 span 时返回无效哨兵，调用方统一用 IsValid() 判断，
// 无需区分"键不存在"与"上下文无效"两种情况。
func SpanContextFromContext(ctx context.Context) xspan.SpanContext {
	span := SpanFromContext(ctx)
	if span == nil {
		return xspan.InvalidContext()
	}
	return span.Context()
}
