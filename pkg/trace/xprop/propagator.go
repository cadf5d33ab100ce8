package xprop

import (
	"context"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// Header 常量
// =============================================================================

// W3C Trace Context 标准头名称。写出时恒为小写；
// 读取端的大小写不敏感由载体的 Getter 负责（HTTP 语义）。
const (
	HeaderTraceparent = "traceparent"
	HeaderTracestate  = "tracestate"
)

// =============================================================================
// 载体回调类型
// =============================================================================

// Getter 从载体读取指定名称的头，不存在时返回空字符串。
//
// 空字符串同时承担"缺失"信号：traceparent 的空值按定义即缺失，
// 不存在合法的空 traceparent。
type Getter[T any] func(carrier T, key string) string

// Setter 向载体写入（或覆盖）指定名称的头。
type Setter[T any] func(carrier T, key, value string)

// =============================================================================
// 传播器
// =============================================================================

// HTTPTraceContext W3C Trace Context 传播器，对载体类型 T 参数化。
//
// 零值即可用，无内部状态，可跨 goroutine 共享。
//
// 设计决策: 载体操作用函数值而非接口或继承分发，调用方给任何类型的
// 载体配一对读写函数即可接入，不要求载体实现特定接口。
type HTTPTraceContext[T any] struct{}

// Inject 将 ctx 中当前 span 的身份写入载体。
//
// 读取 xctx 的当前 span；缺失或无效（任一 ID 为零）时什么都不写——
// 无效上下文不得传播。有效时写 traceparent，并仅在 trace state 非空时
// 写 tracestate。ctx 本身不被修改。
func (HTTPTraceContext[T]) Inject(set Setter[T], carrier T, ctx context.Context) {
	sc := xctx.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return
	}
	set(carrier, HeaderTraceparent, formatTraceparent(sc))
	if state := sc.TraceState(); !state.Empty() {
		set(carrier, HeaderTracestate, state.String())
	}
}

// Extract 从载体还原 span 身份，返回绑定了结果 span 的派生 context。
//
// traceparent 缺失或解析失败时绑定无效哨兵；解析成功时按宽容规则解析
// tracestate（缺失按空处理），构造 remote=true 的 SpanContext。
// 返回值总是可用的 context，原 ctx 不被修改（结构共享派生）。
func (HTTPTraceContext[T]) Extract(get Getter[T], carrier T, ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	sc := extractSpanContext(get, carrier)
	derived, err := xctx.ContextWithSpan(ctx, xspan.NewDefaultSpan(sc))
	if err != nil {
		// 不可达：ctx 已兜底非 nil，span 恒非 nil
		return ctx
	}
	return derived
}

// extractSpanContext 两个头到 SpanContext 的纯转换。
func extractSpanContext[T any](get Getter[T], carrier T) xspan.SpanContext {
	header := get(carrier, HeaderTraceparent)
	if header == "" {
		return xspan.InvalidContext()
	}
	traceID, spanID, flags, ok := parseTraceparent(header)
	if !ok {
		return xspan.InvalidContext()
	}

	var state xspan.TraceState
	if raw := get(carrier, HeaderTracestate); raw != "" {
		state = parseTraceState(raw)
	}

	sc, err := xspan.NewRemoteContext(traceID, spanID, flags, state)
	if err != nil {
		// 不可达：parseTraceparent 已保证双 ID 非零
		return xspan.InvalidContext()
	}
	return sc
}
