package xotel

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// SpanContext 双向转换
// =============================================================================

// ToOTel 将 tracekit 的 SpanContext 转换为 OpenTelemetry 的 SpanContext。
//
// 无效哨兵转换为 otel 的零值 SpanContext（同样 IsValid() == false）。
// trace state 逐条转换；按构造不变量，合法 TraceState 的条目必然满足
// otel 的同一套 W3C 语法，Insert 失败分支实际不可达，遇到时丢弃该条。
func ToOTel(sc xspan.SpanContext) trace.SpanContext {
	if !sc.IsValid() {
		return trace.SpanContext{}
	}

	state := trace.TraceState{}
	entries := sc.TraceState().Entries()
	// otel 的 Insert 语义是"移到最左"，倒序插入以保持原有顺序
	for i := len(entries) - 1; i >= 0; i-- {
		if next, err := state.Insert(entries[i].Key, entries[i].Value); err == nil {
			state = next
		}
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID(sc.TraceID()),
		SpanID:     trace.SpanID(sc.SpanID()),
		TraceFlags: trace.TraceFlags(sc.TraceFlags()),
		TraceState: state,
		Remote:     sc.IsRemote(),
	})
}

// FromOTel 将 OpenTelemetry 的 SpanContext 转换为 tracekit 的 SpanContext。
//
// 无效输入（任一 ID 为零）返回无效哨兵。remote 标志原样保留。
func FromOTel(sc trace.SpanContext) xspan.SpanContext {
	if !sc.IsValid() {
		return xspan.InvalidContext()
	}

	var state xspan.TraceState
	sc.TraceState().Walk(func(key, value string) bool {
		state.Set(key, value)
		return true
	})

	traceID := xspan.TraceID(sc.TraceID())
	spanID := xspan.SpanID(sc.SpanID())
	flags := xspan.TraceFlags(sc.TraceFlags())

	var (
		out xspan.SpanContext
		err error
	)
	if sc.IsRemote() {
		out, err = xspan.NewRemoteContext(traceID, spanID, flags, state)
	} else {
		out, err = xspan.NewSpanContext(traceID, spanID, flags, state)
	}
	if err != nil {
		// 不可达：sc.IsValid() 已保证双 ID 非零
		return xspan.InvalidContext()
	}
	return out
}
