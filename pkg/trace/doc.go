// Package trace 提供 W3C Trace Context 传播相关的子包。
//
// 子包列表：
//   - xspan: 核心值类型（TraceID、SpanID、TraceFlags、TraceState、SpanContext）
//   - xprop: traceparent/tracestate 头的双向编解码与载体适配（HTTP、gRPC）
//   - xotel: 与 OpenTelemetry API 的 SpanContext 桥接
//
// 设计原则：
//   - 值类型构造后不可变，可跨 goroutine 自由共享
//   - 严格收 traceparent、宽容收 tracestate、严格发两者
//   - 畸形输入折叠为无效哨兵，核心不抛错误、不打日志
package trace
