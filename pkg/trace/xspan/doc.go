// Package xspan 定义 W3C Trace Context 的核心值类型。
//
// # 设计理念
//
// xspan 是 tracekit 的最底层：TraceID、SpanID、TraceFlags、TraceState 和
// SpanContext 都是构造后不可变的值类型，可以在 goroutine 之间自由共享。
// 传输层编解码（traceparent/tracestate 头的解析与生成）在 xprop 包，
// xspan 只负责值本身的表示、校验和定宽十六进制序列化。
//
// 支持以下标识（https://www.w3.org/TR/trace-context/）：
//   - TraceID: 16 字节，序列化为 32 位小写十六进制，全零视为无效
//   - SpanID: 8 字节，序列化为 16 位小写十六进制，全零视为无效
//   - TraceFlags: 1 字节，bit 0 为采样标志，保留位原样透传
//   - TraceState: 最多 32 条有序 key=value 扩展项
//
// # 大小写约定
//
// 解析入口（TraceIDFromHex 等）只接受小写十六进制。W3C 规范要求线上格式
// 为小写；接受大写会让 "00...0" 与 "00...0" 之外的别名绕过全零检测，
// 因此解析端与输出端同样严格。
//
// # SpanContext 有效性
//
// SpanContext 的零值即规范的无效哨兵（全零 ID、空 TraceState）。
// 任何通过 NewSpanContext/NewRemoteContext 成功构造的值都满足
// IsValid() == true；解析失败的上下文统一退化为哨兵，不抛错误。
package xspan
