// Package xotel 提供 tracekit 与 OpenTelemetry API 之间的 SpanContext 桥接。
//
// # 设计理念
//
// 已接入 OpenTelemetry SDK 的服务可以用本包在两套类型之间无损转换：
// trace ID、span ID、trace flags、trace state（含条目顺序）和 remote
// 标志全部保留。转换是纯函数，不触碰全局 TracerProvider。
//
// # 使用方式
//
// 入站：xctx 提取出的 SpanContext 经 ToOTel 转换后，可用
// trace.ContextWithRemoteSpanContext 交给 otel SDK 继续建链；
// 出站：otel span 的身份经 FromOTel 转换后交给 xprop 注入载体。
package xotel
