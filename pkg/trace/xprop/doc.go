// Package xprop 实现 W3C Trace Context 的跨进程传播器。
//
// # 设计理念
//
// 传播器是无状态的双向编解码器：Inject 把当前 span 的身份写成
// traceparent/tracestate 两个文本头，Extract 从载体中严格解析并还原
// SpanContext。载体（carrier）通过类型参数与调用方提供的 Getter/Setter
// 函数抽象，核心不关心 HTTP、gRPC 还是消息队列。
//
// # 严格与宽容
//
// traceparent 严格解析：总长必须恰好 55，分隔符位置、段宽、小写十六进制
// 字母表、保留版本 "ff"、全零 ID 任何一处不符都使整个上下文退化为无效
// 哨兵。tracestate 宽容解析：跳过制表符、容忍尾逗号与空成员、静默丢弃
// 非法 key 的成员；但接受成员数超过 32 时整个头作废（W3C：过大的
// tracestate 等同于没有）。坏的 tracestate 不影响合法 traceparent 的传播。
//
// # 失败语义
//
// 传播器从不 panic、从不返回错误、生产路径不打日志。所有畸形输入都
// 折叠为无效哨兵；Extract 总是返回可用的 context，Inject 在没有合法
// 上下文可传播时什么也不写。
//
// # 并发
//
// 传播器无状态，Inject/Extract 是纯函数，可在任意多 goroutine 并发调用。
package xprop
