package xspan

// =============================================================================
// SpanContext
// =============================================================================

// SpanContext 一个 span 在线上的身份：trace ID、span ID、trace flags、
// trace state，以及是否来自远端提取。
//
// 零值即规范的无效哨兵（全零 ID、空 TraceState、remote=false）。
// 构造后不可变，可在 goroutine 之间自由共享。
//
// 设计决策: 字段不导出，所有构造都经由工厂函数，保证"有效即双 ID 非零"
// 这一不变量无法被绕过。解析失败不返回错误对象而是退化为哨兵，
// 调用方只需检查 IsValid()。
type SpanContext struct {
	traceID TraceID
	spanID  SpanID
	flags   TraceFlags
	state   TraceState
	remote  bool
}

// InvalidContext 返回规范的无效哨兵。
func InvalidContext() SpanContext {
	return SpanContext{}
}

// NewSpanContext 构造本进程内产生的 SpanContext（remote=false）。
//
// 两个 ID 必须非零，否则返回无效哨兵和对应的哨兵错误。
// 传入的 TraceState 会被复制冻结，后续对原值的修改不影响已构造的上下文。
func NewSpanContext(traceID TraceID, spanID SpanID, flags TraceFlags, state TraceState) (SpanContext, error) {
	return newSpanContext(traceID, spanID, flags, state, false)
}

// NewRemoteContext 构造从载体提取得到的 SpanContext（remote=true）。
//
// 约束与 NewSpanContext 相同。
func NewRemoteContext(traceID TraceID, spanID SpanID, flags TraceFlags, state TraceState) (SpanContext, error) {
	return newSpanContext(traceID, spanID, flags, state, true)
}

func newSpanContext(traceID TraceID, spanID SpanID, flags TraceFlags, state TraceState, remote bool) (SpanContext, error) {
	if !traceID.IsValid() {
		return SpanContext{}, ErrInvalidTraceID
	}
	if !spanID.IsValid() {
		return SpanContext{}, ErrInvalidSpanID
	}
	return SpanContext{
		traceID: traceID,
		spanID:  spanID,
		flags:   flags,
		state:   state.clone(),
		remote:  remote,
	}, nil
}

// TraceID 返回 trace ID。
func (sc SpanContext) TraceID() TraceID {
	return sc.traceID
}

// SpanID 返回 span ID。
func (sc SpanContext) SpanID() SpanID {
	return sc.spanID
}

// TraceFlags 返回 trace flags，保留位原样保留。
func (sc SpanContext) TraceFlags() TraceFlags {
	return sc.flags
}

// TraceState 返回 trace state 的独立副本。
//
// 返回副本而非内部引用，调用方对副本的 Set 不会穿透到已冻结的上下文。
func (sc SpanContext) TraceState() TraceState {
	return sc.state.clone()
}

// IsValid 判断上下文是否有效：trace ID 与 span ID 均非零。
func (sc SpanContext) IsValid() bool {
	return sc.traceID.IsValid() && sc.spanID.IsValid()
}

// IsRemote 返回上下文是否来自远端提取。
//
// 仅 NewRemoteContext（即 xprop 的 Extract 路径）会置位；
// 注入操作不改变该标志，本地采样构造的上下文恒为 false。
func (sc SpanContext) IsRemote() bool {
	return sc.remote
}

// Sampled 返回采样标志（trace-flags bit 0）。
func (sc SpanContext) Sampled() bool {
	return sc.flags.Sampled()
}

// Equal 比较两个 SpanContext 的全部身份字段，trace state 顺序敏感。
func (sc SpanContext) Equal(other SpanContext) bool {
	return sc.traceID == other.traceID &&
		sc.spanID == other.spanID &&
		sc.flags == other.flags &&
		sc.remote == other.remote &&
		sc.state.Equal(other.state)
}
