package xspan

// =============================================================================
// Span / Tracer 最小接口与默认实现
// =============================================================================

// Span 持有 SpanContext 的最小 span 抽象。
//
// tracekit 只关心身份传播，不实现完整的 span 生命周期模型；
// 接口刻意保持最小，便于接入方用自己的 SDK span 适配。
type Span interface {
	// Context 返回该 span 的线上身份。
	Context() SpanContext

	// IsRecording 返回该 span 是否在记录事件。
	IsRecording() bool

	// End 结束该 span。
	End()
}

// DefaultSpan 仅携带 SpanContext 的空操作 span。
//
// xprop.Extract 用它包装提取结果写回 context；除 Context() 外的
// 所有方法都是空操作。
type DefaultSpan struct {
	sc SpanContext
}

// NewDefaultSpan 用给定的 SpanContext 创建 DefaultSpan。
func NewDefaultSpan(sc SpanContext) *DefaultSpan {
	return &DefaultSpan{sc: sc}
}

// Context 返回构造时传入的 SpanContext。
func (s *DefaultSpan) Context() SpanContext {
	if s == nil {
		return InvalidContext()
	}
	return s.sc
}

// IsRecording 恒为 false。
func (s *DefaultSpan) IsRecording() bool {
	return false
}

// End 空操作。
func (s *DefaultSpan) End() {}

// Tracer 创建 span 的最小抽象。
type Tracer interface {
	// StartSpan 按名称启动一个 span。
	StartSpan(name string) Span
}

// DefaultTracer 空操作 tracer，StartSpan 返回携带无效哨兵的 DefaultSpan。
//
// 供只需要传播、不需要真实采集的服务作占位实现。
type DefaultTracer struct{}

// StartSpan 返回携带无效哨兵的 DefaultSpan，name 被忽略。
func (DefaultTracer) StartSpan(string) Span {
	return NewDefaultSpan(InvalidContext())
}
