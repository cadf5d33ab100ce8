package xspan

import "encoding/hex"

// =============================================================================
// ID 格式常量（遵循 W3C Trace Context 规范）
// =============================================================================

const (
	// TraceIDSize W3C 规范: 128-bit (16 bytes) -> 32 hex chars
	TraceIDSize = 16

	// SpanIDSize W3C 规范: 64-bit (8 bytes) -> 16 hex chars
	SpanIDSize = 8
)

// =============================================================================
// TraceID
// =============================================================================

// TraceID 链路追踪 ID，16 字节原始值。
//
// 零值（全零）是规范定义的无效 ID。数组类型天然支持 == 比较和复制。
type TraceID [TraceIDSize]byte

// IsValid 判断 trace ID 是否有效（非全零）。
func (t TraceID) IsValid() bool {
	return t != TraceID{}
}

// String 返回 32 位小写十六进制表示，保留前导零。
func (t TraceID) String() string {
	return hex.EncodeToString(t[:])
}

// TraceIDFromHex 从 32 位小写十六进制字符串解析 TraceID。
//
// 只接受 [0-9a-f]；长度不符、含大写或非十六进制字符时返回 ErrInvalidTraceID。
// 全零输入解析成功但 IsValid() 为 false，语义有效性由调用方判定。
func TraceIDFromHex(s string) (TraceID, error) {
	var t TraceID
	if !parseHexFixed(t[:], s) {
		return TraceID{}, ErrInvalidTraceID
	}
	return t, nil
}

// =============================================================================
// SpanID
// =============================================================================

// SpanID 跨度 ID，8 字节原始值。零值（全零）无效。
type SpanID [SpanIDSize]byte

// IsValid 判断 span ID 是否有效（非全零）。
func (s SpanID) IsValid() bool {
	return s != SpanID{}
}

// String 返回 16 位小写十六进制表示，保留前导零。
func (s SpanID) String() string {
	return hex.EncodeToString(s[:])
}

// SpanIDFromHex 从 16 位小写十六进制字符串解析 SpanID。
//
// 规则同 TraceIDFromHex：严格小写，全零解析成功但无效。
func SpanIDFromHex(s string) (SpanID, error) {
	var id SpanID
	if !parseHexFixed(id[:], s) {
		return SpanID{}, ErrInvalidSpanID
	}
	return id, nil
}

// =============================================================================
// TraceFlags
// =============================================================================

// FlagsSampled trace-flags 的 bit 0，表示上游已对该链路采样。
const FlagsSampled TraceFlags = 0x01

// TraceFlags W3C trace-flags 字节。
//
// bit 0 为采样标志；其余为保留位，解析与输出时原样透传，
// 不做清零处理，避免丢弃未来版本定义的语义。
type TraceFlags byte

// Sampled 返回采样标志（bit 0）。
func (f TraceFlags) Sampled() bool {
	return f&FlagsSampled != 0
}

// String 返回 2 位小写十六进制表示。
func (f TraceFlags) String() string {
	return hex.EncodeToString([]byte{byte(f)})
}

// TraceFlagsFromHex 从 2 位小写十六进制字符串解析 TraceFlags。
func TraceFlagsFromHex(s string) (TraceFlags, error) {
	var buf [1]byte
	if !parseHexFixed(buf[:], s) {
		return 0, ErrInvalidTraceFlags
	}
	return TraceFlags(buf[0]), nil
}
