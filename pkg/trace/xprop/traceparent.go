package xprop

import (
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// traceparent 头编解码
// 格式：{version}-{trace-id}-{parent-id}-{trace-flags}
// 示例：00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01
// =============================================================================

// traceparent 各段宽度与定长偏移。
// 总长 55 = 2 + 1 + 32 + 1 + 16 + 1 + 2，分隔符位于 2、35、52。
const (
	traceparentLen = 55

	versionStart = 0
	versionEnd   = 2
	traceIDStart = 3
	traceIDEnd   = 35
	spanIDStart  = 36
	spanIDEnd    = 52
	flagsStart   = 53
	flagsEnd     = 55

	dash1 = 2
	dash2 = 35
	dash3 = 52
)

// versionInvalid 保留版本，W3C 规定永远非法。
const versionInvalid = "ff"

// parseTraceparent 严格解析 traceparent 头。
//
// 任何一条不满足都返回 ok=false：
//   - 总长度恰好 55（当前实现不接受未来版本的尾部扩展字段）
//   - 位置 2、35、52 为 '-'
//   - 四个段均为小写十六进制（大写一律拒绝，防止全零检测被别名绕过）
//   - version != "ff"
//   - trace-id、span-id 非全零
//
// flags 的保留位不校验，原样保留给下游。
//
// 设计决策: 用定长偏移而非状态机逐字符扫描，两者对该文法等价，
// 定长检查更直观且无额外分配。
func parseTraceparent(header string) (xspan.TraceID, xspan.SpanID, xspan.TraceFlags, bool) {
	if len(header) != traceparentLen {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}
	if header[dash1] != '-' || header[dash2] != '-' || header[dash3] != '-' {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}

	version := header[versionStart:versionEnd]
	if !isLowerHex2(version) || version == versionInvalid {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}

	traceID, err := xspan.TraceIDFromHex(header[traceIDStart:traceIDEnd])
	if err != nil || !traceID.IsValid() {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}

	spanID, err := xspan.SpanIDFromHex(header[spanIDStart:spanIDEnd])
	if err != nil || !spanID.IsValid() {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}

	flags, err := xspan.TraceFlagsFromHex(header[flagsStart:flagsEnd])
	if err != nil {
		return xspan.TraceID{}, xspan.SpanID{}, 0, false
	}

	return traceID, spanID, flags, true
}

// formatTraceparent 生成 traceparent 头，版本固定为 "00"。
//
// 调用方保证 sc 有效；输出恒为 55 字节小写。
func formatTraceparent(sc xspan.SpanContext) string {
	var buf [traceparentLen]byte
	copy(buf[:traceIDStart], "00-")
	copy(buf[traceIDStart:traceIDEnd], sc.TraceID().String())
	buf[dash2] = '-'
	copy(buf[spanIDStart:spanIDEnd], sc.SpanID().String())
	buf[dash3] = '-'
	copy(buf[flagsStart:flagsEnd], sc.TraceFlags().String())
	return string(buf[:])
}

// isLowerHex2 判断两字节段是否为小写十六进制。
func isLowerHex2(s string) bool {
	return len(s) == 2 && isLowerHexByte(s[0]) && isLowerHexByte(s[1])
}

func isLowerHexByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
