package xctx

import (
	"crypto/rand"

	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// ID 生成函数（遵循 W3C Trace Context 规范）
// 参考: https://www.w3.org/TR/trace-context/
// =============================================================================

// GenerateTraceID 生成符合 W3C 规范的随机 TraceID。
//
// 使用 crypto/rand 保证随机性。W3C 规范禁止全零 trace-id，
// 虽然概率极低（2^-128），出现时会重新生成。
//
// Panic 策略说明：如果底层熵源不可用（极罕见的系统级错误），函数会 panic。
// crypto/rand 失败意味着系统无法提供安全随机数，服务在此状态下应立即终止，
// 而非静默降级。
func GenerateTraceID() xspan.TraceID {
	var id xspan.TraceID
	for {
		if _, err := rand.Read(id[:]); err != nil {
			panic("xctx: crypto/rand.Read failed: " + err.Error())
		}
		if id.IsValid() {
			return id
		}
		// 全零情况极其罕见（概率 2^-128），重新生成
	}
}

// GenerateSpanID 生成符合 W3C 规范的随机 SpanID。
//
// 全零重试与 panic 策略同 GenerateTraceID。
func GenerateSpanID() xspan.SpanID {
	var id xspan.SpanID
	for {
		if _, err := rand.Read(id[:]); err != nil {
			panic("xctx: crypto/rand.Read failed: " + err.Error())
		}
		if id.IsValid() {
			return id
		}
		// 全零情况极其罕见（概率 2^-64），重新生成
	}
}
