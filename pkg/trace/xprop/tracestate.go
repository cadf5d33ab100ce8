package xprop

import (
	"strings"

	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// tracestate 头解析（宽容收，严格发）
// 格式：key1=value1,key2=value2,...
// =============================================================================

// parseTraceState 宽容解析 tracestate 头。
//
// 宽容规则：
//   - 制表符 '\t' 全部跳过，成员两侧的空格剥除
//   - 尾逗号、成员间的空成员直接丢弃（常见的生产方笔误）
//   - 没有 '=' 的成员、key 或 value 不合语法的成员静默丢弃，不致命
//   - 成员按出现顺序插入，重复 key 原地覆盖
//
// 唯一的整体失败条件：接受的成员数超过 32。此时整个头作废，
// 返回空 TraceState（W3C：过大的 tracestate 等同于没有 tracestate）。
//
// 输出端没有对应的宽容：发送永远是 TraceState.String() 的严格格式。
func parseTraceState(header string) xspan.TraceState {
	var ts xspan.TraceState
	for _, member := range strings.Split(header, ",") {
		if strings.ContainsRune(member, '\t') {
			member = strings.ReplaceAll(member, "\t", "")
		}
		member = strings.Trim(member, " ")
		if member == "" {
			continue
		}
		eq := strings.IndexByte(member, '=')
		if eq < 0 {
			continue
		}
		key, value := member[:eq], member[eq+1:]
		if !xspan.IsValidTraceStateKey(key) || !xspan.IsValidTraceStateValue(value) {
			continue
		}
		if !ts.Set(key, value) {
			// key/value 均已通过校验，Set 失败只可能是第 33 个新 key：
			// 超限时整个头作废而非截断前 32 条
			return xspan.TraceState{}
		}
	}
	return ts
}
