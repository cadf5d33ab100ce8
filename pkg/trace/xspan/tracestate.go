package xspan

import "strings"

// =============================================================================
// TraceState 容量常量（https://www.w3.org/TR/trace-context/#tracestate-header）
// =============================================================================

const (
	// MaxTraceStateMembers tracestate 最多允许的 key=value 条目数。
	MaxTraceStateMembers = 32

	// MaxTraceStateKeySize 单个 key 的最大字节数。
	MaxTraceStateKeySize = 256

	// MaxTraceStateValueSize 单个 value 的最大字节数。
	MaxTraceStateValueSize = 256
)

// =============================================================================
// Entry 与 TraceState
// =============================================================================

// Entry tracestate 中的一条 key=value 记录。
type Entry struct {
	Key   string
	Value string
}

// TraceState 厂商扩展的有序 key=value 列表，随 traceparent 一起跨进程传播。
//
// 零值即空 TraceState，可直接使用。条目保持插入顺序且 key 唯一；
// 一旦存入 SpanContext 即视为冻结，访问方法都返回副本。
//
// 设计决策: 条目顺序承载语义（W3C 规定最左侧为最近操作的厂商），
// 因此任何操作都不得排序。对已有 key 的 Set 采取原地替换而非删除后前插，
// 以保持其余条目的相对顺序稳定。
type TraceState struct {
	entries []Entry
}

// Set 写入一条 key=value。写入成功返回 true，否则返回 false 且不产生任何变更。
//
// 失败条件：
//   - key 不满足 W3C key 语法（见 IsValidTraceStateKey）
//   - value 为空或不满足 W3C value 语法（见 IsValidTraceStateValue）
//   - 已有 32 条且 key 不在其中
//
// key 已存在时原地替换 value，条目位置不变。
func (ts *TraceState) Set(key, value string) bool {
	if !IsValidTraceStateKey(key) || !IsValidTraceStateValue(value) {
		return false
	}
	for i := range ts.entries {
		if ts.entries[i].Key == key {
			// 写时复制：条目切片可能与已冻结的 SpanContext 共享
			entries := make([]Entry, len(ts.entries))
			copy(entries, ts.entries)
			entries[i].Value = value
			ts.entries = entries
			return true
		}
	}
	if len(ts.entries) >= MaxTraceStateMembers {
		return false
	}
	ts.entries = append(ts.entries, Entry{Key: key, Value: value})
	return true
}

// Get 按 key 查找 value，不存在时第二个返回值为 false。
func (ts TraceState) Get(key string) (string, bool) {
	for _, e := range ts.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Entries 返回全部条目的副本，保持插入顺序。
func (ts TraceState) Entries() []Entry {
	if len(ts.entries) == 0 {
		return nil
	}
	entries := make([]Entry, len(ts.entries))
	copy(entries, ts.entries)
	return entries
}

// Len 返回条目数。
func (ts TraceState) Len() int {
	return len(ts.entries)
}

// Empty 判断是否没有任何条目。
func (ts TraceState) Empty() bool {
	return len(ts.entries) == 0
}

// Equal 比较两个 TraceState 是否相等。
//
// 顺序敏感：条目相同但顺序不同视为不相等，因为顺序本身是传播语义的一部分。
func (ts TraceState) Equal(other TraceState) bool {
	if len(ts.entries) != len(other.entries) {
		return false
	}
	for i := range ts.entries {
		if ts.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// String 按插入顺序输出 key=value，以单个逗号连接，不带任何空白。
// 空 TraceState 返回空字符串。
func (ts TraceState) String() string {
	if len(ts.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range ts.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
	}
	return b.String()
}

// clone 返回底层条目完全独立的副本，供 SpanContext 冻结语义使用。
func (ts TraceState) clone() TraceState {
	if len(ts.entries) == 0 {
		return TraceState{}
	}
	entries := make([]Entry, len(ts.entries))
	copy(entries, ts.entries)
	return TraceState{entries: entries}
}

// =============================================================================
// key / value 语法校验（https://www.w3.org/TR/trace-context/#key）
// =============================================================================

// IsValidTraceStateKey 判断 key 是否满足 W3C tracestate key 语法。
//
// 规则：非空且不超过 256 字节；首字符为 [a-z0-9]；
// 其余字符为 [a-z0-9_\-*/]，另允许至多一个 '@'（tenant@vendor 形式）。
func IsValidTraceStateKey(key string) bool {
	if key == "" || len(key) > MaxTraceStateKeySize {
		return false
	}
	if !isLowerAlphaOrDigit(key[0]) {
		return false
	}
	ats := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case isLowerAlphaOrDigit(c) || c == '_' || c == '-' || c == '*' || c == '/':
		case c == '@':
			ats++
			if ats > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidTraceStateValue 判断 value 是否满足 W3C tracestate value 语法。
//
// 规则：非空且不超过 256 字节；每个字节在可打印 ASCII 区间 0x20..0x7E，
// 且不含 ','（条目分隔符）与 '='（键值分隔符）。
func IsValidTraceStateValue(value string) bool {
	if value == "" || len(value) > MaxTraceStateValueSize {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < 0x20 || c > 0x7e || c == ',' || c == '=' {
			return false
		}
	}
	return true
}

func isLowerAlphaOrDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
