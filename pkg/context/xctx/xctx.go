package xctx

import "errors"

// =============================================================================
// Context Key 类型定义
// =============================================================================

// 设计决策: contextKey 使用 string 而非 int+iota，理由如下：
//   - 作为包私有类型，不会与其他包的 context key 冲突（Go context 比较包含类型信息）
//   - 字符串值在调试/日志中可读性高，便于排查 context 传播问题
//   - 性能差异可忽略，不构成瓶颈
type contextKey string

// keyCurrentSpan 当前 span 的众所周知键，名称与 W3C 传播器约定一致。
const keyCurrentSpan = contextKey("xctx:current-span")

// =============================================================================
// 通用错误
// =============================================================================

var (
	// ErrNilContext 表示传入的 context 为 nil。
	ErrNilContext = errors.New("xctx: nil context")

	// ErrNilSpan 表示传入的 span 为 nil。
	ErrNilSpan = errors.New("xctx: nil span")
)
