// Package xctx 提供追踪身份在进程内 context.Context 中的存取。
//
// # 设计理念
//
// context.Context 本身就是持久化（结构共享）的键值存储：WithValue 返回
// 派生 context，原 context 不受影响。xctx 只在其上定义一个众所周知的
// 键——当前 span——以及围绕它的存取函数，保持与传输层（xprop）和
// 值类型层（xspan）的单向依赖。
//
// # 当前 span 键
//
// 键名沿用 W3C 传播器约定的 "current-span"。键类型为包私有，
// 外部包无法伪造；字符串值保留可读名称便于调试。
//
// # ID 生成
//
// GenerateTraceID/GenerateSpanID 使用 crypto/rand 生成符合 W3C 规范的
// 随机 ID，供本地创建 span 的场景使用；传播器本身从不生成 ID，
// 无效上下文注入时直接跳过。
package xctx
