// Package context 提供上下文与追踪身份管理相关的子包。
//
// 子包列表：
//   - xctx: Context 增强，当前 span 的注入/提取与追踪 ID 生成
//
// 设计原则：
//   - 所有上下文信息通过 context.Context 传递，不使用全局变量
//   - context 的结构共享语义保证派生不影响原值
//   - 支持 W3C Trace Context 标准
package context
