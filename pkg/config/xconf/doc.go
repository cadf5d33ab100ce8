// Package xconf 提供基于 koanf 的配置加载。
//
// # 设计理念
//
// 只做增值封装：格式推断、Unmarshal 到结构体、Reload 和文件变更监听。
// 其余操作直接使用 Client() 返回的 koanf 实例，不重复造 API。
//
// # 支持的格式
//
// YAML 与 JSON。从文件加载时按扩展名推断，从字节数据加载时显式指定。
//
// # 并发
//
// Reload 并发安全；Client() 返回的实例在 Reload 后会被整体替换，
// 读取方应通过 Config 接口取用而非长期持有旧实例。
package xconf
