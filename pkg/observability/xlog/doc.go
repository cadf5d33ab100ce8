// Package xlog 提供带追踪身份自动注入的结构化日志。
//
// # 设计理念
//
// 基于标准库 log/slog，所有日志方法强制传入 context.Context：
// 当 context 中存在有效的当前 span（见 xctx）时，trace_id、span_id、
// sampled 三个字段自动附加到日志记录，无需业务代码手动拼装。
//
// 传播器核心（xprop）的生产路径不打日志；xlog 服务于 cmd/ 下的
// 进程入口和接入方的业务代码。
//
// # 输出
//
// 默认输出 stderr、Info 级别、text 格式。WithFile 切换到文件输出时
// 经由 lumberjack 做按大小滚动，Build 返回的 cleanup 负责关闭文件。
//
// # 动态级别
//
// Logger 共享一个 slog.LevelVar，SetLevel 运行时生效，无需重建。
package xlog
