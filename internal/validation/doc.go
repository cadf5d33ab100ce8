// Package validation 实现 W3C Trace Context 校验服务（test service）。
//
// 官方校验套件（w3c/trace-context test harness）通过回调链验证实现的
// 传播行为：harness 向被测服务 POST 一组动作，每个动作包含回调 url 和
// 要转发的 arguments；被测服务必须在转发请求里携带从入站请求延续出来
// 的 traceparent/tracestate。
//
// 本包把 tracekit 的提取、延续、注入串成完整链路：
//   - 入站：xprop.HTTPMiddleware 提取上游上下文
//   - 延续：有效时沿用 trace-id/flags/state、生成新 span-id；
//     无效时生成全新 trace
//   - 出站：xprop.InjectToRequest 注入回调请求，带重试
package validation
