package xprop

import (
	"context"
	"net/http"
)

// =============================================================================
// HTTP Header 载体
// =============================================================================

// HeaderGetter http.Header 的读回调。
// http.Header.Get 自带大小写不敏感（规范化键），满足 HTTP 读取语义。
func HeaderGetter(h http.Header, key string) string {
	return h.Get(key)
}

// HeaderSetter http.Header 的写回调，同名头覆盖写入。
func HeaderSetter(h http.Header, key, value string) {
	h.Set(key, value)
}

// headerFormat 复用同一个无状态传播器实例。
var headerFormat = HTTPTraceContext[http.Header]{}

// InjectHTTP 将 ctx 中的当前 span 身份写入 HTTP Header。
// h 为 nil 时不做任何事。
func InjectHTTP(ctx context.Context, h http.Header) {
	if h == nil {
		return
	}
	headerFormat.Inject(HeaderSetter, h, ctx)
}

// ExtractHTTP 从 HTTP Header 还原 span 身份，返回绑定结果的派生 context。
func ExtractHTTP(ctx context.Context, h http.Header) context.Context {
	if h == nil {
		h = http.Header{}
	}
	return headerFormat.Extract(HeaderGetter, h, ctx)
}

// InjectToRequest 将 ctx 中的当前 span 身份注入 HTTP 请求。
// 用于跨服务调用时传播，会正确透传上游的 trace-flags（采样决策）。
func InjectToRequest(ctx context.Context, req *http.Request) {
	if req == nil {
		return
	}
	// 防止调用方构造 &http.Request{} 导致 nil Header panic
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	InjectHTTP(ctx, req.Header)
}

// =============================================================================
// HTTP 中间件
// =============================================================================

// HTTPMiddleware 返回 HTTP 中间件。
// 从请求头提取 W3C Trace Context 并绑定到请求 context；
// 头缺失或非法时绑定无效哨兵，业务侧统一用 IsValid() 判断。
func HTTPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ExtractHTTP(r.Context(), r.Header)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
