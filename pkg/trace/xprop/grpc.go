package xprop

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/omeyang/tracekit/pkg/context/xctx"
)

// =============================================================================
// gRPC Metadata 载体
// =============================================================================

// MetadataGetter metadata.MD 的读回调，取第一个值。
// gRPC metadata 键自动小写化，天然满足大小写不敏感的读取语义。
func MetadataGetter(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// MetadataSetter metadata.MD 的写回调。
// 使用 Set 覆盖（而非追加），避免多次调用产生重复值。
func MetadataSetter(md metadata.MD, key, value string) {
	md.Set(key, value)
}

// metadataFormat 复用同一个无状态传播器实例。
var metadataFormat = HTTPTraceContext[metadata.MD]{}

// =============================================================================
// gRPC Context 注入 / 提取
// =============================================================================

// InjectToOutgoingContext 将当前 span 身份写入 outgoing metadata。
//
// 复制现有 metadata 后再写入，不修改原 context 中的 metadata。
// 当前上下文无效时原样返回 ctx。
func InjectToOutgoingContext(ctx context.Context) context.Context {
	if !xctx.SpanContextFromContext(ctx).IsValid() {
		return ctx
	}
	md, ok := metadata.FromOutgoingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.New(nil)
	}

	metadataFormat.Inject(MetadataSetter, md, ctx)
	if len(md) == 0 {
		return ctx
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// ExtractFromIncomingContext 从 incoming metadata 还原 span 身份。
// metadata 缺失时按空载体处理，返回绑定无效哨兵的派生 context。
func ExtractFromIncomingContext(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	}
	return metadataFormat.Extract(MetadataGetter, md, ctx)
}

// =============================================================================
// gRPC 服务端拦截器
// =============================================================================

// GRPCUnaryServerInterceptor 返回 gRPC 一元服务端拦截器。
// 自动从 incoming metadata 提取 W3C Trace Context 并绑定到 context。
func GRPCUnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		return handler(ExtractFromIncomingContext(ctx), req)
	}
}

// GRPCStreamServerInterceptor 返回 gRPC 流式服务端拦截器。
func GRPCStreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx := ExtractFromIncomingContext(ss.Context())
		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: ctx})
	}
}

// wrappedServerStream 包装 ServerStream 以覆盖 Context
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context 返回包装后的 context
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// =============================================================================
// gRPC 客户端拦截器
// =============================================================================

// GRPCUnaryClientInterceptor 返回 gRPC 客户端一元拦截器。
// 自动将当前 span 身份注入 outgoing metadata，用于跨服务调用传播。
func GRPCUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(InjectToOutgoingContext(ctx), method, req, reply, cc, opts...)
	}
}

// GRPCStreamClientInterceptor 返回 gRPC 客户端流式拦截器。
func GRPCStreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		return streamer(InjectToOutgoingContext(ctx), desc, cc, method, opts...)
	}
}
