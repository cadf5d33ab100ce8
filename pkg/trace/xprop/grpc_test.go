package xprop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/trace/xprop"
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// gRPC Metadata 载体测试
// =============================================================================

func validSpanContext(t *testing.T) xspan.SpanContext {
	t.Helper()
	var state xspan.TraceState
	state.Set("congo", "t61rcWkgMzE")
	sc, err := xspan.NewSpanContext(
		xctx.GenerateTraceID(), xctx.GenerateSpanID(), xspan.FlagsSampled, state)
	require.NoError(t, err)
	return sc
}

func TestMetadataGetterSetter(t *testing.T) {
	md := metadata.New(nil)
	xprop.MetadataSetter(md, "traceparent", validTraceparent)
	assert.Equal(t, validTraceparent, xprop.MetadataGetter(md, "traceparent"))

	// 大小写不敏感（metadata 键自动小写化）
	assert.Equal(t, validTraceparent, xprop.MetadataGetter(md, "Traceparent"))

	// 缺失返回空串
	assert.Equal(t, "", xprop.MetadataGetter(md, "missing"))

	// Set 覆盖而非追加
	xprop.MetadataSetter(md, "traceparent", "other")
	assert.Len(t, md.Get("traceparent"), 1)
}

func TestInjectToOutgoingContext(t *testing.T) {
	sc := validSpanContext(t)
	ctx, err := xctx.ContextWithSpan(context.Background(), xspan.NewDefaultSpan(sc))
	require.NoError(t, err)

	out := xprop.InjectToOutgoingContext(ctx)
	md, ok := metadata.FromOutgoingContext(out)
	require.True(t, ok)
	assert.Equal(t,
		"00-"+sc.TraceID().String()+"-"+sc.SpanID().String()+"-01",
		xprop.MetadataGetter(md, "traceparent"))
	assert.Equal(t, "congo=t61rcWkgMzE", xprop.MetadataGetter(md, "tracestate"))
}

// TestInjectToOutgoingContext_Invalid 无效上下文不写 metadata
func TestInjectToOutgoingContext_Invalid(t *testing.T) {
	out := xprop.InjectToOutgoingContext(context.Background())
	_, ok := metadata.FromOutgoingContext(out)
	assert.False(t, ok)
}

// TestInjectToOutgoingContext_PreservesExisting 已有 metadata 复制后追加，不原地修改
func TestInjectToOutgoingContext_PreservesExisting(t *testing.T) {
	sc := validSpanContext(t)
	original := metadata.Pairs("custom-key", "custom-value")
	ctx := metadata.NewOutgoingContext(context.Background(), original)
	ctx, err := xctx.ContextWithSpan(ctx, xspan.NewDefaultSpan(sc))
	require.NoError(t, err)

	out := xprop.InjectToOutgoingContext(ctx)
	md, ok := metadata.FromOutgoingContext(out)
	require.True(t, ok)
	assert.Equal(t, "custom-value", xprop.MetadataGetter(md, "custom-key"))
	assert.NotEmpty(t, xprop.MetadataGetter(md, "traceparent"))

	// 原 metadata 未被修改
	assert.Empty(t, original.Get("traceparent"))
}

func TestExtractFromIncomingContext(t *testing.T) {
	md := metadata.Pairs(
		"traceparent", validTraceparent,
		"tracestate", "rojo=00f067aa0ba902b7",
	)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	sc := xctx.SpanContextFromContext(xprop.ExtractFromIncomingContext(ctx))
	require.True(t, sc.IsValid())
	assert.True(t, sc.IsRemote())
	v, _ := sc.TraceState().Get("rojo")
	assert.Equal(t, "00f067aa0ba902b7", v)
}

func TestExtractFromIncomingContext_NoMetadata(t *testing.T) {
	sc := xctx.SpanContextFromContext(
		xprop.ExtractFromIncomingContext(context.Background()))
	assert.False(t, sc.IsValid())
}

// =============================================================================
// 拦截器测试
// =============================================================================

func TestGRPCUnaryServerInterceptor(t *testing.T) {
	interceptor := xprop.GRPCUnaryServerInterceptor()

	md := metadata.Pairs("traceparent", validTraceparent)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var got xspan.SpanContext
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, req any) (any, error) {
			got = xctx.SpanContextFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	assert.True(t, got.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", got.TraceID().String())
}

func TestGRPCUnaryClientInterceptor(t *testing.T) {
	sc := validSpanContext(t)
	ctx, err := xctx.ContextWithSpan(context.Background(), xspan.NewDefaultSpan(sc))
	require.NoError(t, err)

	interceptor := xprop.GRPCUnaryClientInterceptor()
	var captured metadata.MD
	err = interceptor(ctx, "/test.Service/Method", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any,
			cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			captured, _ = metadata.FromOutgoingContext(ctx)
			return nil
		})
	require.NoError(t, err)
	assert.NotEmpty(t, xprop.MetadataGetter(captured, "traceparent"))
	assert.Equal(t, "congo=t61rcWkgMzE", xprop.MetadataGetter(captured, "tracestate"))
}
