package xprop_test

import (
	"context"
	"fmt"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/trace/xprop"
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

func ExampleHTTPTraceContext_extract() {
	carrier := map[string]string{
		"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01",
		"tracestate":  "congo=congosSecondPosition,rojo=rojosFirstPosition",
	}
	format := xprop.HTTPTraceContext[map[string]string]{}

	ctx := format.Extract(
		func(c map[string]string, key string) string { return c[key] },
		carrier, context.Background())

	sc := xctx.SpanContextFromContext(ctx)
	fmt.Println("TraceID:", sc.TraceID())
	fmt.Println("SpanID:", sc.SpanID())
	fmt.Println("Sampled:", sc.Sampled())
	fmt.Println("Remote:", sc.IsRemote())
	// Output:
	// TraceID: 4bf92f3577b34da6a3ce929d0e0e4736
	// SpanID: 0102030405060708
	// Sampled: true
	// Remote: true
}

func ExampleHTTPTraceContext_inject() {
	traceID, _ := xspan.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := xspan.SpanIDFromHex("0102030405060708")

	var state xspan.TraceState
	state.Set("congo", "t61rcWkgMzE")

	sc, _ := xspan.NewSpanContext(traceID, spanID, xspan.FlagsSampled, state)
	ctx, _ := xctx.ContextWithSpan(context.Background(), xspan.NewDefaultSpan(sc))

	carrier := map[string]string{}
	format := xprop.HTTPTraceContext[map[string]string]{}
	format.Inject(
		func(c map[string]string, key, value string) { c[key] = value },
		carrier, ctx)

	fmt.Println(carrier["traceparent"])
	fmt.Println(carrier["tracestate"])
	// Output:
	// 00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01
	// congo=t61rcWkgMzE
}
