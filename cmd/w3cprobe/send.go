package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/trace/xprop"
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// sendTimeout send 命令单次请求超时。
const sendTimeout = 10 * time.Second

// runSend 用新生成的追踪上下文向校验服务发送一条测试请求，
// 打印使用的 traceparent 与响应状态。
func runSend(ctx context.Context, url, callback string) error {
	payload, err := probePayload(callback)
	if err != nil {
		return err
	}

	sc, err := xspan.NewSpanContext(
		xctx.GenerateTraceID(), xctx.GenerateSpanID(),
		xspan.FlagsSampled, xspan.TraceState{},
	)
	if err != nil {
		// 不可达：生成的 ID 恒非零
		return err
	}
	ctx, err = xctx.ContextWithSpan(ctx, xspan.NewDefaultSpan(sc))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	xprop.InjectToRequest(ctx, req)

	fmt.Println("traceparent:", req.Header.Get(xprop.HeaderTraceparent))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	fmt.Println("status:", resp.Status)
	return nil
}
