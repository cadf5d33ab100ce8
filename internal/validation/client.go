package validation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/google/uuid"

	"github.com/omeyang/tracekit/pkg/trace/xprop"
)

// =============================================================================
// 回调客户端
// =============================================================================

// headerRequestID 每次回调携带的请求 ID 头，便于 harness 侧对账。
const headerRequestID = "X-Request-ID"

// CallbackClient 向 harness 回调地址转发请求的 HTTP 客户端。
//
// 每次发送都会把 ctx 中的当前 span 身份注入请求头；
// 非 2xx 响应与网络错误按固定间隔重试。
type CallbackClient struct {
	httpClient *http.Client
	attempts   int
	delay      time.Duration
}

// NewCallbackClient 创建回调客户端。
func NewCallbackClient(cfg Config) *CallbackClient {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &CallbackClient{
		httpClient: &http.Client{Timeout: cfg.CallbackTimeout},
		attempts:   attempts,
		delay:      cfg.RetryDelay,
	}
}

// Send 将 body POST 到 url，携带 ctx 中的追踪头。
//
// 每次重试复用同一个 body（先整体持有，避免流式 body 不可重放）。
func (c *CallbackClient) Send(ctx context.Context, url string, body []byte) error {
	requestID := uuid.NewString()
	return retry.New(
		retry.Context(ctx),
		retry.Attempts(uint(c.attempts)),
		retry.Delay(c.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	).Do(func() error {
		return c.sendOnce(ctx, url, body, requestID)
	})
}

func (c *CallbackClient) sendOnce(ctx context.Context, url string, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("validation: build callback request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, requestID)
	xprop.InjectToRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("validation: callback %s: %w", url, err)
	}
	defer resp.Body.Close()
	// 排空响应体以复用连接
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("validation: callback %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}
