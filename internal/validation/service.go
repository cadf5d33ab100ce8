package validation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/observability/xlog"
	"github.com/omeyang/tracekit/pkg/trace/xprop"
	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// 校验服务
// =============================================================================

// Action harness 下发的单个动作：把 arguments 转发到 url。
type Action struct {
	URL       string          `json:"url"`
	Arguments json.RawMessage `json:"arguments"`
}

// Service W3C Trace Context 校验服务。
type Service struct {
	log    xlog.Logger
	client *CallbackClient
}

// NewService 创建校验服务。log 为 nil 时使用全局默认 Logger。
func NewService(log xlog.Logger, client *CallbackClient) *Service {
	if log == nil {
		log = xlog.Default()
	}
	return &Service{log: log, client: client}
}

// Handler 返回挂好追踪中间件的 HTTP 处理器。
func (s *Service) Handler() http.Handler {
	return xprop.HTTPMiddleware()(http.HandlerFunc(s.handle))
}

// handle 处理 harness 的测试请求。
//
// 入站上下文已由中间件提取；这里延续出子上下文后逐个执行回调。
// 任一回调失败返回 500，harness 以此判定用例失败。
func (s *Service) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var actions []Action
	if err := json.NewDecoder(r.Body).Decode(&actions); err != nil {
		http.Error(w, "bad request payload", http.StatusBadRequest)
		return
	}

	ctx, err := continueTrace(r.Context())
	if err != nil {
		// 不可达：continueTrace 构造的 ID 恒非零
		s.log.Error(r.Context(), "validation: continue trace failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for _, action := range actions {
		body := action.Arguments
		if body == nil {
			body = json.RawMessage("[]")
		}
		if err := s.client.Send(ctx, action.URL, body); err != nil {
			s.log.Error(ctx, "validation: callback failed",
				slog.String("url", action.URL), slog.Any("error", err))
			http.Error(w, "callback failed", http.StatusInternalServerError)
			return
		}
		s.log.Debug(ctx, "validation: callback ok", slog.String("url", action.URL))
	}
	w.WriteHeader(http.StatusOK)
}

// continueTrace 从入站上下文延续出出站上下文。
//
// 入站有效：沿用 trace-id、trace-flags、trace-state，生成新 span-id，
// 即作为上游的子 span 继续链路。入站无效：生成全新 trace。
// 两种情况都是本地构造（remote=false），由注入端写到线上。
func continueTrace(ctx context.Context) (context.Context, error) {
	upstream := xctx.SpanContextFromContext(ctx)

	var (
		sc  xspan.SpanContext
		err error
	)
	if upstream.IsValid() {
		sc, err = xspan.NewSpanContext(
			upstream.TraceID(), xctx.GenerateSpanID(),
			upstream.TraceFlags(), upstream.TraceState(),
		)
	} else {
		sc, err = xspan.NewSpanContext(
			xctx.GenerateTraceID(), xctx.GenerateSpanID(),
			0, xspan.TraceState{},
		)
	}
	if err != nil {
		return ctx, err
	}
	return xctx.ContextWithSpan(ctx, xspan.NewDefaultSpan(sc))
}
