package xprop_test

import (
	"context"
	"strings"
	"testing"

	"github.com/omeyang/tracekit/pkg/context/xctx"
	"github.com/omeyang/tracekit/pkg/trace/xprop"
)

// =============================================================================
// 传播器 Fuzz 测试
// =============================================================================

var fuzzFormat = xprop.HTTPTraceContext[map[string]string]{}

// FuzzExtract_Traceparent 任意 traceparent 输入不得 panic，
// 且结果要么有效要么是完整的无效哨兵。
func FuzzExtract_Traceparent(f *testing.F) {
	f.Add("00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01")
	f.Add("")
	f.Add("ff-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01")
	f.Add("00-00000000000000000000000000000000-0102030405060708-01")
	f.Add("00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01-residue")
	f.Add(strings.Repeat("-", 55))
	f.Add("00-4BF92F3577B34DA6A3CE929D0E0E4736-0102030405060708-01")

	f.Fuzz(func(t *testing.T, header string) {
		carrier := map[string]string{"traceparent": header}
		ctx := fuzzFormat.Extract(mapGetter, carrier, context.Background())
		sc := xctx.SpanContextFromContext(ctx)

		if sc.IsValid() {
			// 有效结果必然可以无损注入回去
			out := map[string]string{}
			fuzzFormat.Inject(mapSetter, out, ctx)
			if len(out["traceparent"]) != 55 {
				t.Errorf("注入输出长度 = %d, want 55", len(out["traceparent"]))
			}
			if !sc.IsRemote() {
				t.Error("提取得到的有效上下文必须是 remote")
			}
		} else {
			// 无效哨兵必须是完整的零值身份
			if sc.TraceID().IsValid() || sc.SpanID().IsValid() {
				t.Error("无效上下文泄漏了非零 ID")
			}
			if !sc.TraceState().Empty() {
				t.Error("无效上下文携带了 trace state")
			}
		}
	})
}

// FuzzExtract_TraceState 任意 tracestate 输入不得 panic，
// 接受的条目数不超过 32 且每条都满足语法。
func FuzzExtract_TraceState(f *testing.F) {
	f.Add("congo=congosSecondPosition,rojo=rojosFirstPosition")
	f.Add("foo=1,")
	f.Add(" , ,,")
	f.Add("1a-2f@foo=bar1,1a-_*/2b@foo=bar2")
	f.Add("foo=1,BAD=2")
	f.Add("a=\tb")
	f.Add(strings.Repeat("k=v,", 40))

	f.Fuzz(func(t *testing.T, header string) {
		carrier := map[string]string{
			"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-0102030405060708-01",
			"tracestate":  header,
		}
		ctx := fuzzFormat.Extract(mapGetter, carrier, context.Background())
		sc := xctx.SpanContextFromContext(ctx)

		// 坏的 tracestate 绝不能影响合法 traceparent
		if !sc.IsValid() {
			t.Fatal("tracestate 不得使合法 traceparent 失效")
		}

		state := sc.TraceState()
		if state.Len() > 32 {
			t.Errorf("条目数 = %d, 超过 32", state.Len())
		}
		for _, e := range state.Entries() {
			if !isValidEntry(e.Key, e.Value) {
				t.Errorf("非法条目穿透: %q=%q", e.Key, e.Value)
			}
		}
	})
}

func isValidEntry(key, value string) bool {
	return keyOK(key) && valueOK(value)
}

func keyOK(key string) bool {
	if key == "" || len(key) > 256 {
		return false
	}
	ats := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		lower := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if i == 0 && !lower {
			return false
		}
		switch {
		case lower || c == '_' || c == '-' || c == '*' || c == '/':
		case c == '@':
			ats++
			if ats > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func valueOK(value string) bool {
	if value == "" || len(value) > 256 {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < 0x20 || c > 0x7e || c == ',' || c == '=' {
			return false
		}
	}
	return true
}
