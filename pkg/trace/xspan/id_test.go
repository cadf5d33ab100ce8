package xspan_test

import (
	"errors"
	"testing"

	"github.com/omeyang/tracekit/pkg/trace/xspan"
)

// =============================================================================
// TraceID / SpanID 测试
// =============================================================================

func TestTraceIDFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"合法ID", "4bf92f3577b34da6a3ce929d0e0e4736", false},
		{"全零解析成功", "00000000000000000000000000000000", false},
		{"长度过短", "4bf92f3577b34da6", true},
		{"长度过长", "4bf92f3577b34da6a3ce929d0e0e473600", true},
		{"大写拒绝", "4BF92F3577B34DA6A3CE929D0E0E4736", true},
		{"非十六进制", "4bf92f3577b34da6a3ce929d0e0e473g", true},
		{"空串", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := xspan.TraceIDFromHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, xspan.ErrInvalidTraceID) {
					t.Fatalf("TraceIDFromHex(%q) error = %v, want ErrInvalidTraceID", tt.input, err)
				}
				if id != (xspan.TraceID{}) {
					t.Errorf("TraceIDFromHex(%q) id = %v, want zero", tt.input, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("TraceIDFromHex(%q) error = %v", tt.input, err)
			}
			if got := id.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestTraceID_IsValid(t *testing.T) {
	if (xspan.TraceID{}).IsValid() {
		t.Error("zero TraceID IsValid() = true")
	}
	id, _ := xspan.TraceIDFromHex("00000000000000000000000000000001")
	if !id.IsValid() {
		t.Error("nonzero TraceID IsValid() = false")
	}
}

func TestTraceID_String_LeadingZeros(t *testing.T) {
	id := xspan.TraceID{0: 0x00, 15: 0x01}
	if got := id.String(); got != "00000000000000000000000000000001" {
		t.Errorf("String() = %q, want leading zeros preserved", got)
	}
}

func TestSpanIDFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"合法ID", "0102030405060708", false},
		{"全零解析成功", "0000000000000000", false},
		{"长度不符", "01020304", true},
		{"大写拒绝", "010203040506070A", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := xspan.SpanIDFromHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, xspan.ErrInvalidSpanID) {
					t.Fatalf("SpanIDFromHex(%q) error = %v, want ErrInvalidSpanID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SpanIDFromHex(%q) error = %v", tt.input, err)
			}
			if got := id.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestSpanID_IsValid(t *testing.T) {
	if (xspan.SpanID{}).IsValid() {
		t.Error("zero SpanID IsValid() = true")
	}
	id, _ := xspan.SpanIDFromHex("0000000000000001")
	if !id.IsValid() {
		t.Error("nonzero SpanID IsValid() = false")
	}
}

// =============================================================================
// TraceFlags 测试
// =============================================================================

func TestTraceFlags(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    xspan.TraceFlags
		sampled bool
		wantErr bool
	}{
		{"未采样", "00", 0x00, false, false},
		{"已采样", "01", 0x01, true, false},
		{"保留位保留", "ff", 0xff, true, false},
		{"保留位未采样", "fe", 0xfe, false, false},
		{"大写拒绝", "FF", 0, false, true},
		{"长度不符", "0", 0, false, true},
		{"过长", "001", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := xspan.TraceFlagsFromHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, xspan.ErrInvalidTraceFlags) {
					t.Fatalf("TraceFlagsFromHex(%q) error = %v, want ErrInvalidTraceFlags", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TraceFlagsFromHex(%q) error = %v", tt.input, err)
			}
			if flags != tt.want {
				t.Errorf("TraceFlagsFromHex(%q) = %#x, want %#x", tt.input, flags, tt.want)
			}
			if flags.Sampled() != tt.sampled {
				t.Errorf("Sampled() = %v, want %v", flags.Sampled(), tt.sampled)
			}
			if got := flags.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}
