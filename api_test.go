package rawdec_test

import (
	"context"
	"strings"
	"testing"

	rawdec "github.com/reoring/rawdec"
)

// evenSpec is a consumer-defined decoder kind used to exercise the generic
// factory plumbing.
func evenSpec() rawdec.Spec[int] {
	return rawdec.Spec[int]{
		Kind: "Even",
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("Even", "an even integer", v)
		},
		IsValid: func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		},
		Parse: func(v any) int { return v.(int) },
	}
}

func TestNewDecoder_DefaultPolicy(t *testing.T) {
	ctx := context.Background()
	d := rawdec.NewDecoder(rawdec.Config{}, evenSpec())()

	v, err := d(ctx, 4)
	if err != nil || v != 4 {
		t.Fatalf("decode ok expected, got v=%v err=%v", v, err)
	}

	_, err = d(ctx, 3)
	if err == nil {
		t.Fatalf("expected error for invalid raw")
	}
	iss, ok := rawdec.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected single Issues error, got %v", err)
	}
	if iss[0].Code != rawdec.CodeInvalidValue {
		t.Fatalf("expected invalid_value, got %v", iss[0].Code)
	}
	if !strings.Contains(iss[0].Message, "Even Decoder: Expected raw value to be an even integer but got: 3.") {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}

func TestNewDecoder_Callback(t *testing.T) {
	ctx := context.Background()
	calls := 0
	cfg := rawdec.Config{ErrorCallback: func(err error) {
		calls++
		if _, ok := rawdec.AsIssues(err); !ok {
			t.Fatalf("callback expected Issues, got %v", err)
		}
	}}
	d := rawdec.NewDecoder(cfg, evenSpec())()

	v, err := d(ctx, 3)
	if err != nil {
		t.Fatalf("callback policy must swallow the error, got %v", err)
	}
	if v != 0 {
		t.Fatalf("expected zero value on failure, got %v", v)
	}
	if calls != 1 {
		t.Fatalf("expected callback exactly once, got %d", calls)
	}

	if _, err := d(ctx, 4); err != nil || calls != 1 {
		t.Fatalf("valid raw must not touch the callback (calls=%d err=%v)", calls, err)
	}
}

func TestNewDecoder_DefaultValue(t *testing.T) {
	ctx := context.Background()
	calls := 0
	cfg := rawdec.Config{ErrorCallback: func(error) { calls++ }}

	// The default is the zero value on purpose: presence of the argument, not
	// its value, selects the silent substitution behavior.
	d := rawdec.NewDecoder(cfg, evenSpec())(0)
	v, err := d(ctx, 3)
	if err != nil || v != 0 {
		t.Fatalf("expected silent default, got v=%v err=%v", v, err)
	}
	if calls != 0 {
		t.Fatalf("default substitution must not invoke the callback, got %d calls", calls)
	}

	d2 := rawdec.NewDecoder(cfg, evenSpec())(42)
	if v, _ := d2(ctx, 3); v != 42 {
		t.Fatalf("expected default 42, got %v", v)
	}
	if v, _ := d2(ctx, 8); v != 8 {
		t.Fatalf("valid raw must bypass the default, got %v", v)
	}
}

func TestNewDecoder_ParsePanicPropagates(t *testing.T) {
	ctx := context.Background()
	sp := rawdec.Spec[int]{
		Kind:    "Boom",
		IsValid: func(any) bool { return true },
		Parse:   func(any) int { panic("parse exploded") },
	}
	// Parse is not guarded: a panicking parse must reach the decode caller,
	// whatever the configured policy.
	for _, cfg := range []rawdec.Config{
		{},
		{ErrorCallback: func(error) {}},
	} {
		d := rawdec.NewDecoder(cfg, sp)()
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("expected panic from Parse to propagate")
				}
			}()
			_, _ = d(ctx, 1)
		}()
	}
}

func TestReport(t *testing.T) {
	err := rawdec.Issues{{Path: "/", Code: rawdec.CodeInvalidValue}}

	if got := rawdec.Report(rawdec.Config{}, err); got == nil {
		t.Fatalf("default policy must return the error")
	}
	if got := rawdec.Report(rawdec.Config{}, nil); got != nil {
		t.Fatalf("nil error must pass through, got %v", got)
	}

	seen := 0
	cfg := rawdec.Config{ErrorCallback: func(error) { seen++ }}
	if got := rawdec.Report(cfg, err); got != nil || seen != 1 {
		t.Fatalf("callback policy must consume the error (seen=%d got=%v)", seen, got)
	}
}
