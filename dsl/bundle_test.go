package dsl_test

import (
	"context"
	"testing"

	rawdec "github.com/reoring/rawdec"
	"github.com/reoring/rawdec/dsl"
)

func TestConfig_DerivesFreshBundle(t *testing.T) {
	ctx := context.Background()
	b1 := dsl.Configure()

	calls := 0
	b2 := b1.Config(rawdec.Config{ErrorCallback: func(error) { calls++ }})

	// The derived bundle swallows failures through its callback.
	if v, err := b2.Number()(ctx, "abc"); err != nil || v != 0 || calls != 1 {
		t.Fatalf("derived bundle: v=%v err=%v calls=%d", v, err, calls)
	}

	// The parent bundle keeps the default policy.
	if _, err := b1.Number()(ctx, "abc"); err == nil {
		t.Fatalf("parent bundle must keep returning errors")
	}
	if calls != 1 {
		t.Fatalf("parent decode must not reach the derived callback, calls=%d", calls)
	}

	// Deriving with no arguments restores the default policy.
	if _, err := b2.Config().Number()(ctx, "abc"); err == nil {
		t.Fatalf("re-derived bundle must use the default policy")
	}
}

func TestCreateDecoder_ConsumerKind(t *testing.T) {
	ctx := context.Background()
	d := dsl.Configure()

	hexFactory := dsl.CreateDecoder(d, rawdec.Spec[string]{
		Kind: "Hex",
		Code: rawdec.CodeInvalidString,
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("Hex", "a #-prefixed color", v)
		},
		IsValid: func(v any) bool {
			s, ok := v.(string)
			return ok && len(s) == 7 && s[0] == '#'
		},
		Parse: func(v any) string { return v.(string) },
	})

	if v, err := hexFactory()(ctx, "#00ff00"); err != nil || v != "#00ff00" {
		t.Fatalf("hex ok: v=%v err=%v", v, err)
	}
	if _, err := hexFactory()(ctx, "green"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
	if v, err := hexFactory("#000000")(ctx, "green"); err != nil || v != "#000000" {
		t.Fatalf("default must substitute: v=%v err=%v", v, err)
	}
}
