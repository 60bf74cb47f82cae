package dsl

import (
	"context"
	"strconv"

	rawdec "github.com/reoring/rawdec"
	"github.com/reoring/rawdec/i18n"
)

// Array returns a decoder for arrays of elem's type. Every element is mapped
// through elem independently; a failing element follows the element
// decoder's own default/error policy, not the array's, and element issues
// are re-rooted under /<index>. A non-array raw follows the array decoder's
// policy: with a default it is substituted silently, without one the failure
// is reported through the configured callback or returned.
func Array[E any](b *Bundle, elem rawdec.Decoder[E], defaultValue ...[]E) rawdec.Decoder[[]E] {
	hasDefault := len(defaultValue) > 0
	var def []E
	if hasDefault {
		def = defaultValue[0]
	}
	cfg := b.cfg
	return func(ctx context.Context, v any) ([]E, error) {
		switch src := v.(type) {
		case []any:
			out := make([]E, 0, len(src))
			for i := range src {
				ev, err := elem(ctx, src[i])
				if err != nil {
					return nil, rawdec.PrefixIssues(err, "/"+strconv.Itoa(i))
				}
				out = append(out, ev)
			}
			return out, nil
		case []E:
			// Already-typed input still runs through elem so the decode is
			// idempotent with the untyped form.
			out := make([]E, 0, len(src))
			for i := range src {
				ev, err := elem(ctx, any(src[i]))
				if err != nil {
					return nil, rawdec.PrefixIssues(err, "/"+strconv.Itoa(i))
				}
				out = append(out, ev)
			}
			return out, nil
		default:
			if hasDefault {
				return def, nil
			}
			err := rawdec.Issues{rawdec.Issue{
				Path:    "/",
				Code:    rawdec.CodeInvalidArray,
				Message: rawdec.FormatMessage("Array", i18n.T(rawdec.CodeInvalidArray, nil), v),
			}}
			return nil, rawdec.Report(cfg, err)
		}
	}
}
