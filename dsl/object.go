package dsl

import (
	"context"
	"sort"

	rawdec "github.com/reoring/rawdec"
)

// Fields maps output-field names to their raw-key/decoder pairs.
type Fields map[string]Field

// Field pairs the raw key to read with the decoder for one output field.
// Build values with F.
type Field struct {
	key string
	dec rawdec.Decoder[any]
}

// F declares one output field: read rawKey from the raw container and decode
// it with d.
func F[T any](rawKey string, d rawdec.Decoder[T]) Field {
	return Field{
		key: rawKey,
		dec: func(ctx context.Context, v any) (any, error) {
			tv, err := d(ctx, v)
			if err != nil {
				return nil, err
			}
			return tv, nil
		},
	}
}

// Object builds a record decoder from fields. For each declared output field
// the paired decoder receives raw[rawKey]; results are assembled into a new
// record keyed by the output-field names.
//
// The raw container itself is never type-checked: a non-map raw decodes
// every field from a missing value, so each field's own default/error policy
// governs the outcome. The container-level default parameter is accepted but
// not consulted at decode time. Field issues are re-rooted under /<rawKey>.
func Object(b *Bundle, fields Fields, defaultValue ...map[string]any) rawdec.Decoder[map[string]any] {
	// Deterministic field order keeps error reporting stable across runs.
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return func(ctx context.Context, v any) (map[string]any, error) {
		m, _ := v.(map[string]any)
		out := make(map[string]any, len(fields))
		for _, name := range names {
			f := fields[name]
			fv, err := f.dec(ctx, m[f.key])
			if err != nil {
				return nil, rawdec.PrefixIssues(err, "/"+f.key)
			}
			out[name] = fv
		}
		return out, nil
	}
}
