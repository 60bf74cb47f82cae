package dsl

import (
	"context"

	"github.com/go-viper/mapstructure/v2"

	rawdec "github.com/reoring/rawdec"
)

// Bind decodes a raw container into a caller-defined struct T: it runs the
// Object decode over fields and maps the resulting record onto T, matching
// `json` tags first and field names case-insensitively otherwise. Field
// failures behave exactly as in Object.
func Bind[T any](b *Bundle, fields Fields) rawdec.Decoder[T] {
	obj := Object(b, fields)
	return func(ctx context.Context, v any) (T, error) {
		var zero T
		rec, err := obj(ctx, v)
		if err != nil {
			return zero, err
		}
		var out T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &out,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return zero, rawdec.Issues{rawdec.Issue{Path: "/", Code: rawdec.CodeParseError, Message: err.Error(), Cause: err}}
		}
		if err := dec.Decode(rec); err != nil {
			return zero, rawdec.Issues{rawdec.Issue{Path: "/", Code: rawdec.CodeParseError, Message: err.Error(), Cause: err}}
		}
		return out, nil
	}
}
