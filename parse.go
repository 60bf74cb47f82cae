package rawdec

import (
	"bytes"
	"context"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses data as a JSON document and runs d over the resulting
// untyped value tree. Numbers are surfaced as json.Number so no precision is
// lost before the decoder's own coercion rules apply. Malformed JSON is
// reported as a parse_error issue; validation failures follow the decoder's
// configured policy.
func DecodeJSON[T any](ctx context.Context, d Decoder[T], data []byte) (T, error) {
	return DecodeJSONReader(ctx, d, bytes.NewReader(data))
}

// DecodeJSONReader is DecodeJSON over an io.Reader.
func DecodeJSONReader[T any](ctx context.Context, d Decoder[T], r io.Reader) (T, error) {
	var zero T
	if d == nil {
		return zero, singleIssue(CodeParseError, "nil decoder")
	}
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return d(ctx, v)
}

// DecodeYAML parses data as a YAML document and runs d over the result.
// YAML scalars arrive as native Go values (int, float64, bool, string); the
// primitive decoders' coercions accept all of them.
func DecodeYAML[T any](ctx context.Context, d Decoder[T], data []byte) (T, error) {
	var zero T
	if d == nil {
		return zero, singleIssue(CodeParseError, "nil decoder")
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return d(ctx, v)
}
