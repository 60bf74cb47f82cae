package rawdec

import "context"

// Decoder validates and converts one raw, untyped value into one typed value,
// optionally substituting a construction-time default on failure. Decoders
// are stateless pure functions; the same decoder may be reused across
// arbitrarily many decode calls, sequentially or concurrently, without
// coordination.
type Decoder[T any] func(ctx context.Context, v any) (T, error)

// Factory produces a Decoder. Passing a default value selects the silent
// substitution behavior at decode time; presence is determined by whether an
// argument was supplied, not by its value, so Factory(zero) and Factory()
// build decoders with different failure behavior.
type Factory[T any] func(defaultValue ...T) Decoder[T]

// ErrorCallback receives each validation failure exactly once. A callback
// that returns normally swallows the failure (the decoder then yields its
// zero value); thread-safety of any side effects is the callback owner's
// responsibility.
type ErrorCallback func(err error)

// Config holds the error-reporting policy shared by every decoder built from
// the same bundle. It is immutable once constructed; deriving a differently
// configured decoder set means building a new Config, never mutating one.
//
// A nil ErrorCallback selects the default policy: validation failures are
// returned as Issues errors from the decode call.
type Config struct {
	ErrorCallback ErrorCallback
}
