package rawdec

import "context"

// Spec describes a decoder kind for NewDecoder: a validity predicate, a parse
// function, and an error-message formatter. Kind and Code label the issues
// produced on failure; Code falls back to CodeInvalidValue when empty.
type Spec[T any] struct {
	Kind     string
	Code     string
	ErrorMsg func(v any) string
	IsValid  func(v any) bool
	Parse    func(v any) T
}

// NewDecoder is the generic decoder factory. It returns a Factory that
// closes over nothing but cfg and sp; the produced decoders honor the
// configured error policy and an optional construction-time default:
//
//   - valid raw: Parse(v) is returned unconditionally. Parse is not guarded;
//     a panicking Parse propagates to the caller.
//   - invalid raw, default supplied: the default is substituted silently.
//     The error callback is never invoked, even when the default is the
//     zero value of T.
//   - invalid raw, no default: an Issues error built from ErrorMsg(v) is
//     reported exactly once. With a configured ErrorCallback the callback
//     consumes it and the decoder yields the zero value with a nil error;
//     under the default policy the error is returned.
func NewDecoder[T any](cfg Config, sp Spec[T]) Factory[T] {
	code := sp.Code
	if code == "" {
		code = CodeInvalidValue
	}
	return func(defaultValue ...T) Decoder[T] {
		hasDefault := len(defaultValue) > 0
		var def T
		if hasDefault {
			def = defaultValue[0]
		}
		return func(ctx context.Context, v any) (T, error) {
			if sp.IsValid(v) {
				return sp.Parse(v), nil
			}
			if hasDefault {
				return def, nil
			}
			var zero T
			msg := ""
			if sp.ErrorMsg != nil {
				msg = sp.ErrorMsg(v)
			}
			return zero, Report(cfg, singleIssue(code, msg))
		}
	}
}

// Report applies the configured error policy to a validation failure: a
// configured callback consumes err (the returned error is then nil), the
// default policy hands err back to the decode caller. Decoder factories
// outside this package use Report to stay consistent with NewDecoder.
func Report(cfg Config, err error) error {
	if err == nil {
		return nil
	}
	if cfg.ErrorCallback != nil {
		cfg.ErrorCallback(err)
		return nil
	}
	return err
}
