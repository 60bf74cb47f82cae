package dsl

import (
	"context"
	"fmt"
	"strconv"
	"time"

	rawdec "github.com/reoring/rawdec"
	"github.com/reoring/rawdec/i18n"
)

// Bool returns a boolean decoder. Validity accepts the loosely-typed truthy
// encodings form and query data carry: any raw whose text form is one of
// true/false/1/0/null/undefined. The decoded value is true for the literal
// true, the text "true" and the numeric value 1; everything else accepted as
// valid decodes to false.
func (b *Bundle) Bool(defaultValue ...bool) rawdec.Decoder[bool] {
	return rawdec.NewDecoder(b.cfg, boolSpec())(defaultValue...)
}

// Number returns a float64 decoder. Numeric strings are accepted; validity is
// "the text form of the raw reads as a number" (a blank string reads as 0).
func (b *Bundle) Number(defaultValue ...float64) rawdec.Decoder[float64] {
	return rawdec.NewDecoder(b.cfg, numberSpec())(defaultValue...)
}

// String returns a string decoder. Bools and numbers are accepted and
// rendered to text; containers, nil and everything else are rejected.
func (b *Bundle) String(defaultValue ...string) rawdec.Decoder[string] {
	return rawdec.NewDecoder(b.cfg, stringSpec())(defaultValue...)
}

// Date returns a time.Time decoder for ISO dates of the form YYYY-MM-DD,
// optionally followed by a T- or space-separated HH:MM:SS with an optional Z.
// The decoded value is midnight UTC of the matched day; time-of-day
// components are matched but discarded.
func (b *Bundle) Date(defaultValue ...time.Time) rawdec.Decoder[time.Time] {
	return rawdec.NewDecoder(b.cfg, dateSpec())(defaultValue...)
}

// LiteralOf returns a decoder accepting only the given literal, compared by
// strict dynamic type+value equality. It is a bespoke factory rather than a
// NewDecoder kind because the expected value is itself a factory parameter;
// its failure message embeds the runtime type and value of both sides.
func LiteralOf[T comparable](b *Bundle, want T, defaultValue ...T) rawdec.Decoder[T] {
	hasDefault := len(defaultValue) > 0
	var def T
	if hasDefault {
		def = defaultValue[0]
	}
	cfg := b.cfg
	return func(ctx context.Context, v any) (T, error) {
		if literalEqual(v, want) {
			return v.(T), nil
		}
		if hasDefault {
			return def, nil
		}
		var zero T
		expected := fmt.Sprintf("%T(%v)", want, want)
		got := fmt.Sprintf("%T(%v)", v, v)
		err := rawdec.Issues{rawdec.Issue{
			Path:    "/",
			Code:    rawdec.CodeInvalidLiteral,
			Message: rawdec.FormatMessage("Literal", i18n.T(rawdec.CodeInvalidLiteral, map[string]string{"expected": expected}), got),
			Params:  map[string]any{"expected": expected, "got": got},
		}}
		return zero, rawdec.Report(cfg, err)
	}
}

func boolSpec() rawdec.Spec[bool] {
	return rawdec.Spec[bool]{
		Kind: "Boolean",
		Code: rawdec.CodeInvalidBool,
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("Boolean", i18n.T(rawdec.CodeInvalidBool, nil), v)
		},
		IsValid: func(v any) bool {
			switch stringify(v) {
			case "true", "false", "1", "0", "null", "undefined":
				return true
			}
			return false
		},
		Parse: func(v any) bool {
			if v == true || stringify(v) == "true" {
				return true
			}
			f, ok := toNumber(v)
			return ok && f == 1
		},
	}
}

func numberSpec() rawdec.Spec[float64] {
	return rawdec.Spec[float64]{
		Kind: "Number",
		Code: rawdec.CodeInvalidNumber,
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("Number", i18n.T(rawdec.CodeInvalidNumber, nil), v)
		},
		IsValid: func(v any) bool {
			_, ok := toNumber(v)
			return ok
		},
		Parse: func(v any) float64 {
			f, _ := toNumber(v)
			return f
		},
	}
}

func stringSpec() rawdec.Spec[string] {
	return rawdec.Spec[string]{
		Kind: "String",
		Code: rawdec.CodeInvalidString,
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("String", i18n.T(rawdec.CodeInvalidString, nil), v)
		},
		IsValid: isTextual,
		Parse:   stringify,
	}
}

func dateSpec() rawdec.Spec[time.Time] {
	return rawdec.Spec[time.Time]{
		Kind: "Date",
		Code: rawdec.CodeInvalidDate,
		ErrorMsg: func(v any) string {
			return rawdec.FormatMessage("Date", i18n.T(rawdec.CodeInvalidDate, nil), v)
		},
		IsValid: func(v any) bool {
			return dateRe.MatchString(stringify(v))
		},
		Parse: func(v any) time.Time {
			m := dateRe.FindStringSubmatch(stringify(v))
			if m == nil {
				return time.Now()
			}
			year, err1 := strconv.Atoi(m[1])
			month, err2 := strconv.Atoi(m[2])
			day, err3 := strconv.Atoi(m[3])
			if err1 != nil || err2 != nil || err3 != nil {
				// A matched date that still fails conversion substitutes the
				// current time rather than failing the decode.
				return time.Now()
			}
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		},
	}
}
