package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// stringify renders a raw value the way loosely-typed hosts do: nil becomes
// "null", numbers use their shortest form, everything else its natural text.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toNumber coerces v through its text form into a float64. A blank string
// coerces to 0; anything that does not read as a number is rejected. The
// loose host's Number(...) never yields NaN for a value it accepts and spells
// infinity exactly "Infinity", so ParseFloat's wider acceptances (NaN, Inf
// case-variants, digit underscores, hex floats) are screened out.
func toNumber(v any) (float64, bool) {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	// Valid decimal/scientific text never contains these runes.
	if strings.ContainsAny(s, "_xXnN") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isTextual reports whether v is a bool, a numeric value or a string.
func isTextual(v any) bool {
	switch v.(type) {
	case bool, string, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return true
	}
	return false
}

// literalEqual compares a raw value against a typed literal with strict
// dynamic type+value equality. Raws of non-comparable dynamic type compare
// unequal instead of panicking.
func literalEqual[T comparable](v any, want T) bool {
	if v == nil {
		return any(want) == nil
	}
	if !reflect.TypeOf(v).Comparable() {
		return false
	}
	return v == any(want)
}

// dateRe matches YYYY-MM-DD optionally followed by a T- or space-separated
// HH:MM:SS and an optional trailing Z. Time-of-day groups are matched but
// discarded by the date decoder.
var dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2}):(\d{2})Z?)?$`)
