package rawdec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidBool    = "invalid_bool"
	CodeInvalidNumber  = "invalid_number"
	CodeInvalidString  = "invalid_string"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidLiteral = "invalid_literal"
	CodeInvalidArray   = "invalid_array"
	// Generic validation failure for consumer-defined decoder kinds.
	CodeInvalidValue = "invalid_value"
	// Malformed input at the ingestion boundary (JSON/YAML syntax errors).
	CodeParseError = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"GET", "got":"POST"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Message != "" {
			fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
			continue
		}
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// FormatMessage renders the canonical failure message for a decoder kind:
//
//	"<Kind> Decoder: Expected raw value to be <expectation> but got: <raw>."
func FormatMessage(kind, expectation string, raw any) string {
	return fmt.Sprintf("%s Decoder: Expected raw value to be %s but got: %v.", kind, expectation, raw)
}

// PrefixIssues re-roots the paths of an Issues error under base, so composite
// decoders can address failures inside elements and fields (/2, /price/...).
// Non-Issues errors are wrapped into a single parse_error at base.
func PrefixIssues(err error, base string) error {
	if err == nil {
		return nil
	}
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}
