package egret

import "fmt"

// ErrorKind classifies fatal scanning and parsing failures.
type ErrorKind int

const (
	// ErrUnsupported marks constructs the dialect deliberately excludes:
	// escaped control characters, null bytes, backreferences, most (?...)
	// forms, wide hex escapes, \b inside a set.
	ErrUnsupported ErrorKind = iota
	// ErrMalformed marks input that ends or deviates where the grammar
	// requires more characters.
	ErrMalformed
	// ErrInvalidRange marks inverted ranges and ranges built from
	// character classes.
	ErrInvalidRange
	// ErrInvalidQuantifier marks {n,m} with n > m and zero-only repeats.
	ErrInvalidQuantifier
	// ErrInternal marks defects in the calling component, such as a
	// payload accessor invoked on the wrong token kind.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupported:
		return "unsupported construct"
	case ErrMalformed:
		return "malformed input"
	case ErrInvalidRange:
		return "invalid range"
	case ErrInvalidQuantifier:
		return "invalid quantifier"
	case ErrInternal:
		return "internal error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// RegexError is the single fatal diagnostic terminating a run.
type RegexError struct {
	Kind   ErrorKind
	Detail string
}

func (e *RegexError) Error() string {
	return e.Kind.String() + ": " + e.Detail
}

func unsupportedf(format string, args ...any) error {
	return &RegexError{Kind: ErrUnsupported, Detail: fmt.Sprintf(format, args...)}
}

func malformedf(format string, args ...any) error {
	return &RegexError{Kind: ErrMalformed, Detail: fmt.Sprintf(format, args...)}
}

func rangef(format string, args ...any) error {
	return &RegexError{Kind: ErrInvalidRange, Detail: fmt.Sprintf(format, args...)}
}

func quantifierf(format string, args ...any) error {
	return &RegexError{Kind: ErrInvalidQuantifier, Detail: fmt.Sprintf(format, args...)}
}
