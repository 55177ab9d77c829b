package colourarg

import "fmt"

// ErrorKind identifies the category of an Error.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindColourArgRequired means no colour arguments were given and stdin is
	// an interactive terminal.
	KindColourArgRequired
	// KindColourParse means a string didn't match any known colour syntax.
	KindColourParse
	// KindCouldNotReadStdin means stdin was exhausted or failed before a line
	// could be read.
	KindCouldNotReadStdin
	// KindInvalidUTF8 means a line read from stdin wasn't valid UTF-8.
	KindInvalidUTF8
	// KindCouldNotParseNumber means a numeric argument couldn't be parsed.
	KindCouldNotParseNumber
)

func (k ErrorKind) String() string {
	switch k {
	case KindColourArgRequired:
		return "colour-arg-required"
	case KindColourParse:
		return "colour-parse"
	case KindCouldNotReadStdin:
		return "stdin-read"
	case KindInvalidUTF8:
		return "invalid-utf8"
	case KindCouldNotParseNumber:
		return "number-parse"
	default:
		return "unknown"
	}
}

// Error is returned by everything in this package.
type Error struct {
	Kind ErrorKind
	// Text is the offending input for KindColourParse and
	// KindCouldNotParseNumber.
	Text string
	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for use with errors.Is. Any Error of the same kind matches; Text
// is only compared when the target has one.
var (
	ErrColourArgRequired   = &Error{Kind: KindColourArgRequired}
	ErrColourParse         = &Error{Kind: KindColourParse}
	ErrCouldNotReadStdin   = &Error{Kind: KindCouldNotReadStdin}
	ErrInvalidUTF8         = &Error{Kind: KindInvalidUTF8}
	ErrCouldNotParseNumber = &Error{Kind: KindCouldNotParseNumber}
)

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindColourArgRequired:
		msg = "a colour argument needs to be provided on the command line " +
			"or via a pipe"
	case KindColourParse:
		msg = fmt.Sprintf("could not parse colour '%s'", e.Text)
	case KindCouldNotReadStdin:
		msg = "could not read colour from standard input"
	case KindInvalidUTF8:
		msg = "colour input contains invalid UTF-8"
	case KindCouldNotParseNumber:
		msg = fmt.Sprintf("could not parse number '%s'", e.Text)
	default:
		msg = "unknown colour argument error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Text == "" || t.Text == e.Text)
}
