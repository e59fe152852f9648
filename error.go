package ngram

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned by NewTokenizer for bad arguments.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrMalformedInput is returned when a line is not a document record.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEncoding is returned when text is not valid UTF-8.
	ErrEncoding = errors.New("encoding error")
)

// EncodingError reports the first invalid UTF-8 sequence or lone surrogate escape.
type EncodingError struct {
	Offset int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error at byte %d: %s", e.Offset, e.Reason)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// LineError is a failure of one line of a JSONL stream. Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

func (l *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", l.Line, l.Err.Error())
}

func (l *LineError) Unwrap() error {
	return l.Err
}

type CombinedError struct {
	Message string
	Errors  []error
}

func (c *CombinedError) append(err error) {
	c.Errors = append(c.Errors, err)
}

// errorOrNil returns nil unless at least one error was collected.
func (c *CombinedError) errorOrNil() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (c CombinedError) Unwrap() []error {
	return c.Errors
}

func (c CombinedError) Error() string {
	var result []string
	for _, err := range c.Errors {
		result = append(result, err.Error())
	}
	return fmt.Sprintf("%s: %s", c.Message, strings.Join(result, ", "))
}

// ErrorKind names the taxonomy entry of err: "InvalidConfiguration",
// "MalformedInput", "EncodingError", or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidConfiguration):
		return "InvalidConfiguration"
	case errors.Is(err, ErrEncoding):
		return "EncodingError"
	case errors.Is(err, ErrMalformedInput):
		return "MalformedInput"
	}
	return ""
}
