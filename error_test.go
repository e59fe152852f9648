package ngram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "configuration", err: fmt.Errorf("%w: bad", ErrInvalidConfiguration), want: "InvalidConfiguration"},
		{name: "malformed", err: malformed("missing"), want: "MalformedInput"},
		{name: "encoding", err: &EncodingError{Offset: 1, Reason: "bad"}, want: "EncodingError"},
		{name: "line", err: &LineError{Line: 2, Err: malformed("x")}, want: "MalformedInput"},
		{name: "combined encoding", err: &CombinedError{Message: "skipped lines", Errors: []error{
			&LineError{Line: 2, Err: &EncodingError{Offset: 12, Reason: "bad"}},
		}}, want: "EncodingError"},
		{name: "combined malformed", err: &CombinedError{Message: "skipped lines", Errors: []error{
			&LineError{Line: 4, Err: malformed("x")},
		}}, want: "MalformedInput"},
		{name: "other", err: errors.New("boom"), want: ""},
		{name: "nil", err: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestCombinedError(t *testing.T) {
	combined := &CombinedError{Message: "skipped lines"}
	assert.Nil(t, combined.errorOrNil())

	combined.append(&LineError{Line: 3, Err: malformed(`"text" field is missing`)})
	combined.append(&LineError{Line: 7, Err: &EncodingError{Offset: 9, Reason: "invalid UTF-8 byte sequence"}})
	err := combined.errorOrNil()
	assert.Equal(t, `skipped lines: line 3: malformed input: "text" field is missing, line 7: encoding error at byte 9: invalid UTF-8 byte sequence`, err.Error())
}

func TestCombinedError_Unwrap(t *testing.T) {
	combined := &CombinedError{Message: "skipped lines"}
	combined.append(&LineError{Line: 2, Err: &EncodingError{Offset: 12, Reason: "bad"}})
	err := combined.errorOrNil()

	assert.True(t, errors.Is(err, ErrEncoding))
	assert.False(t, errors.Is(err, ErrMalformedInput))
	var lineErr *LineError
	assert.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
}
