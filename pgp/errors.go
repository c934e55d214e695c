package pgp

import (
	"errors"
	"fmt"
)

var (
	// ErrValueRange is returned when a value does not fit in the bit width it
	// is being written into.
	ErrValueRange = errors.New("value too large for bit width")

	// ErrBoundary is returned when a write would straddle a byte boundary, or
	// would run past the end of the caller's output buffer.
	ErrBoundary = errors.New("write crosses encoder boundary")

	// ErrFormat is returned when encoded data is structurally invalid: truncated
	// input, trailing bytes in a bounded region, or unrecognized enumerants.
	ErrFormat = errors.New("malformed signature data")

	// ErrSigning is returned when the signing provider fails to produce a signature.
	ErrSigning = errors.New("signing failed")
)

// FieldError annotates one of the sentinel errors above with the name of the
// field being encoded or decoded when it occurred.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldErrorf wraps sentinel in a FieldError, with extra formatted detail.
func fieldErrorf(field string, sentinel error, format string, args ...any) error {
	return &FieldError{
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}

// withField prefixes the field of err if it is a FieldError, or wraps
// it in a new FieldError otherwise.
func withField(field string, err error) error {
	if err == nil {
		return nil
	}
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return &FieldError{Field: field + "." + fieldErr.Field, Err: fieldErr.Err}
	}
	return &FieldError{Field: field, Err: err}
}
