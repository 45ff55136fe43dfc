package fixedbytes

import (
	"errors"
	"fmt"
)

// InvalidLengthError reports a byte sequence that cannot populate a fixed-size
// field. Found is the observed length.
type InvalidLengthError struct {
	Expected int
	Found    int
}

func (e *InvalidLengthError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid length: expected %d bytes, found %d", e.Expected, e.Found)
}

// IsInvalidLength reports whether err is (or wraps) an *InvalidLengthError.
func IsInvalidLength(err error) bool {
	var e *InvalidLengthError
	return errors.As(err, &e)
}
