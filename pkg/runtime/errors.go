package runtime

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a value whose shape does not match what an
// operation expects, such as taking the head of nil or applying an integer.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Op == "" {
		return "invalid argument: " + e.Reason
	}
	return e.Op + ": invalid argument: " + e.Reason
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument formats an InvalidArgumentError for op.
func InvalidArgument(op, format string, args ...any) error {
	return &InvalidArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
