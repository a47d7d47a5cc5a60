package repo_errors

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// UniqueViolationError is returned when an insert loses the race against another
// request for the same registration slot. Constraint carries the violated index name
// so the service layer can report the precise conflict.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique constraint violated: %s", e.Constraint)
}
