package catalog

import (
	"errors"
	"strings"
)

// ErrNotFound reports that no quiz exists for the given id.
var ErrNotFound = errors.New("quiz not found")

// ValidationError rejects a create or update, one message per violated rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid quiz: " + strings.Join(e.Messages, "; ")
}

// AsValidation unwraps err into a ValidationError, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
