package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument reports an omitted required <id> argument.
	ErrMissingArgument = errors.New("missing <id> argument")
	// ErrNotANumber reports an <id> argument that does not parse as an integer.
	ErrNotANumber = errors.New("the <id> argument is not a number")
	// ErrQuit signals an orderly end of the session.
	ErrQuit = errors.New("quit")
)

// errNoSuchID is the uniform lookup failure shared by show, test, delete
// and edit.
func errNoSuchID(id int64) error {
	return fmt.Errorf("there is no quiz with id = %d", id)
}
