// file: envx/errors.go
package envx

import (
	"errors"
	"fmt"
)

// Failure kinds, matched with errors.Is.
var (
	// ErrNotSet reports that a variable has no value in the environment.
	ErrNotSet = errors.New("not set")
	// ErrParse reports that a variable is set but its value cannot be
	// converted to the requested type.
	ErrParse = errors.New("unparseable value")
)

// Error describes a failed lookup or conversion of a single variable.
type Error struct {
	Key   string // variable name
	Value string // raw value, set on parse failures only
	Err   error  // ErrNotSet or ErrParse
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotSet):
		return fmt.Sprintf("environment variable %s is not set", e.Key)
	case errors.Is(e.Err, ErrParse):
		return fmt.Sprintf("parse environment variable %s: invalid value %q", e.Key, e.Value)
	}
	return fmt.Sprintf("environment variable %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func notSet(key string) error {
	return &Error{Key: key, Err: ErrNotSet}
}

func unparseable(key, value string) error {
	return &Error{Key: key, Value: value, Err: ErrParse}
}
