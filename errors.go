package viewq

import (
	"errors"
	"fmt"
)

// categorical validation failures - every error returned by Assign, New or
// FromPairs wraps exactly one of these (match with errors.Is)
var (
	ErrNameEmpty        = errors.New("option name is empty")
	ErrNameType         = errors.New("option name must be a string or a Param")
	ErrValueEmpty       = errors.New("option value is empty")
	ErrValueType        = errors.New("option value must be a string, an int or a bool")
	ErrUnknownOption    = errors.New("unrecognized option")
	ErrPassthroughParam = errors.New("passthrough requires a string option name")
	ErrBoolValue        = errors.New("value must be \"true\" or \"false\"")
	ErrNumberEmpty      = errors.New("numeric value is empty")
	ErrNumberMalformed  = errors.New("value must be a signed decimal number")
	ErrStringValue      = errors.New("option requires a string value")
	ErrStaleValue       = errors.New("value must be a boolean, \"ok\" or \"update_after\"")
	ErrOnErrorValue     = errors.New("value must be \"stop\" or \"continue\"")
	ErrNoPairs          = errors.New("no name/value pairs")
	ErrOddPairs         = errors.New("odd number of name/value arguments")
)

// OptionError is the error type returned for any option validation failure -
// it names the offending option (where one is known) and wraps the
// categorical cause
type OptionError struct {
	Option string
	Err    error
}

var _ error = (*OptionError)(nil)

func (e *OptionError) Error() string {
	if e.Option == "" {
		return "view option: " + e.Err.Error()
	}
	return fmt.Sprintf("view option %q: %s", e.Option, e.Err.Error())
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

func newOptionError(option string, cause error) error {
	return &OptionError{
		Option: option,
		Err:    cause,
	}
}
