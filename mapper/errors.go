package mapper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAttributeNotFound is returned when a module has no stored value with the requested name.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrUnknownCode is returned in strict mode when a stored code has no label in its domain.
	ErrUnknownCode = errors.New("unknown code")

	// ErrNotInteger is returned when a numeric attribute receives a value that is not an integer.
	ErrNotInteger = errors.New("not an integer")

	// ErrMalformedFile is returned when a settings file is not a JSON object.
	ErrMalformedFile = errors.New("malformed settings file")
)

// InvalidValueError rejects a label outside the attribute's domain.
type InvalidValueError struct {
	Attr  string
	Value string
	Valid []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf(
		"value %q for attr %q is not valid, available options: %s",
		e.Value, e.Attr, strings.Join(e.Valid, ", "),
	)
}
