package currency

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("currency: malformed input")

	// Wrapped by a MalformedInputError when the payload, a key or a value
	// is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// MalformedInputError is returned when a payload is not valid JSON,
// or when it is not an object whose values are all strings.
type MalformedInputError struct {
	// HasKey reports whether the error concerns a single entry of the
	// document. If false, the document as a whole is malformed.
	HasKey bool

	// Key of the offending entry. Only meaningful if HasKey is true;
	// the empty string is a valid key.
	Key string

	// JSON kind found instead of a string value (or instead of an object,
	// if HasKey is false): "null", "boolean", "number", "string", "array" or "object".
	// Empty if the payload couldn't be parsed or isn't valid UTF-8.
	Kind string

	err error
}

func newEntryError(key, kind string, err error) *MalformedInputError {
	return &MalformedInputError{HasKey: true, Key: key, Kind: kind, err: err}
}

func newDocumentError(kind string, err error) *MalformedInputError {
	return &MalformedInputError{Kind: kind, err: err}
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.HasKey && e.Kind != "":
		return fmt.Sprintf("currency: malformed input: value of %q is %s, expected string", e.Key, e.Kind)
	case e.HasKey && e.err != nil:
		return fmt.Sprintf("currency: malformed input: entry %q: %v", e.Key, e.err)
	case e.HasKey:
		return fmt.Sprintf("currency: malformed input: entry %q", e.Key)
	case e.Kind != "":
		return fmt.Sprintf("currency: malformed input: document is %s, expected object", e.Kind)
	case e.err != nil:
		return "currency: malformed input: " + e.err.Error()
	}
	return ErrMalformedInput.Error()
}

func (e *MalformedInputError) Unwrap() error {
	return e.err
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
