package structmap

import "fmt"

// MarshalError represents an error translating an instance to a document.
type MarshalError struct {
	FieldPath string // e.g. "cat.toys[2]"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("structmap: marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("structmap: marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error translating a document to an instance.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("structmap: unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("structmap: unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a document value whose type does not fit the
// target field.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.FieldPath != "" {
		return fmt.Sprintf("structmap: type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("structmap: type error: %s", msg)
}
