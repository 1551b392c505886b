package manifest

import "fmt"

// ErrorKind classifies configuration failures. Any ConfigError aborts the
// run before a single hook executes.
type ErrorKind string

const (
	MalformedDocument   ErrorKind = "malformed_document"
	MissingField        ErrorKind = "missing_field"
	DuplicateIdentifier ErrorKind = "duplicate_identifier"
)

// ConfigError is a fatal manifest validation failure.
type ConfigError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid manifest (%s): %s; %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("invalid manifest (%s): %s", e.Kind, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
