package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissing       Kind = "missing"
	KindCoercion      Kind = "coercion"
	KindUnknown       Kind = "unknown"
	KindConfiguration Kind = "configuration"
	KindConstraint    Kind = "constraint"
)

var (
	// ErrMissingField is matched by failures for required fields that were absent.
	ErrMissingField = errors.New("field required")
	// ErrTypeCoercion is matched by failures where a value could not be converted to the declared type.
	ErrTypeCoercion = errors.New("type coercion failed")
	// ErrUnknownField is matched by failures for undeclared fields on closed objects.
	ErrUnknownField = errors.New("unknown field")
	// ErrConfiguration is matched by errors in the schema declaration itself.
	ErrConfiguration = errors.New("schema configuration error")
	// ErrConstraint is matched by failures of cross-field checks.
	ErrConstraint = errors.New("constraint violated")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissing:
		return ErrMissingField
	case KindUnknown:
		return ErrUnknownField
	case KindConfiguration:
		return ErrConfiguration
	case KindConstraint:
		return ErrConstraint
	default:
		return ErrTypeCoercion
	}
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key      string // Path of the field, e.g. "items[2].latitude"
	Kind     Kind
	Reason   string // Human-readable reason for failure
	Value    any    // The value that failed validation
	Expected string // Name of the declared type, when relevant
}

func (e *ValidationError) Error() string {
	key := e.Key
	if key == "" {
		key = "(root)"
	}
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", key, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Kind.sentinel() }

// Missing builds the failure reported for an absent required field.
func Missing(key string) *ValidationError {
	return &ValidationError{Key: key, Kind: KindMissing, Reason: "field required"}
}

// Unknown builds the failure reported for an undeclared field on a closed object.
func Unknown(key string, value any) *ValidationError {
	return &ValidationError{Key: key, Kind: KindUnknown, Reason: "extra fields not permitted", Value: value}
}

// Violation builds a constraint failure for a cross-field check.
func Violation(key, reason string, value any) *ValidationError {
	return &ValidationError{Key: key, Kind: KindConstraint, Reason: reason, Value: value}
}

func coercionError(expected string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:     KindCoercion,
		Reason:   fmt.Sprintf(format, args...),
		Value:    value,
		Expected: expected,
	}
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// Fields returns the distinct field paths that failed, in report order.
func (e *AggregateError) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, ve := range e.Failures() {
		if !seen[ve.Key] {
			fields = append(fields, ve.Key)
			seen[ve.Key] = true
		}
	}
	return fields
}

// Has reports whether the field at path failed.
func (e *AggregateError) Has(path string) bool {
	return len(e.Get(path)) > 0
}

// Get returns the failures recorded for the field at path.
func (e *AggregateError) Get(path string) []*ValidationError {
	var out []*ValidationError
	for _, ve := range e.Failures() {
		if ve.Key == path {
			out = append(out, ve)
		}
	}
	return out
}

// Failures returns every *ValidationError held by the aggregate.
func (e *AggregateError) Failures() []*ValidationError {
	out := make([]*ValidationError, 0, len(e.Errors))
	for _, err := range e.Errors {
		var ve *ValidationError
		if errors.As(err, &ve) {
			out = append(out, ve)
		}
	}
	return out
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// ConfigurationError reports a schema that was declared incorrectly, such as a
// typed array without an element type. It surfaces while the schema is built,
// never while data is validated.
type ConfigurationError struct {
	Type   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("schema: type %q: %s", e.Type, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// joinPath appends child to parent using dotted field and bracketed index notation.
func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

// prefixed re-roots every failure in err under prefix.
func prefixed(prefix string, err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		out := make([]error, 0, len(aggr.Errors))
		for _, inner := range aggr.Errors {
			out = append(out, prefixed(prefix, inner)...)
		}
		return out
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		cp := *ve
		cp.Key = joinPath(prefix, ve.Key)
		return []error{&cp}
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return []error{&ValidationError{Key: prefix, Kind: KindConfiguration, Reason: ce.Error()}}
	}
	return []error{&ValidationError{Key: prefix, Kind: KindCoercion, Reason: err.Error()}}
}
