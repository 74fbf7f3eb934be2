package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Field declares one member of an Object.
type Field struct {
	Name     string
	Type     Type
	Required bool
	// Default produces the value of an absent optional field. It is called
	// once per validation so every result owns its default. Nil leaves the
	// field absent.
	Default     func() any
	Description string
}

// Check is a cross-field rule run after every field of an object validated.
// It returns nil, a *ValidationError or an *AggregateError.
type Check func(r Record) error

// Record is the validated content of an object, handed to its checks.
type Record struct {
	values   map[string]any
	supplied map[string]bool
}

// Get returns the canonical value of a field, including defaults.
func (r Record) Get(name string) any { return r.values[name] }

// Supplied reports whether the caller provided the field (as opposed to a default).
func (r Record) Supplied(name string) bool { return r.supplied[name] }

// Lookup returns the value of a field converted to V.
func Lookup[V any](r Record, name string) (V, bool) {
	v, ok := r.values[name].(V)
	return v, ok
}

// Object validates string-keyed records against a fixed set of fields.
// Objects are closed unless built with AllowExtra.
type Object struct {
	name        string
	description string
	fields      []Field
	index       map[string]int
	open        bool
	checks      []Check
}

// ObjectOption configures an Object.
type ObjectOption func(*Object)

// AllowExtra marks the object open: undeclared keys are kept verbatim
// instead of being rejected.
func AllowExtra() ObjectOption {
	return func(o *Object) { o.open = true }
}

// WithCheck registers a cross-field rule.
func WithCheck(c Check) ObjectOption {
	return func(o *Object) { o.checks = append(o.checks, c) }
}

// WithDescription documents the object.
func WithDescription(d string) ObjectOption {
	return func(o *Object) { o.description = d }
}

// NewObject declares an object. Declaration problems such as duplicate
// names or a typed array without an element type are returned here as
// errors matching ErrConfiguration.
func NewObject(name string, fields []Field, opts ...ObjectOption) (*Object, error) {
	o := &Object{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for _, opt := range opts {
		opt(o)
	}

	var errs []error
	for i, f := range o.fields {
		if f.Name == "" {
			errs = append(errs, &ConfigurationError{Type: name, Reason: fmt.Sprintf("field %d has no name", i)})
			continue
		}
		if _, dup := o.index[f.Name]; dup {
			errs = append(errs, &ConfigurationError{Type: name, Reason: fmt.Sprintf("field %q declared twice", f.Name)})
			continue
		}
		o.index[f.Name] = i
		if err := configuredType(f.Type); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, f.Name, err))
		}
		if f.Required && f.Default != nil {
			errs = append(errs, &ConfigurationError{Type: name, Reason: fmt.Sprintf("field %q is required and has a default", f.Name)})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return o, nil
}

// MustObject is like NewObject but panics on a declaration error. It is
// meant for package-level schema declarations.
func MustObject(name string, fields []Field, opts ...ObjectOption) *Object {
	o, err := NewObject(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Object) Name() string { return o.name }

func (o *Object) Description() string { return o.description }

// Open reports whether undeclared keys are preserved.
func (o *Object) Open() bool { return o.open }

// Fields returns the declared fields in declaration order.
func (o *Object) Fields() []Field { return append([]Field(nil), o.fields...) }

// Field returns the declaration of the named field.
func (o *Object) Field(name string) (Field, bool) {
	i, ok := o.index[name]
	if !ok {
		return Field{}, false
	}
	return o.fields[i], true
}

// Coerce validates value and returns a fresh map[string]any holding the
// canonical value of every present or defaulted field, plus undeclared keys
// on open objects. All field failures are collected before returning.
func (o *Object) Coerce(value any) (any, error) {
	raw, ok := asMap(value)
	if !ok {
		return nil, coercionError(o.name, value, "expected object, got %T", value)
	}

	out := make(map[string]any, len(raw))
	supplied := make(map[string]bool, len(raw))
	var errs []error

	for _, f := range o.fields {
		v, present := raw[f.Name]
		if !present {
			switch {
			case f.Required:
				errs = append(errs, Missing(f.Name))
			case f.Default != nil:
				out[f.Name] = f.Default()
			}
			continue
		}
		cv, err := f.Type.Coerce(v)
		if err != nil {
			errs = append(errs, prefixed(f.Name, err)...)
			continue
		}
		out[f.Name] = cv
		supplied[f.Name] = true
	}

	extra := make([]string, 0)
	for k := range raw {
		if _, declared := o.index[k]; !declared {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		if o.open {
			out[k] = clone(raw[k])
			continue
		}
		errs = append(errs, Unknown(k, raw[k]))
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	r := Record{values: out, supplied: supplied}
	for _, check := range o.checks {
		if err := check(r); err != nil {
			errs = append(errs, prefixed("", err)...)
		}
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return out, nil
}

// MarshalJSON serializes the object declaration as field names mapped to
// type names, with "?" marking optional fields.
func (o *Object) MarshalJSON() ([]byte, error) {
	fields := make(map[string]string, len(o.fields))
	for _, f := range o.fields {
		name := typeName(f.Type)
		if !f.Required && !strings.HasSuffix(name, "?") {
			name += "?"
		}
		fields[f.Name] = name
	}
	return json.Marshal(struct {
		Name   string            `json:"name"`
		Open   bool              `json:"open"`
		Fields map[string]string `json:"fields"`
	}{o.name, o.open, fields})
}

// clone copies the maps and slices of a decoded value so that extra fields
// never alias the caller's input.
func clone(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = clone(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = clone(e)
		}
		return out
	}
	return v
}
