package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Type defines the contract for field validation.
// Implementations convert a raw value (typically decoded JSON or YAML) into
// the canonical Go value for the type, or explain why they cannot.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "[float]").
	Name() string
	// Coerce validates value and returns its canonical form.
	Coerce(value any) (any, error)
}

// configurable is implemented by types whose declaration can be incomplete.
// Objects call it while they are being built.
type configurable interface {
	Configured() error
}

// --- Built-in Type Implementations ---

// StringType accepts string values only.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Coerce(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, coercionError(t.Name(), value, "expected string, got %T", value)
	}
	return s, nil
}

// IntType produces int64. Whole floats and integer strings are accepted.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Coerce(value any) (any, error) {
	if _, isBool := value.(bool); isBool {
		return nil, coercionError(t.Name(), value, "expected int, got bool")
	}
	i, ok := asInt(value)
	if !ok {
		return nil, coercionError(t.Name(), value, "value is not a valid integer")
	}
	return i, nil
}

// FloatType produces float64. Integers and numeric strings are accepted.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Coerce(value any) (any, error) {
	if _, isBool := value.(bool); isBool {
		return nil, coercionError(t.Name(), value, "expected float, got bool")
	}
	f, ok := asFloat(value)
	if !ok {
		return nil, coercionError(t.Name(), value, "value is not a valid float")
	}
	return f, nil
}

// BoolType accepts boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Coerce(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, coercionError(t.Name(), value, "expected bool, got %T", value)
	}
	return b, nil
}

// ListType validates sequences whose items share an element type.
// Every item is checked; failures carry the item index.
type ListType struct {
	elemType Type
}

func (t *ListType) Name() string {
	return fmt.Sprintf("[%s]", typeName(t.elemType))
}

func (t *ListType) Elem() Type { return t.elemType }

func (t *ListType) Configured() error {
	if t.elemType == nil {
		return &ConfigurationError{Type: "list", Reason: "element type not specified"}
	}
	return configuredType(t.elemType)
}

func (t *ListType) Coerce(value any) (any, error) {
	items, ok := asSequence(value)
	if !ok {
		return nil, coercionError(t.Name(), value, "expected list, got %T", value)
	}

	out := make([]any, len(items))
	var errs []error
	for i, item := range items {
		v, err := t.elemType.Coerce(item)
		if err != nil {
			errs = append(errs, prefixed(fmt.Sprintf("[%d]", i), err)...)
			continue
		}
		out[i] = v
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return out, nil
}

// MapType validates string-keyed maps whose values share a type.
type MapType struct {
	elemType Type
}

func (t *MapType) Name() string {
	return fmt.Sprintf("{string: %s}", typeName(t.elemType))
}

func (t *MapType) Elem() Type { return t.elemType }

func (t *MapType) Configured() error { return configuredType(t.elemType) }

func (t *MapType) Coerce(value any) (any, error) {
	m, ok := asMap(value)
	if !ok {
		return nil, coercionError(t.Name(), value, "expected object, got %T", value)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(m))
	var errs []error
	for _, k := range keys {
		v, err := t.elemType.Coerce(m[k])
		if err != nil {
			errs = append(errs, prefixed(k, err)...)
			continue
		}
		out[k] = v
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return out, nil
}

// OptionalType accepts nil in addition to the values of its inner type.
type OptionalType struct {
	inner Type
}

func (t *OptionalType) Name() string { return typeName(t.inner) + "?" }

func (t *OptionalType) Inner() Type { return t.inner }

func (t *OptionalType) Configured() error { return configuredType(t.inner) }

func (t *OptionalType) Coerce(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	return t.inner.Coerce(value)
}

// UnionType tries each member in declaration order and keeps the first match.
type UnionType struct {
	members []Type
}

func (t *UnionType) Name() string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = typeName(m)
	}
	return strings.Join(names, " | ")
}

func (t *UnionType) Members() []Type { return append([]Type(nil), t.members...) }

func (t *UnionType) Configured() error {
	if len(t.members) == 0 {
		return &ConfigurationError{Type: "union", Reason: "no member types"}
	}
	for _, m := range t.members {
		if err := configuredType(m); err != nil {
			return err
		}
	}
	return nil
}

func (t *UnionType) Coerce(value any) (any, error) {
	for _, m := range t.members {
		if v, err := m.Coerce(value); err == nil {
			return v, nil
		}
	}
	return nil, coercionError(t.Name(), value, "value matches none of %s", t.Name())
}

// CustomType applies a user-defined conversion, optionally after a base type.
type CustomType struct {
	name   string
	base   Type
	coerce func(any) (any, error)
}

func (t *CustomType) Name() string { return t.name }

// Base returns the type applied before the custom conversion, or nil.
func (t *CustomType) Base() Type { return t.base }

func (t *CustomType) Configured() error {
	if t.coerce == nil {
		return &ConfigurationError{Type: t.name, Reason: "no conversion function"}
	}
	if t.base != nil {
		return configuredType(t.base)
	}
	return nil
}

func (t *CustomType) Coerce(value any) (any, error) {
	if t.base != nil {
		v, err := t.base.Coerce(value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	v, err := t.coerce(value)
	if err != nil {
		var ve *ValidationError
		var aggr *AggregateError
		if errors.As(err, &ve) || errors.As(err, &aggr) {
			return nil, err
		}
		return nil, coercionError(t.name, value, "%s", err.Error())
	}
	return v, nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// List creates a list type validator for elements of the given type.
func List(elemType Type) Type {
	return &ListType{elemType: elemType}
}

// MapOf creates a validator for string-keyed maps of the given value type.
func MapOf(elemType Type) Type {
	return &MapType{elemType: elemType}
}

// Optional wraps a type so that nil is accepted.
func Optional(inner Type) Type {
	return &OptionalType{inner: inner}
}

// Union creates a type that accepts a value matching any member.
func Union(members ...Type) Type {
	return &UnionType{members: members}
}

// Custom creates a custom type with a user-defined conversion function.
func Custom(name string, coerce func(any) (any, error)) Type {
	return &CustomType{name: name, coerce: coerce}
}

// Refine runs base first and then passes its canonical value to coerce.
func Refine(base Type, coerce func(any) (any, error)) Type {
	return &CustomType{name: typeName(base), base: base, coerce: coerce}
}

func typeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

func configuredType(t Type) error {
	if t == nil {
		return &ConfigurationError{Type: "<nil>", Reason: "type not specified"}
	}
	if c, ok := t.(configurable); ok {
		return c.Configured()
	}
	return nil
}

// ParseType converts a string type name to a Type.
// Supports "string", "int", "float", "bool", lists such as "[float]",
// optional types with a "?" suffix and typed arrays such as
// "array[float64]", "vector[int32]" or "matrix[float64]".
// A typed array without an element type is a *ConfigurationError.
func ParseType(typeStr string) (Type, error) {
	typeStr = strings.TrimSpace(typeStr)

	if strings.HasSuffix(typeStr, "?") {
		inner, err := ParseType(strings.TrimSuffix(typeStr, "?"))
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	}

	// Handle list types: [string], [int], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return List(elemType), nil
	}

	for _, kind := range []string{"array", "vector", "matrix"} {
		if typeStr == kind || strings.HasPrefix(typeStr, kind+"[") {
			return parseArrayType(kind, strings.TrimPrefix(typeStr, kind))
		}
	}

	// Handle built-in types
	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

func parseArrayType(kind, rest string) (Type, error) {
	if rest == "" || rest == "[]" {
		return nil, &ConfigurationError{Type: kind, Reason: "element type not specified"}
	}
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return nil, fmt.Errorf("unsupported type: %s%s", kind, rest)
	}
	elem := strings.TrimSpace(rest[1 : len(rest)-1])

	dims := map[string]int{"array": 0, "vector": 1, "matrix": 2}[kind]
	switch elem {
	case "float64":
		return newArrayType[float64](dims), nil
	case "float32":
		return newArrayType[float32](dims), nil
	case "int64":
		return newArrayType[int64](dims), nil
	case "int32":
		return newArrayType[int32](dims), nil
	case "int16":
		return newArrayType[int16](dims), nil
	case "int8":
		return newArrayType[int8](dims), nil
	case "int":
		return newArrayType[int](dims), nil
	case "uint8":
		return newArrayType[uint8](dims), nil
	case "uint16":
		return newArrayType[uint16](dims), nil
	case "uint32":
		return newArrayType[uint32](dims), nil
	case "":
		return nil, &ConfigurationError{Type: kind, Reason: "element type not specified"}
	default:
		return nil, &ConfigurationError{Type: kind + rest, Reason: fmt.Sprintf("unsupported element type %q", elem)}
	}
}
