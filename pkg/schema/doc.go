// Package schema provides a type-safe validation system for structured data.
//
// A Type converts raw values, typically decoded from JSON or YAML, into
// canonical Go values. Built-in types cover strings, integers, floats,
// booleans, lists, maps, optionals and unions. Objects group named fields
// into records and typed arrays turn nested sequences into homogeneous
// numeric arrays whose element type is fixed when the schema is declared.
//
// Basic usage:
//
//	curve := schema.MustObject("Distribution", []schema.Field{
//	    {Name: "bin_edges", Type: schema.Vector[float64](), Required: true},
//	    {Name: "probabilities", Type: schema.Vector[float64](), Required: true},
//	    {Name: "path", Type: schema.List(schema.String()),
//	        Default: func() any { return []any{} }},
//	})
//
//	v, err := schema.Validate(curve, map[string]any{
//	    "bin_edges":     []any{0, 1, "2"},
//	    "probabilities": []any{0.5, 0.5},
//	})
//	if err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // every offending field, e.g. field "bin_edges": ...
//	    }
//	}
//
// Validation never stops at the first bad field: every failure is collected
// into an *AggregateError of *ValidationError values keyed by field path,
// such as "items[2].latitude". Each failure matches one of ErrMissingField,
// ErrTypeCoercion, ErrUnknownField or ErrConstraint through errors.Is.
//
// Objects are closed by default and reject undeclared keys; AllowExtra opts
// a single object into keeping them.
//
// Schemas can also be parsed from type strings:
//
//	obj, err := schema.ParseTypeMap("Country", map[string]string{
//	    "country":        "string",
//	    "continent":      "string",
//	    "country_iso_a3": "string",
//	})
//
// A typed array declared without an element type ("array", "array[]") is a
// *ConfigurationError raised while the schema is built, never a silent
// default.
//
// Declared schemas are read-only and safe for concurrent use.
package schema
