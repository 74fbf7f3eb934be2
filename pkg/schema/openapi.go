package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// openAPIDescriber is implemented by types with a dedicated OpenAPI rendering.
type openAPIDescriber interface {
	openAPI() *openapi3.Schema
}

// OpenAPI renders t as an OpenAPI 3 schema. Objects are inlined; open objects
// allow additional properties and closed ones forbid them.
func OpenAPI(t Type) *openapi3.Schema {
	switch tt := t.(type) {
	case *StringType:
		return openapi3.NewStringSchema()
	case *IntType:
		return openapi3.NewInt64Schema()
	case *FloatType:
		return openapi3.NewFloat64Schema()
	case *BoolType:
		return openapi3.NewBoolSchema()
	case *ListType:
		return openapi3.NewArraySchema().WithItems(OpenAPI(tt.elemType))
	case *MapType:
		return openapi3.NewObjectSchema().WithAdditionalProperties(OpenAPI(tt.elemType))
	case *OptionalType:
		s := OpenAPI(tt.inner)
		s.Nullable = true
		return s
	case *UnionType:
		members := make([]*openapi3.Schema, len(tt.members))
		for i, m := range tt.members {
			members[i] = OpenAPI(m)
		}
		return openapi3.NewOneOfSchema(members...)
	case *CustomType:
		if tt.base != nil {
			return OpenAPI(tt.base)
		}
		s := &openapi3.Schema{}
		s.Description = tt.name
		return s
	case *Object:
		return tt.openAPI()
	case openAPIDescriber:
		return tt.openAPI()
	}
	return &openapi3.Schema{}
}

func (o *Object) openAPI() *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	s.Title = o.name
	s.Description = o.description
	for _, f := range o.fields {
		prop := OpenAPI(f.Type)
		if f.Description != "" {
			prop.Description = f.Description
		}
		if f.Default != nil {
			prop.Default = f.Default()
		}
		s.WithProperty(f.Name, prop)
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	if o.open {
		return s.WithAnyAdditionalProperties()
	}
	return s.WithoutAdditionalProperties()
}

func (t *ArrayType[T]) openAPI() *openapi3.Schema {
	var s *openapi3.Schema
	switch t.Element() {
	case "float64":
		s = openapi3.NewFloat64Schema()
	case "float32":
		s = openapi3.NewFloat64Schema().WithFormat("float")
	case "int64", "int":
		s = openapi3.NewInt64Schema()
	default:
		s = openapi3.NewInt32Schema()
	}
	dims := t.dims
	if dims == 0 {
		// Any rank: describe the common one-dimensional case.
		dims = 1
	}
	for range dims {
		s = openapi3.NewArraySchema().WithItems(s)
	}
	return s
}

// Components renders each object as a named OpenAPI component schema.
func Components(objects ...*Object) openapi3.Schemas {
	out := make(openapi3.Schemas, len(objects))
	for _, o := range objects {
		out[o.name] = openapi3.NewSchemaRef("", o.openAPI())
	}
	return out
}
