package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI_Object(t *testing.T) {
	closed := MustObject("Curve", []Field{
		{Name: "values", Type: Vector[float64](), Required: true, Description: "curve values"},
		{Name: "matrix", Type: Matrix[int32]()},
		{Name: "label", Type: Optional(String())},
		{Name: "index_name", Type: String(), Default: func() any { return "" }},
	}, WithDescription("A curve."))

	s := OpenAPI(closed)
	assert.Equal(t, "Curve", s.Title)
	assert.Equal(t, "A curve.", s.Description)
	assert.Equal(t, []string{"values"}, s.Required)
	require.NotNil(t, s.AdditionalProperties.Has)
	assert.False(t, *s.AdditionalProperties.Has)

	require.Contains(t, s.Properties, "values")
	values := s.Properties["values"].Value
	assert.Equal(t, "curve values", values.Description)
	require.NotNil(t, values.Items)
	assert.Nil(t, values.Items.Value.Items, "vector is one level deep")

	matrix := s.Properties["matrix"].Value
	require.NotNil(t, matrix.Items)
	require.NotNil(t, matrix.Items.Value.Items, "matrix is two levels deep")
	assert.Equal(t, "int32", matrix.Items.Value.Items.Value.Format)

	assert.True(t, s.Properties["label"].Value.Nullable)
	assert.Equal(t, "", s.Properties["index_name"].Value.Default)
}

func TestOpenAPI_OpenObject(t *testing.T) {
	open := MustObject("Asset", []Field{
		{Name: "asset_class", Type: String(), Required: true},
	}, AllowExtra())

	s := OpenAPI(open)
	require.NotNil(t, s.AdditionalProperties.Has)
	assert.True(t, *s.AdditionalProperties.Has)
}

func TestComponents_MarshalJSON(t *testing.T) {
	country := MustObject("Country", []Field{
		{Name: "country", Type: String(), Required: true},
		{Name: "aliases", Type: List(String())},
		{Name: "codes", Type: Union(List(Float()), List(String()))},
	})

	comps := Components(country)
	require.Contains(t, comps, "Country")

	data, err := json.Marshal(comps)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"country"`)
	assert.Contains(t, string(data), `"oneOf"`)
}
