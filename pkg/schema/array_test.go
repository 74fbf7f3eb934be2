package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayOf_Float64(t *testing.T) {
	v, err := ArrayOf[float64]().Coerce([]any{1, 2, 3})
	require.NoError(t, err)

	arr := v.(Array[float64])
	assert.Equal(t, []int{3}, arr.Shape())
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, arr.Values())
}

func TestArrayOf_RejectsNonNumeric(t *testing.T) {
	raw := []any{1, 2, "x"}
	_, err := ArrayOf[float64]().Coerce(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeCoercion)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "array[float64]", ve.Expected)
	assert.Equal(t, raw, ve.Value)
	assert.Contains(t, ve.Reason, `element [2]`)
	assert.Contains(t, ve.Reason, `"x"`)
}

func TestArrayOf_Coercion(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		input   any
		want    any
		wantErr bool
	}{
		{"numeric strings", ArrayOf[float64](), []any{"1.5", " 2 "}, []float64{1.5, 2}, false},
		{"json numbers", ArrayOf[float64](), []any{json.Number("0.1"), json.Number("10")}, []float64{0.1, 10}, false},
		{"typed slice", ArrayOf[float64](), []int{4, 5}, []float64{4, 5}, false},
		{"booleans", ArrayOf[float64](), []any{true, false}, []float64{1, 0}, false},
		{"empty", ArrayOf[float64](), []any{}, []float64{}, false},
		{"int32 whole floats", ArrayOf[int32](), []any{1.0, "2", 3}, []int32{1, 2, 3}, false},
		{"int32 fraction", ArrayOf[int32](), []any{1.5}, nil, true},
		{"int32 overflow", ArrayOf[int32](), []any{int64(1) << 40}, nil, true},
		{"int8 range", ArrayOf[int8](), []any{-128, 127}, []int8{-128, 127}, false},
		{"uint8 negative", ArrayOf[uint8](), []any{-1}, nil, true},
		{"float32 overflow", ArrayOf[float32](), []any{1e300}, nil, true},
		{"nil element", ArrayOf[float64](), []any{1, nil}, nil, true},
		{"nested map", ArrayOf[float64](), []any{map[string]any{"a": 1}}, nil, true},
		{"scalar", ArrayOf[float64](), 3.0, nil, true},
		{"string scalar", ArrayOf[float64](), "1,2,3", nil, true},
		{"nil", ArrayOf[float64](), nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.typ.Coerce(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTypeCoercion)
				return
			}
			require.NoError(t, err)
			switch want := tt.want.(type) {
			case []float64:
				assert.Equal(t, want, v.(Array[float64]).Values())
			case []int32:
				assert.Equal(t, want, v.(Array[int32]).Values())
			case []int8:
				assert.Equal(t, want, v.(Array[int8]).Values())
			}
		})
	}
}

func TestArrayOf_Nested(t *testing.T) {
	v, err := ArrayOf[float64]().Coerce([]any{[]any{1, 2, 3}, []any{4, 5, 6}})
	require.NoError(t, err)

	arr := v.(Array[float64])
	assert.Equal(t, []int{2, 3}, arr.Shape())
	assert.Equal(t, 2, arr.Dims())
	assert.Equal(t, 6.0, arr.At(1, 2))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, arr.Rows())
}

func TestArrayOf_RejectsRagged(t *testing.T) {
	inputs := []any{
		[]any{[]any{1, 2}, []any{3}},
		[]any{1, []any{2}},
		[]any{[]any{1}, 2},
		[]any{[]any{}, 1},
	}
	for _, input := range inputs {
		_, err := ArrayOf[float64]().Coerce(input)
		require.Error(t, err, "input %v", input)
		assert.ErrorIs(t, err, ErrTypeCoercion)
		assert.Contains(t, err.Error(), "ragged")
	}
}

func TestArrayOf_IndexInReasonForMatrix(t *testing.T) {
	_, err := Matrix[float64]().Coerce([]any{[]any{1, 2}, []any{3, "bad"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element [1][1]")
}

func TestVectorAndMatrixDims(t *testing.T) {
	_, err := Vector[float64]().Coerce([]any{[]any{1}})
	assert.ErrorIs(t, err, ErrTypeCoercion)

	_, err = Matrix[float64]().Coerce([]any{1, 2})
	assert.ErrorIs(t, err, ErrTypeCoercion)

	v, err := Matrix[float64]().Coerce([]any{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, v.(Array[float64]).Shape())

	assert.Equal(t, "vector[float64]", Vector[float64]().Name())
	assert.Equal(t, "matrix[int32]", Matrix[int32]().Name())
	assert.Equal(t, "array[float32]", ArrayOf[float32]().Name())
}

func TestArrayOf_AcceptsValidatedArray(t *testing.T) {
	in := NewArray(1.0, 2.0)
	v, err := Vector[float64]().Coerce(in)
	require.NoError(t, err)
	assert.True(t, in.Equal(v.(Array[float64])))

	// Arrays of another element type are converted element by element.
	v, err = Vector[float64]().Coerce(NewArray[int32](7, 8))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, v.(Array[float64]).Values())
}

func TestArrayType_ZeroValueIsConfigurationError(t *testing.T) {
	var typ ArrayType[float64]
	err := typ.Configured()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = typ.Coerce([]any{1})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestArray_JSONRoundTrip(t *testing.T) {
	m, err := NewMatrix([]float64{0.1, 0.9}, []float64{0.5, 0.5})
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[0.1,0.9],[0.5,0.5]]`, string(data))

	var back Array[float64]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equal(back))

	err = json.Unmarshal([]byte(`[1, "x"]`), &back)
	assert.ErrorIs(t, err, ErrTypeCoercion)
}

func TestNewMatrix_Ragged(t *testing.T) {
	_, err := NewMatrix([]float64{1, 2}, []float64{3})
	assert.Error(t, err)
}

func TestZeros(t *testing.T) {
	z := Zeros[float64](11)
	assert.Equal(t, 11, z.Len())
	for _, v := range z.Values() {
		assert.Zero(t, v)
	}

	m := Zeros[float64](2, 3)
	assert.Equal(t, []int{2, 3}, m.Shape())
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, []any{[]any{0.0, 0.0, 0.0}, []any{0.0, 0.0, 0.0}}, m.Nested())
}

func TestArray_ZeroValue(t *testing.T) {
	var a Array[float64]
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, []int{0}, a.Shape())
	assert.True(t, a.Equal(NewArray[float64]()))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestArray_AtPanicsOutOfRange(t *testing.T) {
	a := NewArray(1.0)
	assert.Panics(t, func() { a.At(1) })
	assert.Panics(t, func() { a.At(0, 0) })
}
