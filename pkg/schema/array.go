package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Element is the set of numeric element types a typed array can hold.
type Element interface {
	~float32 | ~float64 | ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Array is an immutable, homogeneous numeric array with a fixed shape.
// Data is stored flat in row-major order. The zero value is an empty
// one-dimensional array.
type Array[T Element] struct {
	shape []int
	data  []T
}

// NewArray returns a one-dimensional array holding a copy of values.
func NewArray[T Element](values ...T) Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return Array[T]{shape: []int{len(values)}, data: data}
}

// NewMatrix returns a two-dimensional array built from rows, which must all
// have the same length.
func NewMatrix[T Element](rows ...[]T) (Array[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Array[T]{}, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Array[T]{shape: []int{len(rows), cols}, data: data}, nil
}

// Zeros returns a zero-filled array of the given shape.
func Zeros[T Element](shape ...int) Array[T] {
	if len(shape) == 0 {
		shape = []int{0}
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	return Array[T]{shape: slices.Clone(shape), data: make([]T, size)}
}

// Shape returns the length of each dimension.
func (a Array[T]) Shape() []int {
	if a.shape == nil {
		return []int{0}
	}
	return slices.Clone(a.shape)
}

// Dims returns the number of dimensions.
func (a Array[T]) Dims() int {
	if a.shape == nil {
		return 1
	}
	return len(a.shape)
}

// Len returns the length of the first dimension.
func (a Array[T]) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Size returns the total number of elements.
func (a Array[T]) Size() int { return len(a.data) }

// Values returns a copy of the elements in row-major order.
func (a Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// At returns the element at the given index, one coordinate per dimension.
// It panics when the index is out of range, like slice indexing does.
func (a Array[T]) At(idx ...int) T {
	shape := a.Shape()
	if len(idx) != len(shape) {
		panic(fmt.Sprintf("schema: Array.At: got %d indices for %d dimensions", len(idx), len(shape)))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= shape[d] {
			panic(fmt.Sprintf("schema: Array.At: index %d out of range for dimension %d of length %d", i, d, shape[d]))
		}
		flat = flat*shape[d] + i
	}
	return a.data[flat]
}

// Rows returns the rows of a two-dimensional array, or nil for any other shape.
func (a Array[T]) Rows() [][]T {
	if len(a.shape) != 2 {
		return nil
	}
	rows := make([][]T, a.shape[0])
	cols := a.shape[1]
	for i := range rows {
		rows[i] = slices.Clone(a.data[i*cols : (i+1)*cols])
	}
	return rows
}

// Equal reports whether both arrays have the same shape and elements.
func (a Array[T]) Equal(b Array[T]) bool {
	return slices.Equal(a.Shape(), b.Shape()) && slices.Equal(a.data, b.data)
}

// Nested returns the array as nested []any, the shape it has on the wire.
func (a Array[T]) Nested() any {
	shape := a.Shape()
	var build func(dim, offset int) any
	build = func(dim, offset int) any {
		if dim == len(shape) {
			return a.data[offset]
		}
		stride := 1
		for _, n := range shape[dim+1:] {
			stride *= n
		}
		out := make([]any, shape[dim])
		for i := range out {
			out[i] = build(dim+1, offset+i*stride)
		}
		return out
	}
	if len(shape) == 0 {
		return []any{}
	}
	return build(0, 0)
}

func (a Array[T]) String() string {
	return fmt.Sprint(a.Nested())
}

// MarshalJSON encodes the array as nested JSON lists.
func (a Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Nested())
}

// MarshalYAML encodes the array as nested YAML sequences.
func (a Array[T]) MarshalYAML() (any, error) {
	return a.Nested(), nil
}

// UnmarshalJSON decodes any JSON value accepted by ArrayOf[T].
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	v, err := ArrayOf[T]().Coerce(raw)
	if err != nil {
		return err
	}
	*a = v.(Array[T])
	return nil
}

func (a Array[T]) clone() Array[T] {
	return Array[T]{shape: a.Shape(), data: a.Values()}
}
