package schema

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// elementInfo describes the element type an ArrayType was declared with.
type elementInfo struct {
	name    string
	integer bool
	min     int64
	max     int64
}

func elementOf[T Element]() *elementInfo {
	var zero T
	rt := reflect.TypeOf(zero)
	info := &elementInfo{name: rt.Kind().String()}
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		info.integer = true
		info.max = int64(1)<<rt.Bits() - 1
	default:
		info.integer = true
		if rt.Bits() == 64 {
			info.min, info.max = math.MinInt64, math.MaxInt64
		} else {
			info.min, info.max = -(int64(1) << (rt.Bits() - 1)), int64(1)<<(rt.Bits()-1)-1
		}
	}
	return info
}

func convertElement[T Element](info *elementInfo, v any) (T, bool) {
	if info.integer {
		i, ok := asInt(v)
		if !ok || i < info.min || i > info.max {
			return 0, false
		}
		return T(i), true
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	if info.name == "float32" && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return T(f), true
}

// ArrayType validates raw input into an Array[T]. The element type is bound
// when the type is declared; a zero ArrayType has none and is rejected as a
// configuration error by NewObject.
type ArrayType[T Element] struct {
	elem *elementInfo
	dims int // 0 accepts any number of dimensions
}

// ArrayOf declares an array of element type T with any number of dimensions.
func ArrayOf[T Element]() *ArrayType[T] { return newArrayType[T](0) }

// Vector declares a one-dimensional array of element type T.
func Vector[T Element]() *ArrayType[T] { return newArrayType[T](1) }

// Matrix declares a two-dimensional array of element type T.
func Matrix[T Element]() *ArrayType[T] { return newArrayType[T](2) }

func newArrayType[T Element](dims int) *ArrayType[T] {
	return &ArrayType[T]{elem: elementOf[T](), dims: dims}
}

func (t *ArrayType[T]) Name() string {
	kind := "array"
	switch t.dims {
	case 1:
		kind = "vector"
	case 2:
		kind = "matrix"
	}
	return fmt.Sprintf("%s[%s]", kind, t.Element())
}

// Element returns the element type name, e.g. "float64".
func (t *ArrayType[T]) Element() string {
	if t.elem == nil {
		return ""
	}
	return t.elem.name
}

// Dims returns the declared number of dimensions, 0 meaning any.
func (t *ArrayType[T]) Dims() int { return t.dims }

func (t *ArrayType[T]) Configured() error {
	if t.elem == nil {
		return &ConfigurationError{Type: "array", Reason: "element type not specified"}
	}
	return nil
}

func (t *ArrayType[T]) Coerce(value any) (any, error) {
	if err := t.Configured(); err != nil {
		return nil, err
	}

	switch a := value.(type) {
	case Array[T]:
		return t.checkDims(a.clone(), value)
	case *Array[T]:
		if a != nil {
			return t.checkDims(a.clone(), value)
		}
	}

	if _, ok := asSequence(value); !ok {
		return nil, coercionError(t.Name(), value, "expected a sequence of %s, got %T", t.elem.name, value)
	}

	s := shaper{leafDepth: -1}
	if err := s.walk(value, 0); err != nil {
		return nil, coercionError(t.Name(), value, "%s", err.Error())
	}

	data := make([]T, len(s.leaves))
	for i, leaf := range s.leaves {
		v, ok := convertElement[T](t.elem, leaf)
		if !ok {
			return nil, coercionError(t.Name(), value, "element %s: cannot convert %s to %s",
				indexPath(i, s.shape), describe(leaf), t.elem.name)
		}
		data[i] = v
	}
	return t.checkDims(Array[T]{shape: s.shape, data: data}, value)
}

func (t *ArrayType[T]) checkDims(a Array[T], raw any) (any, error) {
	if t.dims == 0 || a.Dims() == t.dims {
		return a, nil
	}
	if a.Size() == 0 && a.Dims() == 1 {
		return Zeros[T](make([]int, t.dims)...), nil
	}
	return nil, coercionError(t.Name(), raw, "expected %d-dimensional array, got %d dimensions", t.dims, a.Dims())
}

// shaper walks nested sequences, recording the shape and flattening leaves.
type shaper struct {
	shape     []int
	leafDepth int
	leaves    []any
}

func (s *shaper) walk(v any, depth int) error {
	items, ok := asSequence(v)
	if !ok {
		if s.leafDepth == -1 {
			s.leafDepth = depth
		}
		if depth != s.leafDepth || len(s.shape) > depth {
			return fmt.Errorf("ragged nested sequence at depth %d", depth)
		}
		s.leaves = append(s.leaves, v)
		return nil
	}

	if s.leafDepth != -1 && depth >= s.leafDepth {
		return fmt.Errorf("ragged nested sequence at depth %d", depth)
	}
	if depth == len(s.shape) {
		s.shape = append(s.shape, len(items))
	} else if s.shape[depth] != len(items) {
		return fmt.Errorf("ragged nested sequence at depth %d: length %d, want %d", depth, len(items), s.shape[depth])
	}
	for _, item := range items {
		if err := s.walk(item, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// indexPath renders flat index i as "[r][c]" for the given shape.
func indexPath(i int, shape []int) string {
	coords := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] > 0 {
			coords[d] = i % shape[d]
			i /= shape[d]
		}
	}
	var b strings.Builder
	for _, c := range coords {
		fmt.Fprintf(&b, "[%d]", c)
	}
	return b.String()
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
