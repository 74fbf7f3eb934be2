package domain

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/physrisk/pkg/schema"
)

// Model is an entity with a declared schema.
type Model interface {
	Schema() *schema.Object
}

// Decode validates raw against the schema of T and materialises the result.
// Validation failures are returned as a *schema.AggregateError naming every
// offending field; no partial value is returned.
func Decode[T Model](raw any) (T, error) {
	var out T
	canonical, err := schema.Validate(out.Schema(), raw)
	if err != nil {
		return out, err
	}
	if err := materialize(canonical, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("materialize %s: %w", out.Schema().Name(), err)
	}
	return out, nil
}

var indexValuesReflect = reflect.TypeOf(IndexValues{})

func indexValuesHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != indexValuesReflect {
		return data, nil
	}
	return indexValuesFrom(data)
}

// materialize copies a validated value into target. Typed arrays are
// assigned as is; everything else is converted by field tag.
func materialize(canonical any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(indexValuesHook),
		Result:     target,
		TagName:    "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(canonical)
}
