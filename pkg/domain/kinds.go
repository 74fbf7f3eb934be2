package domain

import (
	"fmt"
	"sync"

	"github.com/aretw0/physrisk/pkg/schema"
)

// Kind is a payload type that callers can submit by name.
type Kind struct {
	Name   string
	Schema *schema.Object
	Decode func(raw any) (any, error)
}

func kind[T Model](name string) Kind {
	var m T
	return Kind{
		Name:   name,
		Schema: m.Schema(),
		Decode: func(raw any) (any, error) {
			v, err := Decode[T](raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// registry is built on first use so that it never observes an
// uninitialised schema.
var registry = sync.OnceValue(func() []Kind {
	return []Kind{
		kind[Asset]("asset"),
		kind[Assets]("assets"),
		kind[Country]("country"),
		kind[Countries]("countries"),
		kind[BaseHazardRequest]("base-hazard-request"),
		kind[IntensityCurve]("intensity-curve"),
		kind[ExceedanceCurve]("exceedance-curve"),
		kind[Distribution]("distribution"),
		kind[HazardEventDistrib]("hazard-event-distrib"),
		kind[VulnerabilityCurve]("vulnerability-curve"),
		kind[VulnerabilityCurves]("vulnerability-curves"),
		kind[VulnerabilityDistrib]("vulnerability-distrib"),
		kind[CalcSettings]("calc-settings"),
		kind[AssetExposureRequest]("asset-exposure-request"),
		kind[AssetHazardExposure]("asset-hazard-exposure"),
		kind[AssetExposure]("asset-exposure"),
		kind[AssetExposureResponse]("asset-exposure-response"),
	}
})

// Kinds returns every registered payload kind in declaration order.
func Kinds() []Kind { return append([]Kind(nil), registry()...) }

// LookupKind finds a payload kind by name.
func LookupKind(name string) (Kind, error) {
	for _, k := range registry() {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Schemas returns the declared object of every kind.
func Schemas() []*schema.Object {
	out := make([]*schema.Object, 0, len(registry()))
	for _, k := range registry() {
		out = append(out, k.Schema)
	}
	return out
}
