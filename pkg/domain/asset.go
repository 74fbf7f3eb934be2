package domain

import (
	"bytes"
	"encoding/json"
)

// Asset is a physical asset subject to risk. An asset is identified first by
// its asset class and then by its type within the class.
//
// Asset is the only open record: fields outside its declaration are kept in
// Extra and written back out alongside the declared ones.
type Asset struct {
	// AssetClass names the class, e.g. PowerGeneratingAsset.
	AssetClass string  `json:"asset_class" yaml:"asset_class" mapstructure:"asset_class"`
	Latitude   float64 `json:"latitude" yaml:"latitude" mapstructure:"latitude"`
	Longitude  float64 `json:"longitude" yaml:"longitude" mapstructure:"longitude"`

	// Type is the asset type as <level_1>/<level_2>/<level_3>.
	Type     *string  `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Location *string  `json:"location,omitempty" yaml:"location,omitempty" mapstructure:"location"`
	Capacity *float64 `json:"capacity,omitempty" yaml:"capacity,omitempty" mapstructure:"capacity"`

	// Attributes holds bespoke attributes such as number of storeys or occupancy type.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" mapstructure:"attributes"`

	Extra map[string]any `json:"-" yaml:",inline" mapstructure:",remain"`
}

// Attribute returns a bespoke attribute, falling back to undeclared fields.
func (a Asset) Attribute(key string) (any, bool) {
	if v, ok := a.Attributes[key]; ok {
		return v, true
	}
	v, ok := a.Extra[key]
	return v, ok
}

// MarshalJSON writes declared fields and Extra side by side. Declared
// fields win when a key appears in both.
func (a Asset) MarshalJSON() ([]byte, error) {
	type plain Asset
	data, err := json.Marshal(plain(a))
	if err != nil || len(a.Extra) == 0 {
		return data, err
	}

	merged := make(map[string]any, len(a.Extra)+8)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&merged); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		if _, declared := merged[k]; !declared {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Assets is an ordered collection of assets. Order correlates requests
// with responses.
type Assets struct {
	Items []Asset `json:"items" yaml:"items" mapstructure:"items"`
}

// Country is reference geography data.
type Country struct {
	Country      string `json:"country" yaml:"country" mapstructure:"country"`
	Continent    string `json:"continent" yaml:"continent" mapstructure:"continent"`
	CountryISOA3 string `json:"country_iso_a3" yaml:"country_iso_a3" mapstructure:"country_iso_a3"`
}

type Countries struct {
	Items []Country `json:"items" yaml:"items" mapstructure:"items"`
}

// BaseHazardRequest carries the data groups that may serve a hazard request,
// e.g. "public" or "osc".
type BaseHazardRequest struct {
	GroupIDs []string `json:"group_ids" yaml:"group_ids" mapstructure:"group_ids"`
}
