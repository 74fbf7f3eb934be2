package domain

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/physrisk/pkg/schema"
)

// IndexValues is the index of an intensity curve: return periods in years
// for an acute hazard, or indicator thresholds for a multi-threshold chronic
// hazard. Thresholds may be numeric or labels, never both.
type IndexValues struct {
	Numbers []float64
	Labels  []string
}

// NumericIndex builds numeric index values.
func NumericIndex(values ...float64) IndexValues {
	return IndexValues{Numbers: append([]float64{}, values...)}
}

// LabelIndex builds textual index values.
func LabelIndex(labels ...string) IndexValues {
	return IndexValues{Labels: append([]string{}, labels...)}
}

// Len returns the number of index entries.
func (v IndexValues) Len() int {
	if v.Labels != nil {
		return len(v.Labels)
	}
	return len(v.Numbers)
}

// IsLabels reports whether the index holds labels.
func (v IndexValues) IsLabels() bool { return v.Labels != nil }

func (v IndexValues) list() any {
	if v.Labels != nil {
		return v.Labels
	}
	if v.Numbers == nil {
		return []float64{}
	}
	return v.Numbers
}

func (v IndexValues) MarshalJSON() ([]byte, error) { return json.Marshal(v.list()) }

func (v IndexValues) MarshalYAML() (any, error) { return v.list(), nil }

func (v *IndexValues) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = IndexValues{}
		return nil
	}
	canonical, err := indexValuesType.Coerce(raw)
	if err != nil {
		return err
	}
	parsed, err := indexValuesFrom(canonical)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// indexValuesFrom converts the output of indexValuesType. Numbers win over
// labels, so an empty list is numeric.
func indexValuesFrom(v any) (IndexValues, error) {
	if v == nil {
		return IndexValues{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return IndexValues{}, fmt.Errorf("index values: expected list, got %T", v)
	}
	numbers := make([]float64, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			break
		}
		numbers = append(numbers, f)
	}
	if len(numbers) == len(items) {
		return IndexValues{Numbers: numbers}, nil
	}
	labels := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return IndexValues{}, fmt.Errorf("index values: mixed entry %d (%T)", i, item)
		}
		labels = append(labels, s)
	}
	return IndexValues{Labels: labels}, nil
}

// IntensityCurve is a hazard indicator intensity curve. Acute hazards are
// parameterized by event intensities and return periods in years; chronic
// hazards by a set of index values defined per indicator.
type IntensityCurve struct {
	Intensities []float64 `json:"intensities" yaml:"intensities" mapstructure:"intensities"`
	// Deprecated: use IndexValues.
	ReturnPeriods []float64   `json:"return_periods" yaml:"return_periods" mapstructure:"return_periods"`
	IndexValues   IndexValues `json:"index_values" yaml:"index_values" mapstructure:"index_values"`
	// IndexName is "return period" for acute hazards and "threshold" for
	// multi-threshold chronic ones.
	IndexName string `json:"index_name" yaml:"index_name" mapstructure:"index_name"`
}

// Index returns the effective index of the curve. IndexValues takes
// precedence; ReturnPeriods is used when IndexValues is empty.
func (c IntensityCurve) Index() IndexValues {
	if c.IndexValues.Len() == 0 && len(c.ReturnPeriods) > 0 {
		return NumericIndex(c.ReturnPeriods...)
	}
	return c.IndexValues
}

// ExceedanceCurve is a general exceedance curve, e.g. of hazard or impact.
type ExceedanceCurve struct {
	Values              schema.Array[float64] `json:"values" yaml:"values" mapstructure:"values"`
	ExceedProbabilities schema.Array[float64] `json:"exceed_probabilities" yaml:"exceed_probabilities" mapstructure:"exceed_probabilities"`
}

// Distribution is a binned probability distribution: N probabilities over
// N+1 bin edges.
type Distribution struct {
	BinEdges      schema.Array[float64] `json:"bin_edges" yaml:"bin_edges" mapstructure:"bin_edges"`
	Probabilities schema.Array[float64] `json:"probabilities" yaml:"probabilities" mapstructure:"probabilities"`
}

// Bins returns the number of bins.
func (d Distribution) Bins() int { return d.Probabilities.Len() }

// HazardEventDistrib is the intensity distribution of an acute hazard
// together with the path of its indicator data source.
type HazardEventDistrib struct {
	IntensityBinEdges schema.Array[float64] `json:"intensity_bin_edges" yaml:"intensity_bin_edges" mapstructure:"intensity_bin_edges"`
	Probabilities     schema.Array[float64] `json:"probabilities" yaml:"probabilities" mapstructure:"probabilities"`
	Path              []string              `json:"path" yaml:"path" mapstructure:"path"`
}
