package domain

import "github.com/aretw0/physrisk/pkg/schema"

// Impact types of a vulnerability curve.
const (
	ImpactDamage     = "Damage"
	ImpactDisruption = "Disruption"
)

// VulnerabilityCurve is a damage or disruption curve: the mean and standard
// deviation of impact at each hazard intensity.
type VulnerabilityCurve struct {
	AssetType string `json:"asset_type" yaml:"asset_type" mapstructure:"asset_type"`
	Location  string `json:"location" yaml:"location" mapstructure:"location"`
	// EventType is the hazard event type, e.g. RiverineInundation.
	EventType      string    `json:"event_type" yaml:"event_type" mapstructure:"event_type"`
	ImpactType     string    `json:"impact_type" yaml:"impact_type" mapstructure:"impact_type"`
	Intensity      []float64 `json:"intensity" yaml:"intensity" mapstructure:"intensity"`
	IntensityUnits string    `json:"intensity_units" yaml:"intensity_units" mapstructure:"intensity_units"`
	ImpactMean     []float64 `json:"impact_mean" yaml:"impact_mean" mapstructure:"impact_mean"`
	ImpactStd      []float64 `json:"impact_std" yaml:"impact_std" mapstructure:"impact_std"`
}

type VulnerabilityCurves struct {
	Items []VulnerabilityCurve `json:"items" yaml:"items" mapstructure:"items"`
}

// VulnerabilityDistrib is a vulnerability matrix: ProbMatrix[i][j] is the
// probability of impact bin j given intensity bin i.
type VulnerabilityDistrib struct {
	IntensityBinEdges schema.Array[float64] `json:"intensity_bin_edges" yaml:"intensity_bin_edges" mapstructure:"intensity_bin_edges"`
	ImpactBinEdges    schema.Array[float64] `json:"impact_bin_edges" yaml:"impact_bin_edges" mapstructure:"impact_bin_edges"`
	ProbMatrix        schema.Array[float64] `json:"prob_matrix" yaml:"prob_matrix" mapstructure:"prob_matrix"`
}
