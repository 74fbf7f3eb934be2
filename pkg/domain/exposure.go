package domain

// CalcSettings holds calculation options shared by impact and exposure
// requests.
type CalcSettings struct {
	// HazardInterp is the interpolation method applied to hazard data.
	HazardInterp string `json:"hazard_interp" yaml:"hazard_interp" mapstructure:"hazard_interp"`
}

// AssetExposureRequest asks for the exposure category of each asset.
type AssetExposureRequest struct {
	Assets       Assets       `json:"assets" yaml:"assets" mapstructure:"assets"`
	CalcSettings CalcSettings `json:"calc_settings" yaml:"calc_settings" mapstructure:"calc_settings"`
	Scenario     string       `json:"scenario" yaml:"scenario" mapstructure:"scenario"`
	// Year is the projection year (2030, 2050, 2080).
	Year int64 `json:"year" yaml:"year" mapstructure:"year"`
}

// IsHistorical reports whether the request targets the historical baseline
// rather than a projection.
func (r AssetExposureRequest) IsHistorical() bool {
	return r.Year < HistoricalCutoffYear
}

// AssetHazardExposure is the exposure of a single asset to a single type of hazard.
type AssetHazardExposure struct {
	HazardType string `json:"hazard_type" yaml:"hazard_type" mapstructure:"hazard_type"`
	Category   string `json:"category" yaml:"category" mapstructure:"category"`
}

// Level returns the exposure category, NODATA when none was assigned.
func (e AssetHazardExposure) Level() Category {
	if e.Category == "" {
		return CategoryNoData
	}
	return Category(e.Category)
}

// AssetExposure holds the exposures of one asset. Without an AssetID the
// position in the response matches the position in the request.
type AssetExposure struct {
	AssetID   *string               `json:"asset_id" yaml:"asset_id" mapstructure:"asset_id"`
	Exposures []AssetHazardExposure `json:"exposures" yaml:"exposures" mapstructure:"exposures"`
}

type AssetExposureResponse struct {
	Items []AssetExposure `json:"items" yaml:"items" mapstructure:"items"`
}
