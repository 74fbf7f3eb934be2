package domain

import "github.com/aretw0/physrisk/pkg/schema"

func emptyList() any { return []any{} }

func zeros(shape ...int) func() any {
	return func() any { return schema.Zeros[float64](shape...) }
}

func constant(v any) func() any {
	return func() any { return v }
}

var indexValuesType = schema.Union(schema.List(schema.Float()), schema.List(schema.String()))

var (
	AssetSchema = schema.MustObject("Asset", []schema.Field{
		{Name: "asset_class", Type: schema.String(), Required: true,
			Description: "name of asset class; corresponds to physrisk class names, e.g. PowerGeneratingAsset"},
		{Name: "latitude", Type: schema.Float(), Required: true, Description: "Latitude in degrees"},
		{Name: "longitude", Type: schema.Float(), Required: true, Description: "Longitude in degrees"},
		{Name: "type", Type: schema.Optional(schema.String()),
			Description: "Type of the asset <level_1>/<level_2>/<level_3>"},
		{Name: "location", Type: schema.Optional(schema.String()),
			Description: "Location (e.g. Africa, Asia, Europe, Global, Oceania, North America, South America)"},
		{Name: "capacity", Type: schema.Optional(schema.Float()), Description: "Power generation capacity"},
		{Name: "attributes", Type: schema.Optional(schema.MapOf(schema.String())),
			Description: "Bespoke attributes (e.g. number of storeys, structure type, occupancy type)"},
	}, schema.AllowExtra(), schema.WithDescription("A physical asset, identified by its asset class and its type within the class."))

	AssetsSchema = schema.MustObject("Assets", []schema.Field{
		{Name: "items", Type: schema.List(AssetSchema), Required: true},
	}, schema.WithDescription("A collection of assets."))

	BaseHazardRequestSchema = schema.MustObject("BaseHazardRequest", []schema.Field{
		{Name: "group_ids", Type: schema.List(schema.String()),
			Default:     func() any { return []any{DefaultGroupID} },
			Description: "Data groups which can be used to service the request, e.g. 'osc' or 'public'."},
	})

	CountrySchema = schema.MustObject("Country", []schema.Field{
		{Name: "country", Type: schema.String(), Required: true},
		{Name: "continent", Type: schema.String(), Required: true},
		{Name: "country_iso_a3", Type: schema.String(), Required: true},
	}, schema.WithDescription("Country information."))

	CountriesSchema = schema.MustObject("Countries", []schema.Field{
		{Name: "items", Type: schema.List(CountrySchema), Required: true},
	})

	IntensityCurveSchema = schema.MustObject("IntensityCurve", []schema.Field{
		{Name: "intensities", Type: schema.List(schema.Float()), Default: emptyList,
			Description: "Hazard indicator intensities."},
		{Name: "return_periods", Type: schema.Optional(schema.List(schema.Float())), Default: emptyList,
			Description: "[Deprecated] Return period in years in the case of an acute hazard."},
		{Name: "index_values", Type: schema.Optional(indexValuesType), Default: emptyList,
			Description: "Return periods in years for an acute hazard or indicator thresholds for a multi-threshold chronic hazard."},
		{Name: "index_name", Type: schema.String(), Default: constant(""),
			Description: "'return period' for an acute hazard, 'threshold' for a multi-threshold chronic hazard."},
	}, schema.WithCheck(checkIntensityCurve), schema.WithDescription("Hazard indicator intensity curve."))

	ExceedanceCurveSchema = schema.MustObject("ExceedanceCurve", []schema.Field{
		{Name: "values", Type: schema.Vector[float64](), Default: zeros(10)},
		{Name: "exceed_probabilities", Type: schema.Vector[float64](), Default: zeros(10)},
	}, schema.WithCheck(sameLength("values", "exceed_probabilities")),
		schema.WithDescription("General exceedance curve, e.g. of hazard or impact."))

	DistributionSchema = schema.MustObject("Distribution", []schema.Field{
		{Name: "bin_edges", Type: schema.Vector[float64](), Default: zeros(11)},
		{Name: "probabilities", Type: schema.Vector[float64](), Default: zeros(10)},
	}, schema.WithCheck(binned("bin_edges", "probabilities")),
		schema.WithDescription("Binned probability distribution."))

	HazardEventDistribSchema = schema.MustObject("HazardEventDistrib", []schema.Field{
		{Name: "intensity_bin_edges", Type: schema.Vector[float64](), Default: zeros(11)},
		{Name: "probabilities", Type: schema.Vector[float64](), Default: zeros(10)},
		{Name: "path", Type: schema.List(schema.String()), Default: emptyList,
			Description: "Path to the hazard indicator data source."},
	}, schema.WithCheck(binned("intensity_bin_edges", "probabilities")),
		schema.WithDescription("Intensity distribution of an acute hazard."))

	VulnerabilityCurveSchema = schema.MustObject("VulnerabilityCurve", []schema.Field{
		{Name: "asset_type", Type: schema.String(), Required: true},
		{Name: "location", Type: schema.String(), Required: true},
		{Name: "event_type", Type: schema.String(), Required: true,
			Description: "hazard event type, e.g. RiverineInundation"},
		{Name: "impact_type", Type: schema.String(), Required: true, Description: "'Damage' or 'Disruption'"},
		{Name: "intensity", Type: schema.List(schema.Float()), Required: true},
		{Name: "intensity_units", Type: schema.String(), Required: true, Description: "units of the intensity"},
		{Name: "impact_mean", Type: schema.List(schema.Float()), Required: true,
			Description: "mean impact (damage or disruption)"},
		{Name: "impact_std", Type: schema.List(schema.Float()), Required: true,
			Description: "standard deviation of impact (damage or disruption)"},
	}, schema.WithCheck(checkVulnerabilityCurve), schema.WithDescription("A damage or disruption curve."))

	VulnerabilityCurvesSchema = schema.MustObject("VulnerabilityCurves", []schema.Field{
		{Name: "items", Type: schema.List(VulnerabilityCurveSchema), Required: true},
	})

	VulnerabilityDistribSchema = schema.MustObject("VulnerabilityDistrib", []schema.Field{
		{Name: "intensity_bin_edges", Type: schema.Vector[float64](), Default: zeros(10)},
		{Name: "impact_bin_edges", Type: schema.Vector[float64](), Default: zeros(10)},
		{Name: "prob_matrix", Type: schema.Matrix[float64](), Default: zeros(9, 9)},
	}, schema.WithCheck(checkVulnerabilityDistrib), schema.WithDescription("A vulnerability matrix."))

	CalcSettingsSchema = schema.MustObject("CalcSettings", []schema.Field{
		{Name: "hazard_interp", Type: schema.String(), Default: constant(DefaultHazardInterp),
			Description: "Interpolation method."},
	})

	AssetExposureRequestSchema = schema.MustObject("AssetExposureRequest", []schema.Field{
		{Name: "assets", Type: AssetsSchema, Required: true},
		{Name: "calc_settings", Type: CalcSettingsSchema,
			Default:     func() any { return map[string]any{"hazard_interp": DefaultHazardInterp} },
			Description: "Interpolation method."},
		{Name: "scenario", Type: schema.String(), Default: constant(DefaultScenario),
			Description: "Name of scenario ('rcp8p5')"},
		{Name: "year", Type: schema.Int(), Default: constant(int64(DefaultYear)),
			Description: "Projection year (2030, 2050, 2080). Any year before 2030, e.g. 1980, is treated as historical."},
	}, schema.WithDescription("Exposure calculation request."))

	AssetHazardExposureSchema = schema.MustObject("AssetHazardExposure", []schema.Field{
		{Name: "hazard_type", Type: schema.String(), Default: constant(""), Description: "Type of the hazard."},
		{Name: "category", Type: schema.String(), Default: constant(""), Description: "Exposure level."},
	})

	AssetExposureSchema = schema.MustObject("AssetExposure", []schema.Field{
		{Name: "asset_id", Type: schema.Optional(schema.String()),
			Description: "Asset identifier; when absent the order of assets in the response matches the request."},
		{Name: "exposures", Type: schema.List(AssetHazardExposureSchema), Default: emptyList,
			Description: "Exposures for each hazard type."},
	})

	AssetExposureResponseSchema = schema.MustObject("AssetExposureResponse", []schema.Field{
		{Name: "items", Type: schema.List(AssetExposureSchema), Required: true},
	}, schema.WithDescription("Response to an exposure request."))
)

func (Asset) Schema() *schema.Object                 { return AssetSchema }
func (Assets) Schema() *schema.Object                { return AssetsSchema }
func (BaseHazardRequest) Schema() *schema.Object     { return BaseHazardRequestSchema }
func (Country) Schema() *schema.Object               { return CountrySchema }
func (Countries) Schema() *schema.Object             { return CountriesSchema }
func (IntensityCurve) Schema() *schema.Object        { return IntensityCurveSchema }
func (ExceedanceCurve) Schema() *schema.Object       { return ExceedanceCurveSchema }
func (Distribution) Schema() *schema.Object          { return DistributionSchema }
func (HazardEventDistrib) Schema() *schema.Object    { return HazardEventDistribSchema }
func (VulnerabilityCurve) Schema() *schema.Object    { return VulnerabilityCurveSchema }
func (VulnerabilityCurves) Schema() *schema.Object   { return VulnerabilityCurvesSchema }
func (VulnerabilityDistrib) Schema() *schema.Object  { return VulnerabilityDistribSchema }
func (CalcSettings) Schema() *schema.Object          { return CalcSettingsSchema }
func (AssetExposureRequest) Schema() *schema.Object  { return AssetExposureRequestSchema }
func (AssetHazardExposure) Schema() *schema.Object   { return AssetHazardExposureSchema }
func (AssetExposure) Schema() *schema.Object         { return AssetExposureSchema }
func (AssetExposureResponse) Schema() *schema.Object { return AssetExposureResponseSchema }
