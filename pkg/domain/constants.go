package domain

// Defaults applied to absent request fields.
const (
	DefaultScenario     = "rcp8p5"
	DefaultYear         = 2050
	DefaultHazardInterp = "floor"
	DefaultGroupID      = "public"

	// HistoricalCutoffYear is the first projection year; earlier years
	// denote the historical baseline.
	HistoricalCutoffYear = 2030
)

// Category is an exposure level assigned to an asset for one hazard.
type Category string

const (
	CategoryNoData  Category = "NODATA"
	CategoryLow     Category = "LOW"
	CategoryMedium  Category = "MEDIUM"
	CategoryHigh    Category = "HIGH"
	CategoryRedFlag Category = "REDFLAG"
)

// Known reports whether c is one of the declared categories.
func (c Category) Known() bool {
	switch c {
	case CategoryNoData, CategoryLow, CategoryMedium, CategoryHigh, CategoryRedFlag:
		return true
	}
	return false
}
