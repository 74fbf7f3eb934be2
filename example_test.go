package physrisk_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/physrisk"
	"github.com/aretw0/physrisk/pkg/codec"
	"github.com/aretw0/physrisk/pkg/domain"
	"github.com/aretw0/physrisk/pkg/schema"
)

// ExampleValidateReader validates an exposure request read from JSON.
// Absent optional fields take their defaults.
func ExampleValidateReader() {
	payload := `{
		"assets": {"items": [
			{"asset_class": "PowerGeneratingAsset", "latitude": 24.04, "longitude": 91.01, "year_built": "1990"}
		]},
		"year": 2080
	}`

	v, err := physrisk.ValidateReader("asset-exposure-request", codec.JSON, strings.NewReader(payload))
	if err != nil {
		log.Fatal(err)
	}
	req := v.(domain.AssetExposureRequest)

	fmt.Println(req.Scenario, req.Year, req.CalcSettings.HazardInterp)
	fmt.Println(req.Assets.Items[0].Extra["year_built"])
	// Output:
	// rcp8p5 2080 floor
	// 1990
}

// ExampleValidate_errors shows that every offending field is reported.
func ExampleValidate_errors() {
	_, err := physrisk.Validate("assets", map[string]any{"items": []any{
		map[string]any{"asset_class": "A", "latitude": 1, "longitude": 2},
		map[string]any{"latitude": 1, "longitude": 2},
		map[string]any{"asset_class": "A", "latitude": "north", "longitude": 2},
	}})

	for _, e := range schema.ValidationErrors(err) {
		fmt.Println(e)
	}
	// Output:
	// field "items[1].asset_class": field required
	// field "items[2].latitude": value is not a valid float (got string)
}
