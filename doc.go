/*
Package physrisk validates the data contracts of a climate physical-risk
calculation service.

Raw payloads (decoded JSON or YAML) are checked against declared schemas and
materialised into typed entities such as assets, hazard intensity curves,
vulnerability curves and exposure requests. Validation never stops at the
first problem: every offending field is reported, each with its path, e.g.
"items[2].latitude".

# Packages

  - pkg/schema: the validation core, including typed numeric arrays whose element type is fixed when the schema is declared.
  - pkg/domain: the entities and their schemas.
  - pkg/codec: JSON and YAML payload decoding.

# Usage

	v, err := physrisk.ValidateReader("assets", codec.JSON, file)
	if err != nil {
	    for _, e := range schema.ValidationErrors(err) {
	        log.Println(e)
	    }
	    return
	}
	assets := v.(domain.Assets)

The physrisk command wraps the same calls:

	physrisk validate --kind asset-exposure-request request.json
	physrisk schema assets
*/
package physrisk
