/*
Package domain contains the data contracts of the physical-risk service.

It defines the entities exchanged with callers (assets, hazard curves,
exposure and vulnerability distributions, exposure requests and responses),
the schema each one is validated against, and the Decode entry point that
turns raw structured input into a typed value or an aggregated validation
failure. The package performs no I/O and holds no mutable state.

# Key Entities

  - Asset: a physical asset; the only open record, undeclared fields land in Extra.
  - IntensityCurve, ExceedanceCurve, Distribution, HazardEventDistrib: hazard shapes.
  - VulnerabilityCurve, VulnerabilityDistrib: damage or disruption response.
  - AssetExposureRequest, AssetExposureResponse: the exposure calculation boundary.

# Usage

	req, err := domain.Decode[domain.AssetExposureRequest](raw)
	if err != nil {
	    for _, e := range schema.ValidationErrors(err) {
	        // report e
	    }
	}
*/
package domain
