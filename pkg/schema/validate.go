package schema

import "errors"

// Validate coerces raw against t. On failure the error is always an
// *AggregateError listing every offending field path; no partial value is
// returned.
func Validate(t Type, raw any) (any, error) {
	if err := configuredType(t); err != nil {
		return nil, err
	}
	v, err := t.Coerce(raw)
	if err == nil {
		return v, nil
	}

	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return nil, aggr
	}
	return nil, &AggregateError{Errors: prefixed("", err)}
}
