package physrisk

import (
	"fmt"
	"io"

	"github.com/aretw0/physrisk/pkg/codec"
	"github.com/aretw0/physrisk/pkg/domain"
)

// Kinds lists the payload kinds accepted by Validate.
func Kinds() []string {
	kinds := domain.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name)
	}
	return names
}

// Validate checks a decoded payload against the named kind and returns the
// typed entity, e.g. domain.Assets for "assets".
func Validate(kind string, raw any) (any, error) {
	k, err := domain.LookupKind(kind)
	if err != nil {
		return nil, err
	}
	return k.Decode(raw)
}

// ValidateReader decodes one payload from r and validates it. Parse errors
// are returned as is; validation failures as a *schema.AggregateError.
func ValidateReader(kind string, format codec.Format, r io.Reader) (any, error) {
	k, err := domain.LookupKind(kind)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decode(format, r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s payload: %w", kind, err)
	}
	return k.Decode(raw)
}
