package physrisk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/physrisk"
	"github.com/aretw0/physrisk/pkg/codec"
	"github.com/aretw0/physrisk/pkg/domain"
	"github.com/aretw0/physrisk/pkg/schema"
)

func TestKinds(t *testing.T) {
	kinds := physrisk.Kinds()
	assert.Contains(t, kinds, "assets")
	assert.Contains(t, kinds, "asset-exposure-response")
	assert.Len(t, kinds, len(domain.Kinds()))
}

func TestValidate_UnknownKind(t *testing.T) {
	_, err := physrisk.Validate("flood", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	_, err = physrisk.ValidateReader("flood", codec.JSON, strings.NewReader("{}"))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestValidateReader_YAML(t *testing.T) {
	v, err := physrisk.ValidateReader("distribution", codec.YAML, strings.NewReader(`
bin_edges: [0, 1, 2]
probabilities: [0.4, 0.6]
`))
	require.NoError(t, err)
	d := v.(domain.Distribution)
	assert.Equal(t, []float64{0.4, 0.6}, d.Probabilities.Values())
}

func TestValidateReader_ParseError(t *testing.T) {
	_, err := physrisk.ValidateReader("assets", codec.JSON, strings.NewReader(`{"items": [`))
	require.Error(t, err)
	assert.Nil(t, schema.ValidationErrors(err))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, physrisk.Version)
	assert.NotContains(t, physrisk.Version, "\n")
}
