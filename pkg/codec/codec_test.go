package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_KeepsNumbers(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"latitude": 51.5, "year": 2050, "ids": [1, "a"]}`))
	require.NoError(t, err)

	m := v.(map[string]any)
	assert.Equal(t, json.Number("51.5"), m["latitude"])
	assert.Equal(t, json.Number("2050"), m["year"])
	assert.Equal(t, []any{json.Number("1"), "a"}, m["ids"])
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"truncated", `{"a": 1`},
		{"trailing data", `{"a": 1} {"b": 2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAML_NormalizesKeys(t *testing.T) {
	v, err := DecodeYAML(strings.NewReader(`
items:
  - asset_class: PowerGeneratingAsset
    latitude: 51.5
    attributes:
      1: ground
`))
	require.NoError(t, err)

	items := v.(map[string]any)["items"].([]any)
	asset := items[0].(map[string]any)
	assert.Equal(t, "PowerGeneratingAsset", asset["asset_class"])
	assert.Equal(t, 51.5, asset["latitude"])
	assert.Equal(t, map[string]any{"1": "ground"}, asset["attributes"])
}

func TestDecodeYAML_Empty(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, YAML, DetectFormat("assets.yml"))
	assert.Equal(t, YAML, DetectFormat("ASSETS.YAML"))
	assert.Equal(t, JSON, DetectFormat("assets.json"))
	assert.Equal(t, JSON, DetectFormat("-"))

	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode("toml", strings.NewReader("{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeDecode(t *testing.T) {
	payload := map[string]any{"scenario": "ssp585", "year": 2080}

	for _, f := range []Format{JSON, YAML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Marshal(f, payload)
			require.NoError(t, err)

			back, err := Unmarshal(f, data)
			require.NoError(t, err)
			assert.Equal(t, "ssp585", back.(map[string]any)["scenario"])
		})
	}
}
