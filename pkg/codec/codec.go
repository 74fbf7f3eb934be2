// Package codec reads and writes raw payloads in JSON or YAML.
//
// Decoded payloads are plain trees of map[string]any, []any and scalars,
// ready to be validated by package schema. JSON numbers are kept as
// json.Number so no precision is lost before validation.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a payload encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than JSON or YAML.
var ErrUnknownFormat = errors.New("unknown payload format")

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat picks the format from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode reads a single payload from r.
func Decode(format Format, r io.Reader) (any, error) {
	switch format {
	case JSON:
		return DecodeJSON(r)
	case YAML:
		return DecodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// DecodeJSON reads exactly one JSON value from r.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse json: unexpected data after payload")
	}
	return v, nil
}

// DecodeYAML reads one YAML document from r. Mapping keys are converted to
// strings so the result has the same shape as a decoded JSON payload.
func DecodeYAML(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml: empty document")
		}
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = normalize(inner)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[fmt.Sprint(k)] = normalize(inner)
		}
		return out
	case []any:
		for i, inner := range t {
			t[i] = normalize(inner)
		}
		return t
	}
	return v
}

// Encode writes v to w. JSON output is indented.
func Encode(format Format, w io.Writer, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Marshal encodes v to bytes.
func Marshal(format Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(format, &buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes one payload from data.
func Unmarshal(format Format, data []byte) (any, error) {
	return Decode(format, bytes.NewReader(data))
}
