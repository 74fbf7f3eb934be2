package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ParseTypeMap declares an object from field names mapped to type strings.
// A trailing "?" marks a field optional, everything else is required.
// Example: {"asset_class": "string", "capacity": "float?", "intensity": "vector[float64]"}
func ParseTypeMap(name string, typeMap map[string]string, opts ...ObjectOption) (*Object, error) {
	keys := make([]string, 0, len(typeMap))
	for key := range typeMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		typeStr := strings.TrimSpace(typeMap[key])
		required := !strings.HasSuffix(typeStr, "?")
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		fields = append(fields, Field{Name: key, Type: t, Required: required})
	}
	return NewObject(name, fields, opts...)
}

// ParseObjectJSON is the inverse of Object.MarshalJSON for objects whose
// fields have built-in types.
func ParseObjectJSON(data []byte) (*Object, error) {
	var raw struct {
		Name   string            `json:"name"`
		Open   bool              `json:"open"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: parse object: %w", err)
	}

	var opts []ObjectOption
	if raw.Open {
		opts = append(opts, AllowExtra())
	}
	return ParseTypeMap(raw.Name, raw.Fields, opts...)
}
