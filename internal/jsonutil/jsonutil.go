// Package jsonutil provides shared helpers for decoding loosely-typed JSON
// response bodies: context-wrapped errors and safe field lookups.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeObject parses data as a JSON object.
// Empty input, arrays, scalars and null are all rejected.
func DecodeObject(data []byte, context string) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: empty body", context)
	}
	var m map[string]interface{}
	if err := UnmarshalWithContext(data, &m, context); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%s: not a JSON object", context)
	}
	return m, nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetStringOr extracts a non-empty string value from m, falling back to
// defaultValue when the key is missing, not a string, or empty.
func GetStringOr(m map[string]interface{}, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
