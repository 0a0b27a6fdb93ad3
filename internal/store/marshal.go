package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// marshalKeys converts an option key list to JSON TEXT. A nil list is
// stored as [] so the column is never NULL.
func marshalKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(keys); err != nil {
		return "", fmt.Errorf("marshal keys: %w", err)
	}
	// Encoder adds a trailing newline
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalKeys parses JSON TEXT to an option key list.
func unmarshalKeys(data string) ([]string, error) {
	keys := []string{}
	if data == "" || data == "[]" {
		return keys, nil
	}
	if err := json.Unmarshal([]byte(data), &keys); err != nil {
		return nil, fmt.Errorf("unmarshal keys: %w", err)
	}
	return keys, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
