package sqlstore

import (
	"encoding/json"
	"fmt"
)

func encodeStrings(values []string) (string, error) {
	if len(values) == 0 {
		return emptyJSONArray, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

func decodeStrings(raw string) ([]string, error) {
	values := []string{}
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return values, nil
}

func encodeIntMap(values map[string]int) (string, error) {
	if len(values) == 0 {
		return emptyJSONObject, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode stat map: %w", err)
	}
	return string(data), nil
}

func decodeIntMap(raw string) (map[string]int, error) {
	values := map[string]int{}
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("failed to decode stat map: %w", err)
	}
	return values, nil
}
