package event

import "encoding/json"

// DecodePayload decodes an event payload into T.
// MemoryBus delivers the struct as published; payloads read back from the
// dead-letter file arrive as maps and go through a JSON round-trip.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if v, ok := input.(*T); ok && v != nil {
		return *v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
