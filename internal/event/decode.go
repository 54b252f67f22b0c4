package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned by Decode for events from another schema
var ErrUnsupportedVersion = errors.New("unsupported event schema version")

// Decode checks evt's schema version, then decodes its payload into T.
func Decode[T any](evt Event) (T, error) {
	if evt.Version != "" && evt.Version != EventSchemaVersion {
		var zero T
		return zero, fmt.Errorf("%w: %s (%s)", ErrUnsupportedVersion, evt.Version, evt.Type)
	}
	return DecodePayload[T](evt.Payload)
}

// DecodePayload returns input as T. Payloads published on the MemoryBus
// already are T; anything else (maps from JSON) goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var out T
	raw, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", input, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}
