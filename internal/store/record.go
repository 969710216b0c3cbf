package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadRecord reads and deserializes the record stored under key.
// Corrupted or foreign data is treated identically to absence: ok is false
// and no error surfaces, so callers hydrate defaults transparently.
func LoadRecord(ctx context.Context, s RecordStore, key string) (map[string]any, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, nil
	}
	return rec, true, nil
}

// SaveRecord serializes rec and overwrites the record under key.
func SaveRecord(ctx context.Context, s RecordStore, key string, rec map[string]any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// LoadList reads a collection record (a JSON array) stored under key.
// As with LoadRecord, corruption reads as absence.
func LoadList[T any](ctx context.Context, s RecordStore, key string) ([]T, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

// SaveList serializes items and overwrites the whole collection under key.
// There is no element-level patch at the storage boundary.
func SaveList[T any](ctx context.Context, s RecordStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize record[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// Decode converts a hydrated map record into a typed value via JSON.
func Decode(rec map[string]any, v any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
