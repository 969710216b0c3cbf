package services

import (
	"context"
	"fmt"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/export"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/store"
)

// SettingsService manages the global settings record. Settings are not
// owner-scoped: every role reads the same record, only the admin screens
// expose writes.
type SettingsService struct {
	records  store.RecordStore
	migrator *store.Migrator
}

func NewSettingsService(records store.RecordStore, migrator *store.Migrator) *SettingsService {
	return &SettingsService{records: records, migrator: migrator}
}

// All returns the hydrated settings map. First access persists the defaults.
func (s *SettingsService) All(ctx context.Context) (map[string]any, error) {
	key := store.BuildKey(store.KindSettings, "")

	rec, ok, err := store.LoadRecord(ctx, s.records, key)
	if err != nil {
		return nil, err
	}
	merged := s.migrator.HydrateRecord(store.KindSettings, models.DefaultSettings(), rec)
	if !ok {
		if err := store.SaveRecord(ctx, s.records, key, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// Typed returns the settings as a struct for display.
func (s *SettingsService) Typed(ctx context.Context) (models.Settings, error) {
	merged, err := s.All(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	var out models.Settings
	if err := store.Decode(merged, &out); err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

// Set updates one named option and writes the whole record back. Names the
// schema does not know are rejected, so a typo cannot grow the record.
func (s *SettingsService) Set(ctx context.Context, name string, value any) error {
	if _, ok := models.DefaultSettings()[name]; !ok {
		return fmt.Errorf("unknown setting %q: %w", name, common.ErrValidation)
	}
	merged, err := s.All(ctx)
	if err != nil {
		return err
	}
	merged[name] = value
	return store.SaveRecord(ctx, s.records, store.BuildKey(store.KindSettings, ""), merged)
}

// ExportJSON renders the full settings record as an indented JSON artifact.
func (s *SettingsService) ExportJSON(ctx context.Context) ([]byte, error) {
	merged, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return export.SettingsJSON(merged)
}
