package services

import (
	"context"
	"fmt"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/inline"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/session"
	"github.com/springingstars/schooldash/internal/store"
)

// ProfileService manages the signed-in owner's profile record. Edits follow
// the batched model: changes accumulate at the caller and reach the store as
// one overwrite on Save, so an abandoned edit costs nothing.
type ProfileService struct {
	records  store.RecordStore
	gate     *session.Gate
	migrator *store.Migrator

	notifications *NotificationService

	avatarThreshold int64
}

func NewProfileService(records store.RecordStore, gate *session.Gate, migrator *store.Migrator,
	notifications *NotificationService, avatarThreshold int64) *ProfileService {
	return &ProfileService{
		records:         records,
		gate:            gate,
		migrator:        migrator,
		notifications:   notifications,
		avatarThreshold: avatarThreshold,
	}
}

// Load returns the hydrated profile of the signed-in owner. First access
// persists the role-aware defaults so later sessions read a migrated record.
func (s *ProfileService) Load(ctx context.Context) (models.Profile, error) {
	merged, _, err := s.load(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	var p models.Profile
	if err := store.Decode(merged, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *ProfileService) load(ctx context.Context) (map[string]any, string, error) {
	sess, err := s.gate.Current()
	if err != nil {
		return nil, "", err
	}
	key := store.BuildKey(store.KindProfile, sess.OwnerID)

	rec, ok, err := store.LoadRecord(ctx, s.records, key)
	if err != nil {
		return nil, "", err
	}

	defaults := models.DefaultProfile(sess.Role, sess.DisplayName, sess.Email)
	merged := s.migrator.HydrateRecord(store.KindProfile, defaults, rec)

	if !ok {
		if err := store.SaveRecord(ctx, s.records, key, merged); err != nil {
			return nil, "", err
		}
	}
	return merged, key, nil
}

// Save applies changes on top of the hydrated record and overwrites it in a
// single write. Stored fields this release does not know survive the
// round-trip; a failed validation leaves the store untouched.
func (s *ProfileService) Save(ctx context.Context, changes map[string]any) (models.Profile, error) {
	merged, key, err := s.load(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	for k, v := range changes {
		merged[k] = v
	}

	var p models.Profile
	if err := store.Decode(merged, &p); err != nil {
		return models.Profile{}, err
	}
	if err := validate.Struct(p); err != nil {
		return models.Profile{}, fmt.Errorf("profile rejected: %v: %w", err, common.ErrValidation)
	}

	if err := store.SaveRecord(ctx, s.records, key, merged); err != nil {
		return models.Profile{}, err
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("%s updated their profile", p.DisplayName())
		if _, err := s.notifications.Record(ctx, models.NotificationProfileUpdate, p.DisplayName(), msg); err != nil {
			return models.Profile{}, err
		}
	}
	return p, nil
}

// Discard drops an unsaved working copy by re-reading the persisted record.
// Callers batching edits call this instead of Save to abandon them.
func (s *ProfileService) Discard(ctx context.Context) (models.Profile, error) {
	return s.Load(ctx)
}

// SetAvatar inlines the image into the profile record. Images at or above the
// inlining threshold are rejected outright rather than stored without their
// bytes.
func (s *ProfileService) SetAvatar(ctx context.Context, data []byte, mimeType string) (models.Profile, error) {
	payload := inline.Encode(data, mimeType, s.avatarThreshold)
	if payload == nil {
		return models.Profile{}, fmt.Errorf("avatar is %d bytes: %w", len(data), common.ErrFileTooLarge)
	}
	return s.Save(ctx, map[string]any{"avatar": payload})
}
