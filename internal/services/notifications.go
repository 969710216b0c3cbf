package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/stats"
	"github.com/springingstars/schooldash/internal/store"
)

// NotificationService manages the global activity feed shown to admins. The
// feed is one collection record, newest entry first.
type NotificationService struct {
	records store.RecordStore
}

func NewNotificationService(records store.RecordStore) *NotificationService {
	return &NotificationService{records: records}
}

func (s *NotificationService) feedKey() string {
	return store.BuildKey(store.KindNotifications, "")
}

// List returns the feed, newest first. First access persists an empty feed.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	items, ok, err := store.LoadList[models.Notification](ctx, s.records, s.feedKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := store.SaveList(ctx, s.records, s.feedKey(), []models.Notification{}); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Record prepends a pending entry to the feed and writes it back.
func (s *NotificationService) Record(ctx context.Context, kind models.NotificationKind, actor, message string) (models.Notification, error) {
	n := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Status:    models.NotificationPending,
	}

	items, err := s.List(ctx)
	if err != nil {
		return models.Notification{}, err
	}
	items = append([]models.Notification{n}, items...)
	if err := store.SaveList(ctx, s.records, s.feedKey(), items); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// MarkRead marks one entry as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Read = true
			return store.SaveList(ctx, s.records, s.feedKey(), items)
		}
	}
	return fmt.Errorf("notification[%s]: %w", id, common.ErrNotFound)
}

// MarkAllRead marks the whole feed as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Read = true
	}
	return store.SaveList(ctx, s.records, s.feedKey(), items)
}

// SetStatus approves or rejects an entry that asks for a decision.
func (s *NotificationService) SetStatus(ctx context.Context, id string, status models.NotificationStatus) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Status = status
			items[i].Read = true
			return store.SaveList(ctx, s.records, s.feedKey(), items)
		}
	}
	return fmt.Errorf("notification[%s]: %w", id, common.ErrNotFound)
}

// Stats recomputes the feed summary.
func (s *NotificationService) Stats(ctx context.Context) (stats.NotificationSummary, error) {
	items, err := s.List(ctx)
	if err != nil {
		return stats.NotificationSummary{}, err
	}
	return stats.ComputeNotificationStats(items), nil
}
