package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/session"
	"github.com/springingstars/schooldash/internal/stats"
	"github.com/springingstars/schooldash/internal/store"
)

// CalendarService manages the signed-in owner's event collection. Unlike the
// profile there is no batching: every mutation writes the whole collection
// back immediately.
type CalendarService struct {
	records store.RecordStore
	gate    *session.Gate
}

func NewCalendarService(records store.RecordStore, gate *session.Gate) *CalendarService {
	return &CalendarService{records: records, gate: gate}
}

// List returns the owner's events. First access persists an empty collection.
func (s *CalendarService) List(ctx context.Context) ([]models.Event, error) {
	key, err := s.gate.OwnerKey(store.KindCalendarEvents)
	if err != nil {
		return nil, err
	}
	events, ok, err := store.LoadList[models.Event](ctx, s.records, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := store.SaveList(ctx, s.records, key, []models.Event{}); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// Add validates e, assigns it an id, and appends it to the collection.
func (s *CalendarService) Add(ctx context.Context, e models.Event) (models.Event, error) {
	if err := e.Validate(); err != nil {
		return models.Event{}, err
	}
	events, err := s.List(ctx)
	if err != nil {
		return models.Event{}, err
	}
	e.ID = uuid.NewString()
	events = append(events, e)
	if err := s.save(ctx, events); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Update replaces the event carrying the same id.
func (s *CalendarService) Update(ctx context.Context, e models.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	events, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == e.ID {
			events[i] = e
			return s.save(ctx, events)
		}
	}
	return fmt.Errorf("event[%s]: %w", e.ID, common.ErrNotFound)
}

// Reschedule moves an existing event to a new start and end.
func (s *CalendarService) Reschedule(ctx context.Context, id string, start time.Time, end *time.Time) error {
	events, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == id {
			events[i].Start = start
			events[i].End = end
			if err := events[i].Validate(); err != nil {
				return err
			}
			return s.save(ctx, events)
		}
	}
	return fmt.Errorf("event[%s]: %w", id, common.ErrNotFound)
}

// Remove deletes the event with the given id.
func (s *CalendarService) Remove(ctx context.Context, id string) error {
	events, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return fmt.Errorf("event[%s]: %w", id, common.ErrNotFound)
	}
	return s.save(ctx, kept)
}

// Stats recomputes the owner's event summary from the stored collection.
func (s *CalendarService) Stats(ctx context.Context) (stats.EventSummary, error) {
	events, err := s.List(ctx)
	if err != nil {
		return stats.EventSummary{}, err
	}
	return stats.ComputeEventStats(events), nil
}

func (s *CalendarService) save(ctx context.Context, events []models.Event) error {
	key, err := s.gate.OwnerKey(store.KindCalendarEvents)
	if err != nil {
		return err
	}
	return store.SaveList(ctx, s.records, key, events)
}
