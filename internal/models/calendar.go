package models

import (
	"fmt"
	"time"

	"github.com/springingstars/schooldash/internal/common"
)

// EventCategory classifies a calendar event.
type EventCategory string

const (
	EventCategoryMeeting  EventCategory = "meeting"
	EventCategoryExam     EventCategory = "exam"
	EventCategoryHoliday  EventCategory = "holiday"
	EventCategoryActivity EventCategory = "activity"
	EventCategoryOther    EventCategory = "other"
)

// Event is one entry of an owner's calendar collection.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title" validate:"required"`
	Start       time.Time     `json:"start"`
	End         *time.Time    `json:"end,omitempty"`
	AllDay      bool          `json:"allDay"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`
	Description string        `json:"description"`
}

// Validate enforces the collection's invariants: a title is required and,
// unless the event is all-day, the end must not precede the start.
func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title is required: %w", common.ErrValidation)
	}
	if e.Start.IsZero() {
		return fmt.Errorf("event start is required: %w", common.ErrValidation)
	}
	if !e.AllDay && e.End != nil && e.End.Before(e.Start) {
		return fmt.Errorf("event end precedes start: %w", common.ErrValidation)
	}
	return nil
}
