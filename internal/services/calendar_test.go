package services

import (
	"context"
	"testing"
	"time"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_RequiresLogin(t *testing.T) {
	e := newEnv(t)
	_, err := e.calendar.List(context.Background())
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestCalendarService_AddAndList(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)
	ctx := context.Background()

	events, err := e.calendar.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	added, err := e.calendar.Add(ctx, models.Event{
		Title:    "Staff meeting",
		Start:    time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC),
		Category: models.EventCategoryMeeting,
		Location: "Staff room",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	events, err = e.calendar.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Staff meeting", events[0].Title)
}

func TestCalendarService_AddRejectsEndBeforeStart(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)

	start := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := e.calendar.Add(context.Background(), models.Event{
		Title: "Backwards",
		Start: start,
		End:   &end,
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCalendarService_Reschedule(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)
	ctx := context.Background()

	added, err := e.calendar.Add(ctx, models.Event{
		Title: "Exam",
		Start: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	newStart := time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)
	require.NoError(t, e.calendar.Reschedule(ctx, added.ID, newStart, nil))

	events, err := e.calendar.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Start.Equal(newStart))
}

func TestCalendarService_UpdateMissing(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)

	err := e.calendar.Update(context.Background(), models.Event{
		ID:    "nope",
		Title: "Ghost",
		Start: time.Now(),
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCalendarService_Remove(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)
	ctx := context.Background()

	added, err := e.calendar.Add(ctx, models.Event{Title: "Sports day", Start: time.Now(), AllDay: true})
	require.NoError(t, err)

	require.NoError(t, e.calendar.Remove(ctx, added.ID))
	assert.ErrorIs(t, e.calendar.Remove(ctx, added.ID), common.ErrNotFound)

	events, err := e.calendar.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCalendarService_CollectionsAreScopedPerOwner(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)
	ctx := context.Background()

	_, err := e.calendar.Add(ctx, models.Event{Title: "Teacher only", Start: time.Now()})
	require.NoError(t, err)

	require.NoError(t, e.gate.Logout(ctx))
	e.loginAdmin(t)

	events, err := e.calendar.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCalendarService_Stats(t *testing.T) {
	e := newEnv(t)
	e.loginTeacher(t)
	ctx := context.Background()

	_, err := e.calendar.Add(ctx, models.Event{Title: "Holiday", Start: time.Now(), AllDay: true, Category: models.EventCategoryHoliday})
	require.NoError(t, err)
	_, err = e.calendar.Add(ctx, models.Event{Title: "Meeting", Start: time.Now(), Category: models.EventCategoryMeeting})
	require.NoError(t, err)

	s, err := e.calendar.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.AllDay)
	assert.Equal(t, 1, s.ByCategory[models.EventCategoryHoliday])
}
