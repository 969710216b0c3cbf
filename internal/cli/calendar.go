package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/springingstars/schooldash/internal/export"
	"github.com/springingstars/schooldash/internal/filex"
	"github.com/springingstars/schooldash/internal/models"
)

var eventTimeLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

func parseEventTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (a *App) listEvents(ctx context.Context) error {
	events, err := a.calendar.List(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No events")
		return nil
	}
	for _, e := range events {
		end := ""
		if e.End != nil {
			end = " - " + e.End.Format("2006-01-02 15:04")
		}
		fmt.Printf("%s  %s%s  [%s] %s\n", e.ID, e.Start.Format("2006-01-02 15:04"), end, e.Category, e.Title)
	}
	return nil
}

func (a *App) addEvent(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	startText, err := getSimpleText(a.reader, "Start (YYYY-MM-DD or YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := parseEventTime(startText)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (meeting/exam/holiday/activity/other)", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return err
	}

	e := models.Event{
		Title:    title,
		Start:    start,
		AllDay:   len(startText) == len("2006-01-02"),
		Category: models.EventCategory(category),
		Location: location,
	}
	added, err := a.calendar.Add(ctx, e)
	if err != nil {
		return err
	}
	fmt.Printf("Added event %s\n", added.ID)
	return nil
}

func (a *App) removeEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Event id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.calendar.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Println("Removed")
	return nil
}

func (a *App) rescheduleEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Event id", os.Stdout)
	if err != nil {
		return err
	}
	startText, err := getSimpleText(a.reader, "New start (YYYY-MM-DD or YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := parseEventTime(startText)
	if err != nil {
		return err
	}
	if err := a.calendar.Reschedule(ctx, id, start, nil); err != nil {
		return err
	}
	fmt.Println("Rescheduled")
	return nil
}

func (a *App) exportEvents(ctx context.Context) error {
	events, err := a.calendar.List(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.EventsCSV(&buf, events); err != nil {
		return err
	}

	dir, err := filex.EnsureSubDir(a.config.ArtifactsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteArtifact(dir, "calendar.csv", buf.Bytes())
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d events to %s\n", len(events), path)
	return nil
}
