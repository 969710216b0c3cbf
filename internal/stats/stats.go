// Package stats computes summary figures over in-memory record collections.
// Everything here is a pure function recomputed on read: at the dashboard's
// data scale (low thousands of records) exact aggregation is cheap and
// memoization would only add staleness bugs.
package stats

import "github.com/springingstars/schooldash/internal/models"

// ReportSummary aggregates one or more report collections.
type ReportSummary struct {
	Total        int
	Ready        int
	Processing   int
	PercentReady float64
	ByCategory   map[models.ReportCategory]int
}

// ComputeReportStats is deterministic: the same collection always yields the
// same summary.
func ComputeReportStats(reports []models.Report) ReportSummary {
	s := ReportSummary{ByCategory: make(map[models.ReportCategory]int)}
	for _, r := range reports {
		s.Total++
		s.ByCategory[r.Category]++
		switch r.Status {
		case models.ReportStatusReady:
			s.Ready++
		case models.ReportStatusProcessing:
			s.Processing++
		}
	}
	if s.Total > 0 {
		s.PercentReady = float64(s.Ready) / float64(s.Total) * 100
	}
	return s
}

// NotificationSummary aggregates the notification collection.
type NotificationSummary struct {
	Total   int
	Unread  int
	Pending int
}

func ComputeNotificationStats(items []models.Notification) NotificationSummary {
	var s NotificationSummary
	for _, n := range items {
		s.Total++
		if !n.Read {
			s.Unread++
		}
		if n.Status == models.NotificationPending {
			s.Pending++
		}
	}
	return s
}

// EventSummary aggregates an owner's calendar collection.
type EventSummary struct {
	Total      int
	AllDay     int
	ByCategory map[models.EventCategory]int
}

func ComputeEventStats(events []models.Event) EventSummary {
	s := EventSummary{ByCategory: make(map[models.EventCategory]int)}
	for _, e := range events {
		s.Total++
		if e.AllDay {
			s.AllDay++
		}
		s.ByCategory[e.Category]++
	}
	return s
}
