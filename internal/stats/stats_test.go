package stats

import (
	"testing"

	"github.com/springingstars/schooldash/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleReports() []models.Report {
	return []models.Report{
		{ID: "1", Status: models.ReportStatusReady, Category: models.CategoryReportCard},
		{ID: "2", Status: models.ReportStatusReady, Category: models.CategoryClassReport},
		{ID: "3", Status: models.ReportStatusProcessing, Category: models.CategoryClassReport},
		{ID: "4", Status: models.ReportStatusReady, Category: models.CategoryDepartmental},
	}
}

func TestComputeReportStats(t *testing.T) {
	s := ComputeReportStats(sampleReports())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Ready)
	assert.Equal(t, 1, s.Processing)
	assert.InDelta(t, 75.0, s.PercentReady, 1e-9)
	assert.Equal(t, 2, s.ByCategory[models.CategoryClassReport])
}

func TestComputeReportStats_Empty(t *testing.T) {
	s := ComputeReportStats(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.PercentReady)
}

func TestComputeReportStats_Deterministic(t *testing.T) {
	reports := sampleReports()
	assert.Equal(t, ComputeReportStats(reports), ComputeReportStats(reports))
}

func TestComputeNotificationStats(t *testing.T) {
	items := []models.Notification{
		{ID: "1", Read: false, Status: models.NotificationPending},
		{ID: "2", Read: true, Status: models.NotificationApproved},
		{ID: "3", Read: false, Status: models.NotificationPending},
	}
	s := ComputeNotificationStats(items)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Unread)
	assert.Equal(t, 2, s.Pending)
}

func TestComputeEventStats(t *testing.T) {
	events := []models.Event{
		{ID: "1", AllDay: true, Category: models.EventCategoryHoliday},
		{ID: "2", Category: models.EventCategoryMeeting},
		{ID: "3", Category: models.EventCategoryMeeting},
	}
	s := ComputeEventStats(events)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.AllDay)
	assert.Equal(t, 2, s.ByCategory[models.EventCategoryMeeting])
}
