package models

import "time"

// NotificationKind classifies the activity a notification was recorded for.
type NotificationKind string

const (
	NotificationReportUpload  NotificationKind = "report_upload"
	NotificationProfileUpdate NotificationKind = "profile_update"
	NotificationGradeUpdate   NotificationKind = "grade_update"
	NotificationBudget        NotificationKind = "budget_submission"
	NotificationAssignment    NotificationKind = "assignment_creation"
)

type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "pending"
	NotificationApproved NotificationStatus = "approved"
	NotificationRejected NotificationStatus = "rejected"
)

// Notification is one entry of the global notification collection shown on
// the admin activity feed.
type Notification struct {
	ID        string             `json:"id"`
	Kind      NotificationKind   `json:"type"`
	Message   string             `json:"message"`
	Actor     string             `json:"user"`
	Timestamp time.Time          `json:"timestamp"`
	Read      bool               `json:"read"`
	Status    NotificationStatus `json:"status"`
}
