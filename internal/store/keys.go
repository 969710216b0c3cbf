package store

// Kind identifies an entity namespace in the record store. The kind is the
// storage key for global records and the key prefix for owner-scoped ones.
type Kind string

const (
	KindSession        Kind = "session"
	KindProfile        Kind = "profile"
	KindCalendarEvents Kind = "calendar_events"
	KindSettings       Kind = "settings"
	KindNotifications  Kind = "notifications"

	// Report collections are keyed per category, not per owner.
	KindReportCards         Kind = "admin_report_cards"
	KindClassReports        Kind = "teacher_class_reports"
	KindDepartmentalReports Kind = "departmental_reports"
)

// BuildKey maps (kind, ownerID) to a storage key. Owner-scoped kinds embed the
// owner id; global kinds pass an empty ownerID and map to the bare kind.
//
// The mapping is pure and deterministic: the same inputs always produce the
// same key, and two distinct (kind, ownerID) pairs never collide.
func BuildKey(kind Kind, ownerID string) string {
	if ownerID == "" {
		return string(kind)
	}
	return string(kind) + "_" + ownerID
}
