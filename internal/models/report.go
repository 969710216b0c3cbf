package models

import (
	"github.com/springingstars/schooldash/internal/inline"
	"github.com/springingstars/schooldash/internal/store"
)

// ReportCategory selects one of the three report collections. Each category
// is persisted under its own storage key and shown to a different audience.
type ReportCategory string

const (
	CategoryReportCard   ReportCategory = "report-card"
	CategoryClassReport  ReportCategory = "class-report"
	CategoryDepartmental ReportCategory = "departmental-report"
)

// Kind returns the store namespace for the category's collection.
func (c ReportCategory) Kind() store.Kind {
	switch c {
	case CategoryReportCard:
		return store.KindReportCards
	case CategoryClassReport:
		return store.KindClassReports
	case CategoryDepartmental:
		return store.KindDepartmentalReports
	default:
		return ""
	}
}

// Valid reports whether c is one of the three known categories.
func (c ReportCategory) Valid() bool {
	return c.Kind() != ""
}

// ReportCategories lists every report collection, in display order.
var ReportCategories = []ReportCategory{CategoryReportCard, CategoryClassReport, CategoryDepartmental}

type ReportStatus string

const (
	ReportStatusReady      ReportStatus = "Ready"
	ReportStatusProcessing ReportStatus = "Processing"
)

// Report is one entry of a category's report collection. Uploaded reports
// carry file metadata and, when the file was small enough at upload time, an
// inline payload. Payload is nil for generated reports and for uploads above
// the inlining threshold.
type Report struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Status      ReportStatus    `json:"status"`
	Category    ReportCategory  `json:"category"`
	FileName    string          `json:"fileName,omitempty"`
	FileSize    int64           `json:"fileSize,omitempty"`
	MimeType    string          `json:"mimeType,omitempty"`
	Payload     *inline.Payload `json:"payload,omitempty"`
}

// VisibleReportCategories resolves which report collections a signed-in user
// sees: admins get report cards, class teachers their class reports, and
// department heads (teaching or non-teaching) the departmental reports.
func VisibleReportCategories(role Role, p Profile) []ReportCategory {
	var out []ReportCategory
	if role == RoleAdmin {
		out = append(out, CategoryReportCard)
	}
	if role == RoleTeacher && p.IsClassTeacher {
		out = append(out, CategoryClassReport)
	}
	if (role == RoleTeacher || role == RoleNonTeaching) && p.IsDepartmentHead {
		out = append(out, CategoryDepartmental)
	}
	return out
}

// DefaultReports returns the collection a category is seeded with on first
// access, before any upload has happened.
func DefaultReports(c ReportCategory) []Report {
	switch c {
	case CategoryReportCard:
		return []Report{
			{
				ID:          "rc-1",
				Title:       "Progressive Report Card - Term 2",
				Description: "Mid-term academic performance report for individual students",
				Date:        "2024-06-10",
				Type:        "Progressive",
				Status:      ReportStatusReady,
				Category:    CategoryReportCard,
			},
			{
				ID:          "rc-2",
				Title:       "End of Term Report Cards",
				Description: "Final term academic performance reports with comprehensive grades",
				Date:        "2024-06-12",
				Type:        "Final Term",
				Status:      ReportStatusReady,
				Category:    CategoryReportCard,
			},
		}
	case CategoryClassReport:
		return []Report{
			{
				ID:          "cr-1",
				Title:       "P.5 Class Performance Analysis",
				Description: "Overall class performance summary and statistics for Term 2",
				Date:        "2024-06-10",
				Type:        "Class Performance",
				Status:      ReportStatusReady,
				Category:    CategoryClassReport,
			},
			{
				ID:          "cr-2",
				Title:       "Attendance Summary Report",
				Description: "Class attendance patterns and statistics",
				Date:        "2024-06-08",
				Type:        "Attendance",
				Status:      ReportStatusReady,
				Category:    CategoryClassReport,
			},
		}
	case CategoryDepartmental:
		return []Report{
			{
				ID:          "dr-1",
				Title:       "Mathematics Department Staff Report",
				Description: "Staff performance and activities summary",
				Date:        "2024-06-05",
				Type:        "Staff Performance",
				Status:      ReportStatusReady,
				Category:    CategoryDepartmental,
			},
			{
				ID:          "dr-2",
				Title:       "Monthly Budget Report",
				Description: "Department budget utilization and expenses",
				Date:        "2024-06-03",
				Type:        "Budget",
				Status:      ReportStatusProcessing,
				Category:    CategoryDepartmental,
			},
		}
	default:
		return nil
	}
}
