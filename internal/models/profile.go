package models

import (
	"strings"

	"github.com/springingstars/schooldash/internal/inline"
)

// Profile is the typed view of an owner's profile record. The stored record
// may carry extra fields from other releases; those survive hydration and
// re-saving but are not visible through this struct.
type Profile struct {
	FirstName  string `json:"firstName" validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Title      string `json:"title"`
	Gender     string `json:"gender"`
	Bio        string `json:"bio"`

	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`

	Avatar *inline.Payload `json:"avatar,omitempty"`

	// Role-specific fields. Teachers carry subject/class flags, non-teaching
	// staff carry department headship, pupils carry their class.
	Subject          string `json:"subject,omitempty"`
	Department       string `json:"department,omitempty"`
	Qualification    string `json:"qualification,omitempty"`
	Experience       string `json:"experience,omitempty"`
	JoinDate         string `json:"joinDate,omitempty"`
	Class            string `json:"class,omitempty"`
	IsClassTeacher   bool   `json:"isClassTeacher,omitempty"`
	IsDepartmentHead bool   `json:"isDepartmentHead,omitempty"`
	HeadOfDepartment string `json:"headOfDepartment,omitempty"`
}

// DisplayName joins the non-empty name parts.
func (p Profile) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// DefaultProfile builds the role-aware default schema a stored profile is
// hydrated from on first access. displayName and email come from the signed-in
// account so a fresh profile is never blank.
func DefaultProfile(role Role, displayName, email string) map[string]any {
	first, last := splitName(displayName)

	defaults := map[string]any{
		"firstName":        first,
		"middleName":       "",
		"lastName":         last,
		"email":            email,
		"phone":            "",
		"address":          "",
		"title":            "",
		"gender":           "",
		"bio":              "",
		"emergencyContact": "",
		"emergencyPhone":   "",
	}

	switch role {
	case RoleTeacher:
		defaults["subject"] = ""
		defaults["department"] = ""
		defaults["qualification"] = ""
		defaults["experience"] = ""
		defaults["joinDate"] = ""
		defaults["class"] = ""
		defaults["isClassTeacher"] = false
		defaults["isDepartmentHead"] = false
	case RoleNonTeaching:
		defaults["department"] = ""
		defaults["joinDate"] = ""
		defaults["isDepartmentHead"] = false
		defaults["headOfDepartment"] = ""
	case RolePupil:
		defaults["class"] = ""
	case RoleParent:
		defaults["children"] = []any{}
	}

	return defaults
}

func splitName(displayName string) (first, last string) {
	parts := strings.Fields(displayName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
