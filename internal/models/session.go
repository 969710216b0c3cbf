// Package models defines the dashboard's entity types, their storage shapes,
// and the default schemas records are hydrated from.
package models

// Role is the dashboard role an account signs in with. The role decides which
// screens are shown and which report collections are visible.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleTeacher     Role = "teacher"
	RoleNonTeaching Role = "non-teaching"
	RoleParent      Role = "parent"
	RolePupil       Role = "pupil"
)

// Session is the singleton record written on login and deleted on logout.
// Token is a signed copy of the identity fields; a session whose token does
// not verify is treated as absent.
type Session struct {
	OwnerID     string `json:"ownerId"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Token       string `json:"token"`
}
