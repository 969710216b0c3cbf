package models

// Settings is the typed view of the global settings record. The shape is the
// same for every installation; values differ.
type Settings struct {
	SchoolName string `json:"schoolName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	AcademicYear  string `json:"academicYear"`
	CurrentTerm   string `json:"currentTerm"`
	GradingSystem string `json:"gradingSystem"`
	PassMark      int    `json:"passMark"`

	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	ParentPortal       bool `json:"parentPortal"`
	OnlineAdmissions   bool `json:"onlineAdmissions"`
	HighContrastMode   bool `json:"highContrastMode"`
	TwoFactorAuth      bool `json:"twoFactorAuth"`
	AuditLog           bool `json:"auditLog"`

	SessionTimeoutMinutes int `json:"sessionTimeoutMinutes"`

	SMTPServer  string `json:"smtpServer"`
	SMTPPort    int    `json:"smtpPort"`
	FromEmail   string `json:"fromEmail"`
	SMSProvider string `json:"smsProvider"`

	AutoBackup    bool   `json:"autoBackup"`
	BackupTime    string `json:"backupTime"`
	RetentionDays int    `json:"retentionDays"`
}

// DefaultSettings is the schema the settings record is hydrated from.
func DefaultSettings() map[string]any {
	return map[string]any{
		"schoolName": "Springing Stars Junior School",
		"address":    "Kampala, Uganda",
		"phone":      "+256 700 123 456",
		"email":      "info@springingstars.ac.ug",

		"academicYear":  "2024",
		"currentTerm":   "Term 2, 2024",
		"gradingSystem": "Percentage (0-100%)",
		"passMark":      50,

		"emailNotifications": true,
		"smsNotifications":   true,
		"parentPortal":       true,
		"onlineAdmissions":   true,
		"highContrastMode":   false,
		"twoFactorAuth":      true,
		"auditLog":           true,

		"sessionTimeoutMinutes": 60,

		"smtpServer":  "smtp.gmail.com",
		"smtpPort":    587,
		"fromEmail":   "noreply@springingstars.ac.ug",
		"smsProvider": "MTN Uganda",

		"autoBackup":    true,
		"backupTime":    "02:00",
		"retentionDays": 30,
	}
}
