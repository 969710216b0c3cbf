package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/springingstars/schooldash/internal/filex"
	"github.com/springingstars/schooldash/internal/models"
)

func (a *App) showSettings(ctx context.Context) error {
	s, err := a.settings.Typed(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("School:        %s, %s\n", s.SchoolName, s.Address)
	fmt.Printf("Contact:       %s / %s\n", s.Phone, s.Email)
	fmt.Printf("Academic year: %s (%s)\n", s.AcademicYear, s.CurrentTerm)
	fmt.Printf("Grading:       %s, pass mark %d\n", s.GradingSystem, s.PassMark)
	fmt.Printf("Notifications: email=%v sms=%v\n", s.EmailNotifications, s.SMSNotifications)
	fmt.Printf("Backup:        auto=%v at %s, keep %d days\n", s.AutoBackup, s.BackupTime, s.RetentionDays)
	return nil
}

// setSetting updates one named option. Writes are an admin operation.
func (a *App) setSetting(ctx context.Context) error {
	sess, err := a.gate.Current()
	if err != nil {
		return err
	}
	if sess.Role != models.RoleAdmin {
		fmt.Println("Only administrators can change settings")
		return nil
	}

	line, err := getSimpleText(a.reader, "Setting as name=value", os.Stdout)
	if err != nil {
		return err
	}
	name, value, ok := splitPair(line)
	if !ok {
		fmt.Println("Expected name=value")
		return nil
	}

	if err := a.settings.Set(ctx, name, parseScalar(value)); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", name)
	return nil
}

func (a *App) exportSettings(ctx context.Context) error {
	data, err := a.settings.ExportJSON(ctx)
	if err != nil {
		return err
	}
	dir, err := filex.EnsureSubDir(a.config.ArtifactsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteArtifact(dir, "settings.json", data)
	if err != nil {
		return err
	}
	fmt.Printf("Exported settings to %s\n", path)
	return nil
}
