package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/springingstars/schooldash/internal/export"
	"github.com/springingstars/schooldash/internal/filex"
	"github.com/springingstars/schooldash/internal/models"
)

// pickCategory resolves which report collection a command acts on. Admins can
// name any category; everyone else is confined to what their role and profile
// make visible.
func (a *App) pickCategory(ctx context.Context) (models.ReportCategory, error) {
	sess, err := a.gate.Current()
	if err != nil {
		return "", err
	}
	if sess.Role == models.RoleAdmin {
		text, err := getSimpleText(a.reader, "Category (report-card/class-report/departmental-report)", os.Stdout)
		if err != nil {
			return "", err
		}
		return models.ReportCategory(text), nil
	}

	p, err := a.profiles.Load(ctx)
	if err != nil {
		return "", err
	}
	visible := models.VisibleReportCategories(sess.Role, p)
	switch len(visible) {
	case 0:
		return "", fmt.Errorf("no report collections are visible to %s", sess.Role)
	case 1:
		return visible[0], nil
	default:
		text, err := getSimpleText(a.reader, fmt.Sprintf("Category %v", visible), os.Stdout)
		if err != nil {
			return "", err
		}
		return models.ReportCategory(text), nil
	}
}

func (a *App) listReports(ctx context.Context) error {
	sess, err := a.gate.Current()
	if err != nil {
		return err
	}

	var reports []models.Report
	if sess.Role == models.RoleAdmin {
		reports, err = a.reports.All(ctx)
	} else {
		var c models.ReportCategory
		c, err = a.pickCategory(ctx)
		if err != nil {
			return err
		}
		reports, err = a.reports.List(ctx, c)
	}
	if err != nil {
		return err
	}

	for _, r := range reports {
		inline := ""
		if r.Payload != nil {
			inline = " [inline]"
		}
		fmt.Printf("%s  %s  %-10s  [%s] %s%s\n", r.ID, r.Date, r.Status, r.Category, r.Title, inline)
	}
	return nil
}

func (a *App) uploadReport(ctx context.Context) error {
	c, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	reportType, err := getSimpleText(a.reader, "Type", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	r, err := a.reports.Upload(ctx, c, title, reportType, filepath.Base(path), mimeTypeByExt(path), data)
	if err != nil {
		return err
	}
	if r.Payload != nil {
		fmt.Printf("Uploaded %s (%d bytes, inline preview kept)\n", r.ID, r.FileSize)
	} else {
		fmt.Printf("Uploaded %s (%d bytes, metadata only)\n", r.ID, r.FileSize)
	}
	return nil
}

func (a *App) generateReport(ctx context.Context) error {
	c, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}
	reportType, err := getSimpleText(a.reader, "Report type", os.Stdout)
	if err != nil {
		return err
	}
	r, err := a.reports.Generate(ctx, c, reportType)
	if err != nil {
		return err
	}
	fmt.Printf("Generating %s (%s)\n", r.ID, r.Status)
	return nil
}

func (a *App) markReportReady(ctx context.Context) error {
	c, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Report id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.reports.MarkReady(ctx, c, id); err != nil {
		return err
	}
	fmt.Println("Ready")
	return nil
}

func (a *App) downloadReport(ctx context.Context) error {
	c, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Report id", os.Stdout)
	if err != nil {
		return err
	}

	name, data, err := a.reports.Download(ctx, c, id)
	if err != nil {
		return err
	}
	dir, err := filex.EnsureSubDir(a.config.ArtifactsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteArtifact(dir, name, data)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func (a *App) deleteReport(ctx context.Context) error {
	c, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Report id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.reports.Delete(ctx, c, id); err != nil {
		return err
	}
	fmt.Println("Deleted")
	return nil
}

func (a *App) exportReports(ctx context.Context) error {
	reports, err := a.reports.All(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.ReportsCSV(&buf, reports); err != nil {
		return err
	}
	dir, err := filex.EnsureSubDir(a.config.ArtifactsDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteArtifact(dir, "reports.csv", buf.Bytes())
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d reports to %s\n", len(reports), path)
	return nil
}

func (a *App) reportStats(ctx context.Context) error {
	s, err := a.reports.Stats(ctx, models.ReportCategories)
	if err != nil {
		return err
	}
	fmt.Printf("Reports: %d total, %d ready (%.0f%%), %d processing\n", s.Total, s.Ready, s.PercentReady, s.Processing)
	for _, c := range models.ReportCategories {
		fmt.Printf("  %-20s %d\n", c, s.ByCategory[c])
	}
	return nil
}
