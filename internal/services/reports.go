package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/export"
	"github.com/springingstars/schooldash/internal/filex"
	"github.com/springingstars/schooldash/internal/inline"
	"github.com/springingstars/schooldash/internal/models"
	"github.com/springingstars/schooldash/internal/session"
	"github.com/springingstars/schooldash/internal/stats"
	"github.com/springingstars/schooldash/internal/store"
)

// ReportService manages the three report collections and the upload pipeline.
//
// Two distinct size thresholds govern an upload. uploadThreshold decides
// whether an inline payload is produced at all; retainThreshold decides
// whether that payload survives persisting the collection. A file between the
// two keeps its payload for the returning caller but only metadata on disk.
// The thresholds are separate knobs and must not be collapsed into one.
type ReportService struct {
	records store.RecordStore
	gate    *session.Gate

	notifications *NotificationService

	uploadThreshold int64
	retainThreshold int64
	hardLimit       int64
}

func NewReportService(records store.RecordStore, gate *session.Gate, notifications *NotificationService,
	uploadThreshold, retainThreshold, hardLimit int64) *ReportService {
	return &ReportService{
		records:         records,
		gate:            gate,
		notifications:   notifications,
		uploadThreshold: uploadThreshold,
		retainThreshold: retainThreshold,
		hardLimit:       hardLimit,
	}
}

func (s *ReportService) key(c models.ReportCategory) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("unknown report category %q: %w", c, common.ErrValidation)
	}
	return store.BuildKey(c.Kind(), ""), nil
}

// List returns the category's collection. First access seeds the category
// defaults so a fresh installation is not empty.
func (s *ReportService) List(ctx context.Context, c models.ReportCategory) ([]models.Report, error) {
	key, err := s.key(c)
	if err != nil {
		return nil, err
	}
	reports, ok, err := store.LoadList[models.Report](ctx, s.records, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		reports = models.DefaultReports(c)
		if err := store.SaveList(ctx, s.records, key, reports); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

// All concatenates every collection, in display order, for the admin
// aggregate view.
func (s *ReportService) All(ctx context.Context) ([]models.Report, error) {
	var out []models.Report
	for _, c := range models.ReportCategories {
		reports, err := s.List(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, reports...)
	}
	return out, nil
}

// Upload ingests a file into the category's collection. Files above the hard
// limit are rejected before anything is read from or written to the store.
// The returned report still carries its payload even when the persisted copy
// was stripped down to metadata.
func (s *ReportService) Upload(ctx context.Context, c models.ReportCategory, title, reportType, fileName, mimeType string, data []byte) (models.Report, error) {
	sess, err := s.gate.Current()
	if err != nil {
		return models.Report{}, err
	}
	if title == "" {
		return models.Report{}, fmt.Errorf("report title is required: %w", common.ErrValidation)
	}
	if int64(len(data)) > s.hardLimit {
		return models.Report{}, fmt.Errorf("file is %d bytes, limit is %d: %w", len(data), s.hardLimit, common.ErrFileTooLarge)
	}

	r := models.Report{
		ID:       uuid.NewString(),
		Title:    title,
		Date:     time.Now().Format("2006-01-02"),
		Type:     reportType,
		Status:   models.ReportStatusReady,
		Category: c,
		FileName: filex.SanitizeFileName(fileName),
		FileSize: int64(len(data)),
		MimeType: mimeType,
		Payload:  inline.Encode(data, mimeType, s.uploadThreshold),
	}

	reports, err := s.List(ctx, c)
	if err != nil {
		return models.Report{}, err
	}
	reports = append(reports, r)
	if err := s.persist(ctx, c, reports); err != nil {
		return models.Report{}, err
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("New report uploaded: %s", title)
		if _, err := s.notifications.Record(ctx, models.NotificationReportUpload, sess.DisplayName, msg); err != nil {
			return models.Report{}, err
		}
	}
	return r, nil
}

// Generate creates a report entry in the Processing state. A later MarkReady
// flips it once the background run completes.
func (s *ReportService) Generate(ctx context.Context, c models.ReportCategory, reportType string) (models.Report, error) {
	if _, err := s.gate.Current(); err != nil {
		return models.Report{}, err
	}
	if reportType == "" {
		return models.Report{}, fmt.Errorf("report type is required: %w", common.ErrValidation)
	}

	r := models.Report{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("%s Report", reportType),
		Description: fmt.Sprintf("Generated %s report", reportType),
		Date:        time.Now().Format("2006-01-02"),
		Type:        reportType,
		Status:      models.ReportStatusProcessing,
		Category:    c,
	}

	reports, err := s.List(ctx, c)
	if err != nil {
		return models.Report{}, err
	}
	reports = append(reports, r)
	if err := s.persist(ctx, c, reports); err != nil {
		return models.Report{}, err
	}
	return r, nil
}

// MarkReady transitions a processing report to ready.
func (s *ReportService) MarkReady(ctx context.Context, c models.ReportCategory, id string) error {
	reports, err := s.List(ctx, c)
	if err != nil {
		return err
	}
	for i := range reports {
		if reports[i].ID == id {
			reports[i].Status = models.ReportStatusReady
			return s.persist(ctx, c, reports)
		}
	}
	return fmt.Errorf("report[%s]: %w", id, common.ErrNotFound)
}

// Get returns one report by id.
func (s *ReportService) Get(ctx context.Context, c models.ReportCategory, id string) (models.Report, error) {
	reports, err := s.List(ctx, c)
	if err != nil {
		return models.Report{}, err
	}
	for _, r := range reports {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Report{}, fmt.Errorf("report[%s]: %w", id, common.ErrNotFound)
}

// Delete removes a report from its collection.
func (s *ReportService) Delete(ctx context.Context, c models.ReportCategory, id string) error {
	reports, err := s.List(ctx, c)
	if err != nil {
		return err
	}
	kept := reports[:0]
	for _, r := range reports {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reports) {
		return fmt.Errorf("report[%s]: %w", id, common.ErrNotFound)
	}
	return s.persist(ctx, c, kept)
}

// Download materializes a report's file content. A report still carrying an
// inline payload decodes to the exact original bytes; everything else falls
// back to a text placeholder naming the report.
func (s *ReportService) Download(ctx context.Context, c models.ReportCategory, id string) (string, []byte, error) {
	r, err := s.Get(ctx, c, id)
	if err != nil {
		return "", nil, err
	}
	if r.Payload != nil {
		data, err := r.Payload.Decode()
		if err != nil {
			return "", nil, err
		}
		name := r.FileName
		if name == "" {
			name = filex.SanitizeFileName(r.Title)
		}
		return name, data, nil
	}
	return filex.SanitizeFileName(r.Title) + ".txt", export.Placeholder(r), nil
}

// Stats aggregates the given categories into one summary.
func (s *ReportService) Stats(ctx context.Context, categories []models.ReportCategory) (stats.ReportSummary, error) {
	var all []models.Report
	for _, c := range categories {
		reports, err := s.List(ctx, c)
		if err != nil {
			return stats.ReportSummary{}, err
		}
		all = append(all, reports...)
	}
	return stats.ComputeReportStats(all), nil
}

// persist writes the collection back, stripping payloads at or above the
// retention threshold. The strip acts on the stored copy only.
func (s *ReportService) persist(ctx context.Context, c models.ReportCategory, reports []models.Report) error {
	key, err := s.key(c)
	if err != nil {
		return err
	}
	for i := range reports {
		if p := reports[i].Payload; p != nil && p.Size() >= s.retainThreshold {
			reports[i].Payload = nil
		}
	}
	return store.SaveList(ctx, s.records, key, reports)
}
